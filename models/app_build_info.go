// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfoNotAvailable fills build fields that were not set by the linker.
const BuildInfoNotAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags. It is printed
// at startup, shown in the console "about" window and, for the server,
// used as the reported version.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo returns the build metadata with empty values replaced by
// [BuildInfoNotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// IsRelease reports whether a version was injected at build time.
func (a AppBuildInfo) IsRelease() bool {
	return a.Version != "" && a.Version != BuildInfoNotAvailable
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s (commit %s, built %s)", a.Version, a.Commit, a.Date)
}

func orNotAvailable(v string) string {
	if v == "" {
		return BuildInfoNotAvailable
	}
	return v
}
