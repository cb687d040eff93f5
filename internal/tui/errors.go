// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/service"
)

// humanizeError turns client service errors into one line for the status
// area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, press l and sign in again"
	case errors.Is(err, service.ErrAccessDenied):
		return "You do not have access to this project"
	case errors.Is(err, adapter.ErrAIRequestFailed), errors.Is(err, service.ErrAIResponseParse):
		return "The research assistant is unavailable, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
