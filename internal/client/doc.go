// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the console client: it wires the terminal UI to the
// client services and keeps the sign-in / browse / sign-out cycle going.
package client
