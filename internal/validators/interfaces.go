// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides structural validation of request bodies and
// of AI responses.
//
// Validation rules are declared with `validate` struct tags and enforced by
// go-playground/validator. Failures are reported as *ValidationError, which
// carries one message per offending field (keyed by its JSON path) and
// matches ErrValidation with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
