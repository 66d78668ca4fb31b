// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the single error kind produced on failure. It names
//     every failing field and every failing rule of that field.
//
// Validation is pure: no I/O, no uniqueness checks. Uniqueness is enforced
// by the store.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields (JSON names).
	Validate(context.Context, any, ...string) error
}
