// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the forms submitted to
// the inventory's HTML endpoints.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FormError: per-field messages suitable for flashing back to the user.
//
// Usage patterns:
//  1. Decode the request body into one of the models.*Form types.
//  2. Call Validate with context, value, and optional field names.
//  3. On *FormError, store old input plus a flash message and redirect back.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
