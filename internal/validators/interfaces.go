// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ROP request parameters before the engine acts
// on them.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ROPValidator: flag legality rules of the synchronization and
//     FastTransfer operations. Rules that differ between server versions are
//     gated by a requirements.Policy.
//
// A rejection is reported as an error wrapping one of ErrInvalidParameter,
// ErrNotSupported, ErrNotImplemented or ErrRPCFormat, which the engine maps to
// the matching result code.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
