// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownOperation is returned for a {operation} segment that names
	// no ROP.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidJSON is returned when a ROP body cannot be decoded into the
	// operation's request type.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
