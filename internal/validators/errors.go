// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Protocol rejection errors. Each one corresponds to a distinguished result
// code; the wrapped message names the offending field.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNotSupported     = errors.New("not supported")
	ErrNotImplemented   = errors.New("not implemented")

	// ErrRPCFormat is returned for flag combinations that must fail at the
	// wire-format level.
	ErrRPCFormat = errors.New("rpc format error")
)
