// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrBadRequest is returned for 400, typically a request body the remote
	// oracle could not decode.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound is returned for 404: an unknown operation or a server id
	// the remote oracle was never connected to.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned for 503, for example when captures could
	// not be persisted.
	ErrUnavailable = errors.New("service unavailable")
	// ErrInternalServerError is returned for 500.
	ErrInternalServerError = errors.New("internal server error")
	// ErrEmptyAddress is returned by the constructor for a blank address.
	ErrEmptyAddress = errors.New("empty address")
)
