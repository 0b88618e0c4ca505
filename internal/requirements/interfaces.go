// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/requirements_mock.go -package=mock

package requirements

import "context"

// Sink observes exercised requirements. Implementations must not fail the
// caller: capture is a side channel and never changes an operation's outcome.
type Sink interface {
	Capture(ctx context.Context, id Requirement, description string)
}

// Flusher is a sink that holds captures until flushed.
type Flusher interface {
	Flush(ctx context.Context) error
}
