// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable replay session.
type Client interface {
	// Run replays every step and blocks until the last one is answered.
	Run(ctx context.Context) error
}
