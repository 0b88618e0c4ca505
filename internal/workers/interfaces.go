// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the oracle's background jobs.
package workers

import "context"

// Worker is a background job. Run starts it and returns immediately; the job
// ends when ctx is cancelled or Stop is called. Stop blocks until the job has
// exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
