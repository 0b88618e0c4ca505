// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/internal/config"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled by the wiring. Without a flusher, that
// is without a requirement database, there is nothing to run.
func NewWorkers(cfg config.Workers, flusher requirements.Flusher, logger *logger.Logger) *Workers {
	w := &Workers{}
	if flusher != nil {
		w.workers = append(w.workers, NewCaptureFlushWorker(flusher, cfg.SyncInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
