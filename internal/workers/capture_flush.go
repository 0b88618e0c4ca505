// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
)

const (
	defaultFlushInterval = 10 * time.Second
	finalFlushTimeout    = 5 * time.Second
)

// CaptureFlushWorker periodically writes buffered requirement captures to
// the repository. A failed flush keeps the batch for the next tick.
type CaptureFlushWorker struct {
	flusher  requirements.Flusher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCaptureFlushWorker returns an idle worker. A non-positive interval
// defaults to ten seconds.
func NewCaptureFlushWorker(flusher requirements.Flusher, interval time.Duration, logger *logger.Logger) *CaptureFlushWorker {
	if interval <= 0 {
		interval = defaultFlushInterval
	}
	return &CaptureFlushWorker{flusher: flusher, interval: interval, logger: logger}
}

// Run stops a previous run, then flushes on every tick until ctx is done.
func (w *CaptureFlushWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.flush(jobCtx)
			}
		}
	}()
}

// Stop ends the ticker loop and flushes what is left. It is a no-op when the
// worker is not running.
func (w *CaptureFlushWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	w.wg.Wait()

	ctx, done := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer done()
	w.flush(ctx)
}

func (w *CaptureFlushWorker) flush(ctx context.Context) {
	if err := w.flusher.Flush(logger.Attach(ctx, w.logger)); err != nil {
		w.logger.Err(err).Str("func", "*CaptureFlushWorker.flush").Msg("error flushing captured requirements")
	}
}
