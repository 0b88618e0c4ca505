// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package requirements

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// NopSink drops every capture.
type NopSink struct{}

func (NopSink) Capture(context.Context, Requirement, string) {}

// LogSink writes every capture to the request-scoped logger at debug level.
type LogSink struct{}

func (LogSink) Capture(ctx context.Context, id Requirement, description string) {
	logger.FromContext(ctx).Debug().
		Int("requirement", int(id)).
		Str("description", description).
		Msg("requirement captured")
}

// RecordingSink keeps captures in memory in the order they arrived.
type RecordingSink struct {
	mu       sync.Mutex
	captured []Requirement
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) Capture(_ context.Context, id Requirement, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured = append(s.captured, id)
}

// Captured returns a copy of the captured ids.
func (s *RecordingSink) Captured() []Requirement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Requirement, len(s.captured))
	copy(out, s.captured)
	return out
}

// Has reports whether id was captured at least once.
func (s *RecordingSink) Has(id Requirement) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.captured {
		if c == id {
			return true
		}
	}
	return false
}

// BufferedSink accumulates captures and writes them to a repository on Flush.
// Each capture is stamped with the run id so several runs can share a table.
type BufferedSink struct {
	mu      sync.Mutex
	runID   string
	pending []models.CapturedRequirement
	repo    store.RequirementRepository
	now     func() time.Time
}

func NewBufferedSink(runID string, repo store.RequirementRepository) *BufferedSink {
	return &BufferedSink{
		runID: runID,
		repo:  repo,
		now:   time.Now,
	}
}

func (s *BufferedSink) Capture(_ context.Context, id Requirement, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, models.CapturedRequirement{
		RunID:         s.runID,
		RequirementID: int(id),
		Description:   description,
		CapturedAt:    s.now().UTC(),
	})
}

// Pending returns the number of captures not yet flushed.
func (s *BufferedSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush saves pending captures. On failure the batch is put back in front of
// captures that arrived meanwhile so nothing is lost.
func (s *BufferedSink) Flush(ctx context.Context) error {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := s.repo.SaveCaptured(ctx, batch); err != nil {
		s.mu.Lock()
		s.pending = append(batch, s.pending...)
		s.mu.Unlock()
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*BufferedSink.Flush").
		Int("count", len(batch)).
		Msg("captured requirements flushed")
	return nil
}

// Multi fans a capture out to several sinks.
type Multi []Sink

func (m Multi) Capture(ctx context.Context, id Requirement, description string) {
	for _, s := range m {
		s.Capture(ctx, id, description)
	}
}
