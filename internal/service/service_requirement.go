// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// requirementService answers coverage queries from the repository when one
// is configured and from the in-memory recording of this run otherwise.
type requirementService struct {
	runID    string
	recorder *requirements.RecordingSink
	repo     store.RequirementRepository
	flusher  requirements.Flusher

	logger *logger.Logger
}

// NewRequirementService builds the coverage service. repo and flusher may be
// nil; pending captures are flushed before the repository is queried.
func NewRequirementService(runID string, recorder *requirements.RecordingSink, repo store.RequirementRepository, flusher requirements.Flusher, logger *logger.Logger) RequirementService {
	return &requirementService{
		runID:    runID,
		recorder: recorder,
		repo:     repo,
		flusher:  flusher,
		logger:   logger,
	}
}

func (s *requirementService) RunID() string {
	return s.runID
}

func (s *requirementService) Coverage(ctx context.Context, runID string) ([]models.RequirementCoverage, error) {
	if s.repo == nil {
		if runID != "" && runID != s.runID {
			return []models.RequirementCoverage{}, nil
		}
		return s.recorded(), nil
	}

	if s.flusher != nil {
		if err := s.flusher.Flush(ctx); err != nil {
			s.logger.Err(err).Str("func", "*requirementService.Coverage").Msg("error flushing captured requirements")
			return nil, fmt.Errorf("error flushing captured requirements: %w", err)
		}
	}
	return s.repo.Coverage(ctx, runID)
}

// recorded aggregates the in-memory captures by requirement, ordered by id.
func (s *requirementService) recorded() []models.RequirementCoverage {
	hits := make(map[requirements.Requirement]int)
	order := make([]requirements.Requirement, 0)
	for _, r := range s.recorder.Captured() {
		if hits[r] == 0 {
			order = append(order, r)
		}
		hits[r]++
	}
	slices.Sort(order)

	out := make([]models.RequirementCoverage, 0, len(order))
	for _, r := range order {
		out = append(out, models.RequirementCoverage{
			RequirementID: int(r),
			Description:   r.Description(),
			Hits:          hits[r],
		})
	}
	return out
}
