// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/models"
)

// RequirementRepository persists the requirements captured during oracle
// runs so that coverage can be compared across runs and server versions.
type RequirementRepository interface {
	// SaveCaptured inserts a batch of captures.
	SaveCaptured(ctx context.Context, captured []models.CapturedRequirement) error

	// Coverage returns one row per requirement id with its hit count. An
	// empty runID aggregates over all runs.
	Coverage(ctx context.Context, runID string) ([]models.RequirementCoverage, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
