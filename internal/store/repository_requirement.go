// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/models"
)

const capturedRequirementsTable = "captured_requirements"

// requirementRepository is the SQL-backed implementation of
// [RequirementRepository] over the captured_requirements table.
type requirementRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRequirementRepository(db *DB, logger *logger.Logger) RequirementRepository {
	logger.Debug().Msg("creating requirement repository")
	return &requirementRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCaptured inserts the whole batch in one statement. An empty batch is
// a no-op.
func (r *requirementRepository) SaveCaptured(ctx context.Context, captured []models.CapturedRequirement) error {
	if len(captured) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertQuery(captured)
	if err != nil {
		log.Err(err).Str("func", "*requirementRepository.SaveCaptured").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*requirementRepository.SaveCaptured").Msg("error executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRequirementsNotSaved
	}

	return nil
}

// Coverage aggregates hits per requirement id, ordered by id.
func (r *requirementRepository) Coverage(ctx context.Context, runID string) ([]models.RequirementCoverage, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCoverageQuery(runID)
	if err != nil {
		log.Err(err).Str("func", "*requirementRepository.Coverage").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*requirementRepository.Coverage").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	coverage := make([]models.RequirementCoverage, 0)
	for rows.Next() {
		var c models.RequirementCoverage
		if err = rows.Scan(&c.RequirementID, &c.Description, &c.Hits); err != nil {
			log.Err(err).Str("func", "*requirementRepository.Coverage").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		coverage = append(coverage, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return coverage, nil
}

func (r *requirementRepository) buildInsertQuery(captured []models.CapturedRequirement) (string, []any, error) {
	insert := r.db.builder().
		Insert(capturedRequirementsTable).
		Columns("run_id", "requirement_id", "description", "captured_at")
	for _, c := range captured {
		insert = insert.Values(c.RunID, c.RequirementID, c.Description, c.CapturedAt)
	}
	return insert.ToSql()
}

func (r *requirementRepository) buildCoverageQuery(runID string) (string, []any, error) {
	sel := r.db.builder().
		Select("requirement_id", "MIN(description)", "COUNT(*)").
		From(capturedRequirementsTable).
		GroupBy("requirement_id").
		OrderBy("requirement_id")
	if runID != "" {
		sel = sel.Where(sq.Eq{"run_id": runID})
	}
	return sel.ToSql()
}
