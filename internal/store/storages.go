// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ics-oracle/internal/config"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
)

// Storages aggregates the stores of one process. RequirementRepository is
// nil when no database is configured.
type Storages struct {
	Mailbox               *Mailbox
	RequirementRepository RequirementRepository

	db *DB
}

// NewStorages builds the in-memory mailbox and, when cfg.DB.DSN is set,
// connects and migrates the requirement database.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{Mailbox: NewMailbox()}
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("no database configured, captured requirements are not persisted")
		return s, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting requirement database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating requirement database: %w", err)
	}

	s.db = db
	s.RequirementRepository = NewRequirementRepository(db, log)
	return s, nil
}

// Close releases the database connection if one was opened.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
