// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Lookup errors returned by the in-memory entity store. Callers match them
// with [errors.Is]; the wrapped message carries the id or handle.
var (
	// ErrConnectionNotFound is returned when no connection exists for a
	// server id. The engine treats it as a contract violation of the driver.
	ErrConnectionNotFound = errors.New("connection not found")

	ErrFolderNotFound     = errors.New("folder not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrContextNotFound is returned for a handle that has no live download
	// or upload context bound to it.
	ErrContextNotFound = errors.New("context not found")

	ErrBufferNotFound = errors.New("stream buffer not found")

	// ErrFolderCycle is returned when a folder would become its own
	// ancestor.
	ErrFolderCycle = errors.New("folder cannot be moved under itself or a descendant")
)

// Repository errors.
var (
	// ErrRequirementsNotSaved is returned when an INSERT of captured
	// requirements completes without error but affects no rows.
	ErrRequirementsNotSaved = errors.New("captured requirements were not saved")

	// ErrUnsupportedDSN is returned when a DSN names neither a PostgreSQL URL
	// nor an SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrUnsupportedDialect is returned by NewDB for an unknown SQL dialect.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan requirement rows")
)
