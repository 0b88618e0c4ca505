// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/internal/validators"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// oracleService is the engine of one oracle run. A single mutex serialises
// every operation; each call runs to completion before the next starts.
type oracleService struct {
	mu sync.Mutex

	mailbox *store.Mailbox
	ids     *ids.Allocator
	cns     *ids.ChangeNumbers

	policy    requirements.Policy
	sink      requirements.Sink
	validator validators.Validator

	runID  string
	logger *logger.Logger
}

func NewOracleService(runID string, mailbox *store.Mailbox, policy requirements.Policy, sink requirements.Sink, logger *logger.Logger) OracleService {
	if sink == nil {
		sink = requirements.NopSink{}
	}
	return &oracleService{
		mailbox:   mailbox,
		ids:       ids.NewAllocator(),
		cns:       ids.NewChangeNumbers(),
		policy:    policy,
		sink:      sink,
		validator: validators.NewROPValidator(policy, sink),
		runID:     runID,
		logger:    logger,
	}
}

func (s *oracleService) RunID() string {
	return s.runID
}

// begin attaches the operation fields to the context logger and resolves the
// connection. The caller must hold s.mu.
func (s *oracleService) begin(ctx context.Context, op string, serverID int) (context.Context, *store.Connection, error) {
	ctx = logger.Attach(ctx, s.logger)
	ctx = logger.WithFields(ctx, "rop", op, "server_id", strconv.Itoa(serverID))

	conn, err := s.mailbox.Connection(serverID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*oracleService."+op).Msg("operation on unknown connection")
		return ctx, nil, fmt.Errorf("%s: %w", op, err)
	}
	return ctx, conn, nil
}

// fail logs a rejection and returns its result code.
func (s *oracleService) fail(ctx context.Context, err error) models.ResultCode {
	code := resultFromError(err)
	logger.FromContext(ctx).Debug().Err(err).Str("result", code.String()).Msg("operation rejected")
	return code
}

func (s *oracleService) succeed(ctx context.Context) models.ResultCode {
	logger.FromContext(ctx).Debug().Str("result", models.Success.String()).Msg("operation completed")
	return models.Success
}

func (s *oracleService) capture(ctx context.Context, r requirements.Requirement) {
	s.sink.Capture(ctx, r, r.Description())
}

// nextChange issues a change number.
func (s *oracleService) nextChange() int {
	return s.cns.Next()
}
