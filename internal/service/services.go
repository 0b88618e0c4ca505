// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ics-oracle/internal/config"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/internal/utils"
)

type Services struct {
	OracleService      OracleService
	RequirementService RequirementService
	AppInfoService     AppInfoService

	// Flusher writes buffered captures to the repository. It is nil when no
	// database is configured.
	Flusher requirements.Flusher
}

// NewServices wires one oracle run: a fresh run id, the behaviour policy from
// cfg.Requirements and the capture sinks. Captures are always logged and
// recorded in memory, and buffered for the repository when one exists.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	policy, err := requirements.PolicyFromConfig(cfg.Requirements)
	if err != nil {
		return nil, fmt.Errorf("error building requirement policy: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, policy, logger)
	if err != nil {
		return nil, err
	}

	runID := utils.NewUUIDGenerator().Generate()
	recorder := requirements.NewRecordingSink()
	sinks := requirements.Multi{requirements.LogSink{}, recorder}

	var flusher requirements.Flusher
	if storages.RequirementRepository != nil {
		buffered := requirements.NewBufferedSink(runID, storages.RequirementRepository)
		sinks = append(sinks, buffered)
		flusher = buffered
	}

	logger.Info().Str("run_id", runID).Msg("oracle run started")

	return &Services{
		OracleService:      NewOracleService(runID, storages.Mailbox, policy, sinks, logger),
		RequirementService: NewRequirementService(runID, recorder, storages.RequirementRepository, flusher, logger),
		AppInfoService:     appInfo,
		Flusher:            flusher,
	}, nil
}
