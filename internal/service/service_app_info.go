// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/internal/config"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
)

type appInfoService struct {
	appVersion string
	toggles    map[string]bool

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, policy requirements.Policy, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		toggles:    policy.Toggles(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Behaviors returns a copy, callers may modify it.
func (s *appInfoService) Behaviors(ctx context.Context) map[string]bool {
	out := make(map[string]bool, len(s.toggles))
	for name, on := range s.toggles {
		out[name] = on
	}
	return out
}
