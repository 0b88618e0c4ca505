// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-ics-oracle/internal/config"
	"github.com/MKhiriev/go-ics-oracle/internal/handler/http"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The oracle is
// only reachable over HTTP, so an empty HTTP address is a misconfiguration.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
