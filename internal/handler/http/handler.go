// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/service"
)

type Handler struct {
	services *service.Services

	// operations maps the {operation} URL segment to its ROP handler.
	operations map[string]http.HandlerFunc

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if services != nil && services.OracleService != nil {
		h.operations = ropOperations(services.OracleService)
	}

	logger.Info().Int("operations", len(h.operations)).Msg("http handler created")
	return h
}
