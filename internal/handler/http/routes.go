// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Post("/api/rop/{operation}", h.handleROP)
	router.Get("/api/requirements", h.getCoverage)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/behaviors", h.getBehaviors)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
