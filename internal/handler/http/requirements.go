// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/utils"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// getCoverage reports requirement hits of the current run. ?run_id=<id>
// selects another run and ?run_id=all aggregates every stored run.
func (h *Handler) getCoverage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	runID := h.services.RequirementService.RunID()
	switch q := r.URL.Query().Get("run_id"); q {
	case "":
	case "all":
		runID = ""
	default:
		runID = q
	}

	coverage, err := h.services.RequirementService.Coverage(r.Context(), runID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCoverage").Msg("error getting requirement coverage")
		http.Error(w, "error getting requirement coverage", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CoverageReport{
		RunID:        runID,
		Requirements: coverage,
		Length:       len(coverage),
	}, http.StatusOK)
}
