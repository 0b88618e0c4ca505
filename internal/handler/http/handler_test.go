// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/service"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

const testRunID = "run-under-test"

// stubRequirementService implements service.RequirementService.
type stubRequirementService struct {
	coverage []models.RequirementCoverage
	err      error
	gotRunID string
}

func (s *stubRequirementService) RunID() string { return testRunID }

func (s *stubRequirementService) Coverage(_ context.Context, runID string) ([]models.RequirementCoverage, error) {
	s.gotRunID = runID
	return s.coverage, s.err
}

type stubAppInfoService struct {
	version   string
	behaviors map[string]bool
}

func (s stubAppInfoService) GetAppVersion(context.Context) string { return s.version }

func (s stubAppInfoService) Behaviors(context.Context) map[string]bool { return s.behaviors }

// newTestHandler wires a real in-memory oracle behind the handler.
func newTestHandler(t *testing.T, reqs *stubRequirementService) *Handler {
	t.Helper()
	if reqs == nil {
		reqs = &stubRequirementService{}
	}
	oracle := service.NewOracleService(testRunID, store.NewMailbox(), requirements.NewPolicy(), requirements.NewRecordingSink(), logger.Nop())
	return NewHandler(&service.Services{
		OracleService:      oracle,
		RequirementService: reqs,
		AppInfoService:     stubAppInfoService{version: "1.0.0"},
	}, logger.Nop())
}

// postROP sends body to /api/rop/{op} through the full router.
func postROP(t *testing.T, router http.Handler, op string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/api/rop/"+op, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
