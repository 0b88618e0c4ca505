// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ics-oracle/internal/service"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

func TestHandleROP_ConnectAndLogon(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	rec := postROP(t, router, "Connect", models.ConnectRequest{ServerID: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, models.Success, decode[models.ROPResponse](t, rec).ResultCode)

	rec = postROP(t, router, "Logon", models.LogonRequest{ServerID: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	logon := decode[models.LogonResponse](t, rec)
	assert.Equal(t, models.Success, logon.ResultCode)
	assert.Positive(t, logon.LogonHandle)
	assert.Positive(t, logon.InboxFolderID)
}

func TestHandleROP_ResultCodeIsNotAnHTTPError(t *testing.T) {
	router := newTestHandler(t, nil).Init()
	require.Equal(t, http.StatusOK, postROP(t, router, "Connect", models.ConnectRequest{ServerID: 1}).Code)
	require.Equal(t, http.StatusOK, postROP(t, router, "Logon", models.LogonRequest{ServerID: 1}).Code)

	// A folder id that was never allocated is a protocol outcome, not a
	// transport failure.
	rec := postROP(t, router, "OpenFolder", models.OpenFolderRequest{ServerID: 1, LogonHandle: -5, FolderID: 424242})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, models.Success, decode[models.FolderResponse](t, rec).ResultCode)
}

func TestHandleROP_Errors(t *testing.T) {
	tests := []struct {
		name       string
		op         string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown operation",
			op:         "RopBogus",
			body:       `{}`,
			wantStatus: http.StatusNotFound,
			wantBody:   ErrUnknownOperation.Error(),
		},
		{
			name:       "malformed json",
			op:         "Connect",
			body:       `{"server_id":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrInvalidJSON.Error(),
		},
		{
			name:       "unknown field",
			op:         "Connect",
			body:       `{"server_id":1,"password":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrInvalidJSON.Error(),
		},
		{
			name:       "server id never connected",
			op:         "Logon",
			body:       `{"server_id":77}`,
			wantStatus: http.StatusNotFound,
			wantBody:   service.ErrConnectionNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, nil).Init()

			req := httptest.NewRequest(http.MethodPost, "/api/rop/"+tt.op, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleROP_EmptyBodyIsZeroRequest(t *testing.T) {
	router := newTestHandler(t, nil).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/rop/Connect", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Success, decode[models.ROPResponse](t, rec).ResultCode)
}

func TestRopOperations_CoverEveryEngineOperation(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, op := range []string{
		"Connect", "Logon", "CreateFolder", "SaveChangesMessage", "GetLocalReplicaIds",
		"SynchronizationConfigure", "SynchronizationImportMessageMove", "SynchronizationUploadState",
		"FastTransferSourceCopyFolder", "FastTransferSourceGetBuffer", "FastTransferDestinationPutBuffer",
	} {
		assert.Contains(t, h.operations, op)
	}
	assert.Len(t, h.operations, 35)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing connection", fmt.Errorf("Logon: %w", service.ErrConnectionNotFound), http.StatusNotFound},
		{"unknown operation", ErrUnknownOperation, http.StatusNotFound},
		{"bad json", ErrInvalidJSON, http.StatusBadRequest},
		{"query build", fmt.Errorf("wrap: %w", store.ErrBuildingSQLQuery), http.StatusInternalServerError},
		{"not saved", store.ErrRequirementsNotSaved, http.StatusServiceUnavailable},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
