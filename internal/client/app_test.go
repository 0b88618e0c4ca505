// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/mock"
	"github.com/MKhiriev/go-ics-oracle/internal/utils"
	"github.com/MKhiriev/go-ics-oracle/models"
)

func answer(body string) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, resp any) error {
		*resp.(*json.RawMessage) = json.RawMessage(body)
		return nil
	}
}

func code(c models.ResultCode) *models.ResultCode { return &c }

func TestNewApp_NilOracle(t *testing.T) {
	app, err := NewApp(nil, Script{}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoOracle)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mock.NewMockOracleClient(ctrl)

	script := Script{Steps: []Step{
		{Operation: "Connect", Request: json.RawMessage(`{"server_id":1}`), Expect: code(models.Success)},
		{Operation: "Logon", Request: json.RawMessage(`{"server_id":1}`)},
	}}

	gomock.InOrder(
		oracle.EXPECT().Call(gomock.Any(), "Connect", script.Steps[0].Request, gomock.Any()).
			DoAndReturn(answer(`{"result_code":"Success"}`)),
		oracle.EXPECT().Call(gomock.Any(), "Logon", script.Steps[1].Request, gomock.Any()).
			DoAndReturn(answer(`{"result_code":"Success","logon_handle":1}`)),
		oracle.EXPECT().Coverage(gomock.Any(), "").Return(models.CoverageReport{
			RunID:        "run-1",
			Requirements: []models.RequirementCoverage{{RequirementID: 3, Description: "desc", Hits: 2}},
			Length:       1,
		}, nil),
	)

	var out bytes.Buffer
	app, err := NewApp(oracle, script, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	results := app.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "Logon", results[1].Operation)
	assert.Equal(t, models.Success, results[1].ResultCode)
	assert.JSONEq(t, `{"result_code":"Success","logon_handle":1}`, string(results[1].Response))
	assert.Contains(t, out.String(), "#1 Connect -> Success ok")
	assert.Contains(t, out.String(), "run run-1: 1 requirements covered")
	assert.Contains(t, out.String(), "R3 x2 desc")
}

func TestApp_Run_EachStepGetsATraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mock.NewMockOracleClient(ctrl)

	seen := make(map[string]bool)
	oracle.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, op string, req, resp any) error {
			id, ok := utils.GetTraceIDFromContext(ctx)
			require.True(t, ok)
			seen[id] = true
			return answer(`{"result_code":"Success"}`)(ctx, op, req, resp)
		}).Times(3)
	oracle.EXPECT().Coverage(gomock.Any(), "").Return(models.CoverageReport{}, nil)

	app, err := NewApp(oracle, Script{Steps: []Step{{Operation: "A"}, {Operation: "B"}, {Operation: "C"}}}, nil, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Len(t, seen, 3)
}

func TestApp_Run_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mock.NewMockOracleClient(ctrl)

	oracle.EXPECT().Call(gomock.Any(), "OpenFolder", gomock.Any(), gomock.Any()).
		DoAndReturn(answer(`{"result_code":"InvalidParameter"}`))
	oracle.EXPECT().Coverage(gomock.Any(), "").Return(models.CoverageReport{}, nil)

	var out bytes.Buffer
	app, err := NewApp(oracle, Script{Steps: []Step{{Operation: "OpenFolder", Expect: code(models.Success)}}}, &out, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())

	require.ErrorIs(t, err, ErrExpectationsFailed)
	assert.Contains(t, out.String(), "MISMATCH want Success")
	require.Len(t, app.Results(), 1)
	assert.True(t, app.Results()[0].Mismatch)
}

func TestApp_Run_TransportErrorStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mock.NewMockOracleClient(ctrl)

	boom := errors.New("connection refused")
	oracle.EXPECT().Call(gomock.Any(), "Connect", gomock.Any(), gomock.Any()).Return(boom)

	app, err := NewApp(oracle, Script{Steps: []Step{{Operation: "Connect"}, {Operation: "Logon"}}}, nil, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "step 1 Connect")
	assert.Empty(t, app.Results())
}

func TestApp_Run_CoverageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mock.NewMockOracleClient(ctrl)

	boom := errors.New("unavailable")
	oracle.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(answer(`{"result_code":"Success"}`))
	oracle.EXPECT().Coverage(gomock.Any(), "").Return(models.CoverageReport{}, boom)

	app, err := NewApp(oracle, Script{Steps: []Step{{Operation: "Connect"}}}, nil, logger.Nop())
	require.NoError(t, err)

	require.ErrorIs(t, app.Run(context.Background()), boom)
}

func TestLoadScript(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		steps   int
		wantErr error
	}{
		{
			name:  "valid",
			input: `{"steps":[{"operation":"Connect","request":{"server_id":1},"expect":"Success"},{"operation":"Logon"}]}`,
			steps: 2,
		},
		{name: "no steps", input: `{"steps":[]}`, wantErr: ErrEmptyScript},
		{name: "missing operation", input: `{"steps":[{"request":{}}]}`, wantErr: ErrMissingOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadScript(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, s.Steps, tt.steps)
			require.NotNil(t, s.Steps[0].Expect)
			assert.Equal(t, models.Success, *s.Steps[0].Expect)
			assert.Nil(t, s.Steps[1].Expect)
		})
	}
}

func TestLoadScript_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `steps`},
		{name: "unknown field", input: `{"steps":[{"operation":"Connect","expected":"Success"}]}`},
		{name: "unknown result code", input: `{"steps":[{"operation":"Connect","expect":"Nope"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}
