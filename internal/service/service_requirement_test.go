// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/mock"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/models"
)

func TestRequirementService_InMemory(t *testing.T) {
	recorder := requirements.NewRecordingSink()
	ctx := context.Background()
	recorder.Capture(ctx, requirements.SaveAssignsChangeNumber, "")
	recorder.Capture(ctx, requirements.LogonCreatesInbox, "")
	recorder.Capture(ctx, requirements.SaveAssignsChangeNumber, "")

	svc := NewRequirementService("run-1", recorder, nil, nil, logger.Nop())

	tests := []struct {
		name  string
		runID string
		want  []models.RequirementCoverage
	}{
		{
			name: "current run",
			want: []models.RequirementCoverage{
				{RequirementID: int(requirements.LogonCreatesInbox), Description: requirements.LogonCreatesInbox.Description(), Hits: 1},
				{RequirementID: int(requirements.SaveAssignsChangeNumber), Description: requirements.SaveAssignsChangeNumber.Description(), Hits: 2},
			},
		},
		{
			name:  "explicit current run",
			runID: "run-1",
			want: []models.RequirementCoverage{
				{RequirementID: int(requirements.LogonCreatesInbox), Description: requirements.LogonCreatesInbox.Description(), Hits: 1},
				{RequirementID: int(requirements.SaveAssignsChangeNumber), Description: requirements.SaveAssignsChangeNumber.Description(), Hits: 2},
			},
		},
		{name: "other run", runID: "run-2", want: []models.RequirementCoverage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Coverage(ctx, tt.runID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "run-1", svc.RunID())
}

func TestRequirementService_Repository(t *testing.T) {
	errFlush := errors.New("database is down")
	errQuery := errors.New("query failed")
	coverage := []models.RequirementCoverage{{RequirementID: 100, Description: "d", Hits: 3}}

	tests := []struct {
		name      string
		setup     func(repo *mock.MockRequirementRepository, flusher *mock.MockFlusher)
		noFlusher bool
		want      []models.RequirementCoverage
		wantErr   error
	}{
		{
			name: "flushes then queries",
			setup: func(repo *mock.MockRequirementRepository, flusher *mock.MockFlusher) {
				gomock.InOrder(
					flusher.EXPECT().Flush(gomock.Any()).Return(nil),
					repo.EXPECT().Coverage(gomock.Any(), "run-1").Return(coverage, nil),
				)
			},
			want: coverage,
		},
		{
			name: "flush failure",
			setup: func(_ *mock.MockRequirementRepository, flusher *mock.MockFlusher) {
				flusher.EXPECT().Flush(gomock.Any()).Return(errFlush)
			},
			wantErr: errFlush,
		},
		{
			name: "query failure",
			setup: func(repo *mock.MockRequirementRepository, flusher *mock.MockFlusher) {
				flusher.EXPECT().Flush(gomock.Any()).Return(nil)
				repo.EXPECT().Coverage(gomock.Any(), "run-1").Return(nil, errQuery)
			},
			wantErr: errQuery,
		},
		{
			name:      "no flusher",
			noFlusher: true,
			setup: func(repo *mock.MockRequirementRepository, _ *mock.MockFlusher) {
				repo.EXPECT().Coverage(gomock.Any(), "run-1").Return(coverage, nil)
			},
			want: coverage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRequirementRepository(ctrl)
			flusher := mock.NewMockFlusher(ctrl)
			tt.setup(repo, flusher)

			var f requirements.Flusher = flusher
			if tt.noFlusher {
				f = nil
			}
			svc := NewRequirementService("run-1", requirements.NewRecordingSink(), repo, f, logger.Nop())

			got, err := svc.Coverage(context.Background(), "run-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
