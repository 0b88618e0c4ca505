// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the oracle's HTTP API. A test
// harness running in another process uses [OracleClient] to drive a remote
// oracle step by step and to read back requirement coverage.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is]. Protocol outcomes are not errors: they arrive
// in the ResultCode of the decoded response.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

type OracleClient interface {
	// Call posts req to /api/rop/{operation} and decodes the body into resp.
	Call(ctx context.Context, operation string, req, resp any) error

	// Coverage fetches requirement hits. An empty runID selects the remote
	// oracle's current run; "all" aggregates every stored run.
	Coverage(ctx context.Context, runID string) (models.CoverageReport, error)

	// Version returns the remote oracle's build version.
	Version(ctx context.Context) (string, error)
}
