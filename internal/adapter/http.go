// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/utils"
	"github.com/MKhiriev/go-ics-oracle/models"
)

const traceIDHeader = "X-Trace-ID"

type httpOracleClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPOracleClient builds an [OracleClient] for the oracle listening at
// address ("host:port" or a full URL). A zero timeout leaves requests
// unbounded apart from their context.
func NewHTTPOracleClient(address string, timeout time.Duration, logger *logger.Logger) (OracleClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid oracle address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &httpOracleClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Call forwards the trace id stored in ctx by utils.WithTraceID, so both
// sides log the same id.
func (c *httpOracleClient) Call(ctx context.Context, operation string, req, resp any) error {
	r := c.client.R().
		SetContext(ctx).
		SetPathParam("operation", operation).
		SetBody(req).
		SetResult(resp)
	if id, ok := utils.GetTraceIDFromContext(ctx); ok {
		r.SetHeader(traceIDHeader, id)
	}

	res, err := r.Post("/api/rop/{operation}")
	if err != nil {
		return fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(res); err != nil {
		c.logger.Err(err).Str("func", "*httpOracleClient.Call").Str("operation", operation).Msg("remote oracle rejected the call")
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

func (c *httpOracleClient) Coverage(ctx context.Context, runID string) (models.CoverageReport, error) {
	var report models.CoverageReport

	r := c.client.R().SetContext(ctx).SetResult(&report)
	if runID != "" {
		r.SetQueryParam("run_id", runID)
	}

	res, err := r.Get("/api/requirements")
	if err != nil {
		return models.CoverageReport{}, fmt.Errorf("coverage request: %w", err)
	}
	if err = mapHTTPError(res); err != nil {
		return models.CoverageReport{}, err
	}
	return report, nil
}

func (c *httpOracleClient) Version(ctx context.Context) (string, error) {
	res, err := c.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(res); err != nil {
		return "", err
	}
	return string(res.Body()), nil
}

// Do is the typed form of [OracleClient.Call].
func Do[Resp, Req any](ctx context.Context, c OracleClient, operation string, req Req) (Resp, error) {
	var resp Resp
	err := c.Call(ctx, operation, req, &resp)
	return resp, err
}
