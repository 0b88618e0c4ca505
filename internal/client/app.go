// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ics-oracle/internal/adapter"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/utils"
	"github.com/MKhiriev/go-ics-oracle/models"
)

var errNoOracle = errors.New("no oracle client provided")

// StepResult is the outcome of one replayed step.
type StepResult struct {
	Index      int
	Operation  string
	ResultCode models.ResultCode
	Response   json.RawMessage
	Mismatch   bool
}

type App struct {
	oracle adapter.OracleClient
	script Script
	out    io.Writer
	ids    *utils.UUIDGenerator

	results []StepResult
	logger  *logger.Logger
}

func NewApp(oracle adapter.OracleClient, script Script, out io.Writer, logger *logger.Logger) (*App, error) {
	if oracle == nil {
		return nil, errNoOracle
	}
	if out == nil {
		out = io.Discard
	}
	return &App{
		oracle: oracle,
		script: script,
		out:    out,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// Run sends the steps in order, each under its own trace id, then prints the
// coverage of the oracle's current run. A transport error stops the replay;
// a result code differing from the step's expectation does not.
func (a *App) Run(ctx context.Context) error {
	mismatches := 0
	for i, step := range a.script.Steps {
		res, err := a.replay(ctx, i+1, step)
		if err != nil {
			return err
		}
		a.results = append(a.results, res)
		if res.Mismatch {
			mismatches++
		}
	}

	report, err := a.oracle.Coverage(ctx, "")
	if err != nil {
		return fmt.Errorf("error fetching coverage: %w", err)
	}
	fmt.Fprintf(a.out, "run %s: %d requirements covered\n", report.RunID, report.Length)
	for _, r := range report.Requirements {
		fmt.Fprintf(a.out, "  R%d x%d %s\n", r.RequirementID, r.Hits, r.Description)
	}

	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d steps", ErrExpectationsFailed, mismatches, len(a.script.Steps))
	}
	return nil
}

func (a *App) replay(ctx context.Context, index int, step Step) (StepResult, error) {
	traceID := a.ids.Generate()
	ctx = utils.WithTraceID(ctx, traceID)

	var raw json.RawMessage
	if err := a.oracle.Call(ctx, step.Operation, step.Request, &raw); err != nil {
		a.logger.Err(err).Str("trace_id", traceID).Int("step", index).Msg("step failed")
		return StepResult{}, fmt.Errorf("step %d %s: %w", index, step.Operation, err)
	}

	var head struct {
		ResultCode models.ResultCode `json:"result_code"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return StepResult{}, fmt.Errorf("step %d %s: error decoding response: %w", index, step.Operation, err)
	}

	res := StepResult{
		Index:      index,
		Operation:  step.Operation,
		ResultCode: head.ResultCode,
		Response:   raw,
		Mismatch:   step.Expect != nil && *step.Expect != head.ResultCode,
	}

	mark := "ok"
	if res.Mismatch {
		mark = fmt.Sprintf("MISMATCH want %s", *step.Expect)
	}
	fmt.Fprintf(a.out, "#%d %s -> %s %s\n", index, step.Operation, head.ResultCode, mark)
	return res, nil
}

// Results returns the outcomes recorded by the last Run.
func (a *App) Results() []StepResult {
	return a.results
}
