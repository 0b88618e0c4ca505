// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ics-oracle/models"
)

var (
	ErrEmptyScript        = errors.New("script has no steps")
	ErrMissingOperation   = errors.New("step has no operation")
	ErrExpectationsFailed = errors.New("result codes differ from expectations")
)

type Script struct {
	Steps []Step `json:"steps"`
}

type Step struct {
	Operation string             `json:"operation"`
	Request   json.RawMessage    `json:"request,omitempty"`
	Expect    *models.ResultCode `json:"expect,omitempty"`
}

// LoadScript decodes and checks a script. Unknown fields are rejected so a
// misspelled "expect" does not silently disable a check.
func LoadScript(r io.Reader) (Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("error decoding script: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, ErrEmptyScript
	}
	for i, st := range s.Steps {
		if st.Operation == "" {
			return Script{}, fmt.Errorf("step %d: %w", i+1, ErrMissingOperation)
		}
	}
	return s, nil
}
