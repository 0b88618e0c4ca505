// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CapturedRequirement is one observation that a protocol requirement was
// exercised during an oracle run.
type CapturedRequirement struct {
	// RunID identifies the oracle instance that produced the capture.
	RunID string `json:"run_id"`

	// RequirementID is the numeric requirement identifier.
	RequirementID int `json:"requirement_id"`

	// Description is the human readable text of the requirement.
	Description string `json:"description"`

	// CapturedAt is when the requirement was observed.
	CapturedAt time.Time `json:"captured_at"`
}

// RequirementCoverage aggregates captures of a single requirement.
type RequirementCoverage struct {
	RequirementID int    `json:"requirement_id"`
	Description   string `json:"description"`
	Hits          int    `json:"hits"`
}

// CoverageReport is the body of the requirement coverage endpoint.
type CoverageReport struct {
	RunID        string                `json:"run_id"`
	Requirements []RequirementCoverage `json:"requirements"`
	Length       int                   `json:"length"`
}
