// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package schema gives the CLI's two JSON entry points an enforced
// boundary: a reflected JSON Schema document for each request shape, and
// a compiled validator that checks incoming CLI input against it before
// the value ever reaches the core packages.
package schema

import "github.com/dogaozden/propbench/internal/theorem"

// ValidateRequest is the on-disk/stdin shape of `propbench validate`'s
// input: a theorem and the proof lines to check against it.
type ValidateRequest struct {
	Theorem theorem.TheoremJSON     `json:"theorem" jsonschema:"required"`
	Proof   []theorem.ProofLineJSON `json:"proof" jsonschema:"required"`
}

// ParseProofRequest is the on-disk/stdin shape of `propbench parse`'s
// input: freeform proof text plus the theorem it is a proof of.
type ParseProofRequest struct {
	Text    string              `json:"text" jsonschema:"required"`
	Theorem theorem.TheoremJSON `json:"theorem" jsonschema:"required"`
}
