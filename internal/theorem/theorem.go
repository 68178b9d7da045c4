// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package theorem holds the value types shared by the proof-text parser,
// the validator, and the public façade: Theorem, ProofLine, Justification,
// and their JSON wire representations (spec.md §6).
package theorem

import "github.com/dogaozden/propbench/internal/formula"

// Theorem is the statement a proof must establish. The validator treats
// only Premises and Conclusion as authoritative; ID and the difficulty
// fields are metadata carried through for the orchestrator.
type Theorem struct {
	ID              string
	Premises        []*formula.Formula
	Conclusion      *formula.Formula
	DifficultyTier  string
	DifficultyValue int
}

// HasPremise reports whether f structurally equals one of the theorem's
// premises.
func (t Theorem) HasPremise(f *formula.Formula) bool {
	for _, p := range t.Premises {
		if formula.Equal(p, f) {
			return true
		}
	}
	return false
}
