// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package propbench is the public façade over the benchmark core: the
// two operations an orchestrator calls — ParseProof and Validate — each
// taking and returning only JSON-representable values, with no I/O, no
// clock, and no shared state (safe to call concurrently from many
// workers provided each call's inputs are distinct values).
package propbench

import (
	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/proofparse"
	"github.com/dogaozden/propbench/internal/theorem"
	"github.com/dogaozden/propbench/internal/validate"
)

// ParseFormula parses a single ASCII formula, exposing internal/formula
// to callers who only need the lexer/parser/printer, not a full proof.
func ParseFormula(ascii string) (*formula.Formula, error) {
	return formula.Parse(ascii)
}

// PrettyFormula renders f using the bracket-cycling printer.
func PrettyFormula(f *formula.Formula) string {
	return formula.Pretty(f)
}

// ParseProof turns freeform proof text into a ParseResult. th is
// accepted (and threaded through) to match the public parse_proof(text,
// theorem) contract even though the parser itself does not consult it.
func ParseProof(text string, th theorem.TheoremJSON) (theorem.ParseResultJSON, error) {
	parsedTheorem, err := theorem.TheoremFromJSON(th)
	if err != nil {
		return theorem.ParseResultJSON{}, err
	}
	result := proofparse.Parse(text, parsedTheorem)
	return result.ToJSON(), nil
}

// Validate checks a proof (as produced by ParseProof, or supplied
// directly by a caller) against a theorem.
func Validate(th theorem.TheoremJSON, proof []theorem.ProofLineJSON) (theorem.ValidationResultJSON, error) {
	parsedTheorem, err := theorem.TheoremFromJSON(th)
	if err != nil {
		return theorem.ValidationResultJSON{}, err
	}
	lines := make([]theorem.ProofLine, len(proof))
	for i, w := range proof {
		l, err := theorem.LineFromJSON(w)
		if err != nil {
			return theorem.ValidationResultJSON{}, err
		}
		lines[i] = l
	}
	result := validate.Validate(parsedTheorem, lines)
	return result.ToJSON(), nil
}
