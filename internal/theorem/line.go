// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package theorem

import "github.com/dogaozden/propbench/internal/formula"

// ProofLine is one entry of a proof: a numbered assertion, its
// justification, and its subproof depth.
type ProofLine struct {
	LineNumber    int
	Formula       *formula.Formula
	Justification Justification
	Depth         int
}

// ProofLineJSON is the wire representation of a ProofLine (spec.md §6):
// the formula is ASCII text and the justification is its canonical
// string form.
type ProofLineJSON struct {
	LineNumber    int    `json:"line_number"`
	Formula       string `json:"formula"`
	Justification string `json:"justification"`
	Depth         int    `json:"depth"`
}

// ToJSON converts a ProofLine to its wire form.
func (l ProofLine) ToJSON() ProofLineJSON {
	return ProofLineJSON{
		LineNumber:    l.LineNumber,
		Formula:       formula.Pretty(l.Formula),
		Justification: l.Justification.String(),
		Depth:         l.Depth,
	}
}

// LineFromJSON converts a wire ProofLine back to its internal form,
// parsing both the formula text and the canonical justification string.
func LineFromJSON(w ProofLineJSON) (ProofLine, error) {
	f, err := formula.Parse(w.Formula)
	if err != nil {
		return ProofLine{}, err
	}
	j, err := ParseCanonical(w.Justification)
	if err != nil {
		return ProofLine{}, err
	}
	return ProofLine{
		LineNumber:    w.LineNumber,
		Formula:       f,
		Justification: j,
		Depth:         w.Depth,
	}, nil
}
