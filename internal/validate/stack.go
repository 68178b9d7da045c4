// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package validate

import (
	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/rulecatalog"
)

// frame is a subproof stack entry (spec.md §3): it records the line that
// opened it, the assumption it was opened with, the technique, and the
// line numbers introduced while it was the active frame.
type frame struct {
	openLine   int
	assumption *formula.Formula
	technique  rulecatalog.Rule
	members    []int
}

// contradictionIn reports whether the frame's member lines contain a
// formula and its negation, or a bare contradiction constant — the
// requirement for closing an IP subproof.
func contradictionIn(f frame, byNumber map[int]*formula.Formula) bool {
	formulas := make([]*formula.Formula, 0, len(f.members))
	for _, n := range f.members {
		if ff, ok := byNumber[n]; ok && ff != nil {
			formulas = append(formulas, ff)
		}
	}
	for _, ff := range formulas {
		if ff.Kind() == formula.KindBottom {
			return true
		}
	}
	for i := range formulas {
		for j := range formulas {
			if i == j {
				continue
			}
			if neg, ok := asNot(formulas[j]); ok && formula.Equal(neg, formulas[i]) {
				return true
			}
		}
	}
	return false
}
