// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package validate checks a sequence of theorem.ProofLine values against
// a theorem.Theorem: it tracks the subproof stack, the visibility of
// prior lines, and matches each line's justification against the nine
// inference-rule and ten equivalence-rule schemata.
package validate

import (
	"fmt"

	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/rulecatalog"
	"github.com/dogaozden/propbench/internal/theorem"
)

// Validate checks proof against th and reports validity, the count of
// lines processed, and a human-readable error per offending line. It
// never panics and never returns a Go error: every failure is recorded
// in the result (spec.md §4.3).
func Validate(th theorem.Theorem, proof []theorem.ProofLine) theorem.ValidationResult {
	v := &validator{
		theorem:     th,
		byNumber:    make(map[int]*formula.Formula, len(proof)),
		depthByLine: make(map[int]int, len(proof)),
		closedLines: make(map[int]bool, len(proof)),
		stack:       []frame{{openLine: 0}},
	}
	for _, line := range proof {
		v.byNumber[line.LineNumber] = line.Formula
		v.depthByLine[line.LineNumber] = line.Depth
	}

	for _, line := range proof {
		v.checkLine(line)
	}

	v.checkConclusion(proof)

	return theorem.ValidationResult{
		Valid:     len(v.errors) == 0,
		LineCount: len(proof),
		Errors:    v.errors,
	}
}

type validator struct {
	theorem     theorem.Theorem
	byNumber    map[int]*formula.Formula
	depthByLine map[int]int
	closedLines map[int]bool
	stack       []frame
	lastLine    int
	sawFirst    bool
	errors      []string
}

func (v *validator) fail(line theorem.ProofLine, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	v.errors = append(v.errors, fmt.Sprintf("line %d: %s", line.LineNumber, msg))
}

func (v *validator) currentDepth() int { return len(v.stack) - 1 }

func (v *validator) checkLine(line theorem.ProofLine) {
	// Line-number monotonicity.
	if v.sawFirst && line.LineNumber <= v.lastLine {
		v.fail(line, "line number %d does not strictly increase from %d", line.LineNumber, v.lastLine)
	}
	v.sawFirst = true
	v.lastLine = line.LineNumber

	// Depth coherence, checked against the expected depth for this
	// justification kind before applying its stack effect.
	var expectedDepth int
	switch line.Justification.Kind {
	case theorem.KindAssumption:
		expectedDepth = v.currentDepth() + 1
	case theorem.KindSubproofClose:
		expectedDepth = v.currentDepth() - 1
		if expectedDepth < 0 {
			expectedDepth = 0
		}
	default:
		expectedDepth = v.currentDepth()
	}
	if line.Depth != expectedDepth {
		v.fail(line, "depth %d does not match expected depth %d", line.Depth, expectedDepth)
	}

	switch line.Justification.Kind {
	case theorem.KindPremise:
		v.checkPremise(line)
	case theorem.KindAssumption:
		v.checkAssumption(line)
	case theorem.KindInference:
		v.checkInference(line)
	case theorem.KindEquivalence:
		v.checkEquivalence(line)
	case theorem.KindSubproofClose:
		v.checkClose(line)
	}
}

func (v *validator) recordMember(lineNumber int) {
	top := len(v.stack) - 1
	if top == 0 {
		return
	}
	v.stack[top].members = append(v.stack[top].members, lineNumber)
}

func (v *validator) checkPremise(line theorem.ProofLine) {
	if v.currentDepth() != 0 {
		v.fail(line, "Premise is only legal at depth 0")
	}
	if line.Formula == nil || !v.theorem.HasPremise(line.Formula) {
		v.fail(line, "formula does not match any theorem premise")
	}
	v.recordMember(line.LineNumber)
}

func (v *validator) checkAssumption(line theorem.ProofLine) {
	v.stack = append(v.stack, frame{
		openLine:   line.LineNumber,
		assumption: line.Formula,
		technique:  line.Justification.Technique,
	})
	v.recordMember(line.LineNumber)
}

func (v *validator) visible(cited int, atDepth int) bool {
	f, ok := v.byNumber[cited]
	if !ok || f == nil {
		return false
	}
	if v.closedLines[cited] {
		return false
	}
	if d, ok := v.depthByLine[cited]; ok && d > atDepth {
		return false
	}
	return true
}

func (v *validator) checkInference(line theorem.ProofLine) {
	j := line.Justification
	var cited []*formula.Formula
	for _, n := range j.Cited {
		if !v.visible(n, v.currentDepth()) {
			v.fail(line, "cited line %d is not visible here", n)
			return
		}
		cited = append(cited, v.byNumber[n])
	}
	if line.Formula == nil || !matchesInference(j.Rule, cited, line.Formula) {
		v.fail(line, "cited lines do not satisfy the %s schema", j.Rule)
		return
	}
	v.recordMember(line.LineNumber)
}

func (v *validator) checkEquivalence(line theorem.ProofLine) {
	j := line.Justification
	if len(j.Cited) != 1 {
		v.fail(line, "%s expects exactly one citation", j.Rule)
		return
	}
	n := j.Cited[0]
	if !v.visible(n, v.currentDepth()) {
		v.fail(line, "cited line %d is not visible here", n)
		return
	}
	cited := v.byNumber[n]
	if line.Formula == nil || !equivalenceHolds(j.Rule, cited, line.Formula) {
		v.fail(line, "no subformula of line %d rewrites to this line under %s", n, j.Rule)
		return
	}
	v.recordMember(line.LineNumber)
}

func (v *validator) checkClose(line theorem.ProofLine) {
	j := line.Justification
	top := v.stack[len(v.stack)-1]
	if len(v.stack) == 1 || top.openLine != j.Start {
		v.fail(line, "no open subproof at line %d to close", j.Start)
		return
	}
	if len(top.members) == 0 || top.members[len(top.members)-1] != j.End {
		v.fail(line, "line %d is not the most recent line of the subproof opened at %d", j.End, j.Start)
		return
	}

	switch j.Technique {
	case rulecatalog.CP:
		want := formula.NewCond(top.assumption, v.byNumber[j.End])
		if line.Formula == nil || !formula.Equal(line.Formula, want) {
			v.fail(line, "CP conclusion must be the conditional from assumption to the closing line")
		}
	case rulecatalog.IP:
		if !contradictionIn(top, v.byNumber) {
			v.fail(line, "IP subproof does not contain a contradiction")
		}
		want := formula.NewNot(top.assumption)
		altOK := false
		if inner, ok := asNot(top.assumption); ok {
			altOK = line.Formula != nil && formula.Equal(line.Formula, inner)
		}
		if line.Formula == nil || (!formula.Equal(line.Formula, want) && !altOK) {
			v.fail(line, "IP conclusion must negate the assumption (or strip its leading negation)")
		}
	}

	v.stack = v.stack[:len(v.stack)-1]
	for _, m := range top.members {
		v.closedLines[m] = true
	}
	v.recordMember(line.LineNumber)
}

func (v *validator) checkConclusion(proof []theorem.ProofLine) {
	var last *theorem.ProofLine
	for i := range proof {
		if proof[i].Depth == 0 {
			last = &proof[i]
		}
	}
	if last == nil {
		v.errors = append(v.errors, "no depth-0 line establishes the conclusion")
		return
	}
	if last.Formula == nil || !formula.Equal(last.Formula, v.theorem.Conclusion) {
		got := "<none>"
		if last.Formula != nil {
			got = formula.Pretty(last.Formula)
		}
		v.errors = append(v.errors, fmt.Sprintf(
			"final line %d asserts %s, not the theorem conclusion %s",
			last.LineNumber, got, formula.Pretty(v.theorem.Conclusion)))
	}
}
