// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package proofparse

import (
	"strings"

	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/theorem"
)

// Parse converts freeform proof text into a theorem.ParseResult. It
// never returns an error itself: every line either becomes a ProofLine,
// a ParseError, or an unparsed (commentary) section. The theorem
// argument is accepted to match the public parse_proof(text, theorem)
// contract; none of the parsing stages consult it — premise membership
// is checked by the validator, not the parser.
func Parse(text string, _ theorem.Theorem) theorem.ParseResult {
	survivors, unparsed := filterCommentary(text)
	if len(survivors) == 0 {
		return theorem.ParseResult{UnparsedSections: unparsed}
	}

	scan := scanIndents(survivors)

	var lines []theorem.ProofLine
	var errs []theorem.ParseError

	counter := 1
	for _, raw := range survivors {
		indent := measureIndent(raw)
		markerDepth, afterMarkers := stripMarkers(raw)
		num, afterNum, hasNum := stripLineNumberPrefix(afterMarkers)

		var lineNum int
		if hasNum {
			lineNum = num
			counter = num + 1
		} else {
			lineNum = counter
			counter++
		}

		candidate := strings.TrimSpace(afterNum)
		if candidate == "" || (!hasNum && !looksLikeProof(candidate)) {
			unparsed = append(unparsed, strings.TrimSpace(raw))
			continue
		}

		tail := stripTrailingCommentary(candidate)
		formulaText, just, ok := splitJustification(tail)
		if !ok {
			n := lineNum
			errs = append(errs, theorem.ParseError{
				LineNumber: &n,
				Raw:        strings.TrimSpace(raw),
				Message:    "could not interpret line as proof content",
			})
			continue
		}

		depth := markerDepth
		if markerDepth == 0 {
			depth = scan.depthOf(indent)
		}

		var f *formula.Formula
		if formulaText != "" {
			parsed, err := formula.Parse(formulaText)
			if err != nil {
				n := lineNum
				errs = append(errs, theorem.ParseError{
					LineNumber: &n,
					Raw:        strings.TrimSpace(raw),
					Message:    "invalid formula: " + err.Error(),
				})
				continue
			}
			f = parsed
		}

		lines = append(lines, theorem.ProofLine{
			LineNumber:    lineNum,
			Formula:       f,
			Justification: just,
			Depth:         depth,
		})
	}

	backfillCloseFormulas(lines)
	reconstructDepths(lines)

	return theorem.ParseResult{Lines: lines, Errors: errs, UnparsedSections: unparsed}
}

// filterCommentary splits text into lines, strips backticks, and drops
// conversational filler (spec.md §4.2 stage 1). It returns the surviving
// lines and the non-empty commentary lines it dropped.
func filterCommentary(text string) (survivors, commentary []string) {
	for _, raw := range strings.Split(text, "\n") {
		stripped := stripBackticks(raw)
		trimmed := strings.TrimSpace(stripped)
		if isCommentary(trimmed) {
			if trimmed != "" {
				commentary = append(commentary, trimmed)
			}
			continue
		}
		survivors = append(survivors, stripped)
	}
	return survivors, commentary
}

// backfillCloseFormulas fills in the formula of a bare subproof close
// (spec.md §4.2 stage 4): "CP 3-7" becomes "(φ_3) > (φ_7)", "IP 3-7"
// becomes "~(φ_3)".
func backfillCloseFormulas(lines []theorem.ProofLine) {
	byNumber := make(map[int]*formula.Formula, len(lines))
	for _, l := range lines {
		byNumber[l.LineNumber] = l.Formula
	}

	for i := range lines {
		if lines[i].Formula != nil || lines[i].Justification.Kind != theorem.KindSubproofClose {
			continue
		}
		start := byNumber[lines[i].Justification.Start]
		end := byNumber[lines[i].Justification.End]
		if start == nil || end == nil {
			continue
		}
		if lines[i].Justification.Technique == "CP" {
			lines[i].Formula = formula.NewCond(start, end)
		} else {
			lines[i].Formula = formula.NewNot(start)
		}
	}
}

// reconstructDepths overrides whitespace-derived depths using the
// justification stream alone (spec.md §4.2 stage 5), which is far more
// reliable across models than indentation.
func reconstructDepths(lines []theorem.ProofLine) {
	currentDepth := 0
	for i := range lines {
		switch lines[i].Justification.Kind {
		case theorem.KindAssumption:
			currentDepth++
			lines[i].Depth = currentDepth
		case theorem.KindSubproofClose:
			if currentDepth > 0 {
				currentDepth--
			}
			lines[i].Depth = currentDepth
		default:
			lines[i].Depth = currentDepth
		}
	}
}
