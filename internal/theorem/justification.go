// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package theorem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/dogaozden/propbench/internal/rulecatalog"
)

// JustificationKind distinguishes the five legal shapes a ProofLine's
// justification can take (spec.md §3).
type JustificationKind int

const (
	KindPremise JustificationKind = iota
	KindAssumption
	KindInference
	KindEquivalence
	KindSubproofClose
)

// Justification is a tagged union. Only the fields relevant to Kind are
// populated; the zero value of the rest is meaningless.
type Justification struct {
	Kind      JustificationKind
	Technique rulecatalog.Rule // KindAssumption, KindSubproofClose: CP or IP
	Rule      rulecatalog.Rule // KindInference, KindEquivalence
	Cited     []int            // KindInference (ordered), KindEquivalence (single element)
	Start     int              // KindSubproofClose
	End       int              // KindSubproofClose
}

// Premise builds a Premise justification.
func Premise() Justification { return Justification{Kind: KindPremise} }

// NewAssumption builds an Assumption(technique) justification.
func NewAssumption(technique rulecatalog.Rule) Justification {
	return Justification{Kind: KindAssumption, Technique: technique}
}

// NewInference builds an Inference(rule, cited) justification.
func NewInference(rule rulecatalog.Rule, cited []int) Justification {
	return Justification{Kind: KindInference, Rule: rule, Cited: cited}
}

// NewEquivalence builds an Equivalence(rule, cited) justification. cited
// must name exactly one line; a second argument is never legal.
func NewEquivalence(rule rulecatalog.Rule, cited int) Justification {
	return Justification{Kind: KindEquivalence, Rule: rule, Cited: []int{cited}}
}

// NewSubproofClose builds a SubproofClose(technique, start, end)
// justification.
func NewSubproofClose(technique rulecatalog.Rule, start, end int) Justification {
	return Justification{Kind: KindSubproofClose, Technique: technique, Start: start, End: end}
}

// String renders the canonical textual form used at the JSON boundary
// (spec.md §6): "Premise", "Assumption (CP)", "MP 1,2", "CP 3-7".
func (j Justification) String() string {
	switch j.Kind {
	case KindPremise:
		return "Premise"
	case KindAssumption:
		return fmt.Sprintf("Assumption (%s)", j.Technique)
	case KindInference, KindEquivalence:
		parts := make([]string, len(j.Cited))
		for i, n := range j.Cited {
			parts[i] = strconv.Itoa(n)
		}
		return fmt.Sprintf("%s %s", j.Rule, strings.Join(parts, ","))
	case KindSubproofClose:
		return fmt.Sprintf("%s %d-%d", j.Technique, j.Start, j.End)
	default:
		return ""
	}
}

const (
	// CodeBadJustification marks a canonical justification string that
	// does not match any of the four recognized forms.
	CodeBadJustification = "JUSTIFICATION_SYNTAX"
)

// ParseCanonical parses a canonical justification string (the inverse of
// String) back into a Justification. It is used at the JSON boundary,
// never by the free-text proof parser (which produces Justification
// values directly via the constructors above).
func ParseCanonical(s string) (Justification, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "Premise":
		return Premise(), nil
	case strings.HasPrefix(s, "Assumption ("):
		tech := strings.TrimSuffix(strings.TrimPrefix(s, "Assumption ("), ")")
		r, ok := rulecatalog.Canonicalize(tech)
		if !ok || !rulecatalog.IsTechnique(r) {
			return Justification{}, oops.Code(CodeBadJustification).With("input", s).Errorf("unknown subproof technique %q", tech)
		}
		return NewAssumption(r), nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Justification{}, oops.Code(CodeBadJustification).With("input", s).Errorf("expected \"RULE arg\", got %d fields", len(fields))
	}
	rule, ok := rulecatalog.Canonicalize(fields[0])
	if !ok {
		return Justification{}, oops.Code(CodeBadJustification).With("input", s).Errorf("unknown rule %q", fields[0])
	}

	if rulecatalog.IsTechnique(rule) {
		start, end, err := parseRange(fields[1])
		if err != nil {
			return Justification{}, oops.Code(CodeBadJustification).With("input", s).Wrap(err)
		}
		return NewSubproofClose(rule, start, end), nil
	}

	cited, err := parseCitedList(fields[1])
	if err != nil {
		return Justification{}, oops.Code(CodeBadJustification).With("input", s).Wrap(err)
	}
	if rulecatalog.IsEquivalence(rule) {
		if len(cited) != 1 {
			return Justification{}, oops.Code(CodeBadJustification).With("input", s).Errorf("equivalence rule %s expects exactly one citation, got %d", rule, len(cited))
		}
		return NewEquivalence(rule, cited[0]), nil
	}
	return NewInference(rule, cited), nil
}

func parseRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, oops.Errorf("expected \"N-M\", got %q", s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, oops.Wrapf(err, "bad range start %q", parts[0])
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, oops.Wrapf(err, "bad range end %q", parts[1])
	}
	return start, end, nil
}

func parseCitedList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, oops.Wrapf(err, "bad line reference %q", p)
		}
		out[i] = n
	}
	return out, nil
}
