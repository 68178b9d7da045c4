// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package proofparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dogaozden/propbench/internal/rulecatalog"
	"github.com/dogaozden/propbench/internal/theorem"
)

// splitJustification implements the justification splitter (spec.md
// §4.2.1): given a line tail, after line-number and trailing-commentary
// stripping, it returns the formula text and the structured
// justification, trying each recognized pattern in priority order.
func splitJustification(tail string) (formulaPart string, just theorem.Justification, ok bool) {
	tail = strings.TrimSpace(tail)

	if f, ok := tryPremise(tail); ok {
		return f, theorem.Premise(), true
	}
	if f, tech, ok := tryKeywordFirstAssumption(tail); ok {
		return f, theorem.NewAssumption(tech), true
	}
	if f, tech, ok := tryFormulaFirstAssumption(tail); ok {
		return f, theorem.NewAssumption(tech), true
	}
	if tech, s, e, ok := tryBareClose(tail); ok {
		return "", theorem.NewSubproofClose(tech, s, e), true
	}
	if f, tech, s, e, ok := tryCloseWithFormula(tail); ok {
		return f, theorem.NewSubproofClose(tech, s, e), true
	}
	if f, j, ok := tryParenRuleTail(tail); ok {
		return f, j, true
	}
	if f, rule, cited, ok := trySuffixNumericAfterRule(tail); ok {
		return f, ruleJustification(rule, cited), true
	}
	if f, rule, cited, ok := tryRuleAtVeryEnd(tail); ok {
		return f, ruleJustification(rule, cited), true
	}
	if f, rule, ok := tryBareRuleSuffix(tail); ok {
		return f, theorem.NewEquivalence(rule, 0), true
	}
	return "", theorem.Justification{}, false
}

func ruleJustification(rule rulecatalog.Rule, cited []int) theorem.Justification {
	if rulecatalog.IsEquivalence(rule) {
		c := 0
		if len(cited) > 0 {
			c = cited[0]
		}
		return theorem.NewEquivalence(rule, c)
	}
	return theorem.NewInference(rule, cited)
}

var (
	premisePattern              = regexp.MustCompile(`(?i)^(.*\S)\s+\(?premise\.?\)?\s*$`)
	keywordFirstAssumption      = regexp.MustCompile(`(?i)^(?:assume|assumption|ass\.?)\s+(.+?)\s*\(?(cp|ip)\)?\.?\s*$`)
	formulaFirstAssumption      = regexp.MustCompile(`(?i)^(.+?)\s+(?:assumption|assume|ass\.?)\s*\(?(cp|ip)\)?\.?\s*$`)
	bareSubproofClose           = regexp.MustCompile(`(?i)^(cp|ip)\s+(\d+)\s*[-–—,]\s*(\d+)\.?\s*$`)
	subproofCloseWithFormula    = regexp.MustCompile(`(?i)^(.+?)\s+(cp|ip)\s+(\d+)\s*[-–—,]\s*(\d+)\.?\s*$`)
	parenthesizedTail           = regexp.MustCompile(`^(.+?)\s*\(([^()]*)\)\s*$`)
)

func tryPremise(tail string) (string, bool) {
	m := premisePattern.FindStringSubmatch(tail)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func tryKeywordFirstAssumption(tail string) (string, rulecatalog.Rule, bool) {
	m := keywordFirstAssumption.FindStringSubmatch(tail)
	if m == nil {
		return "", "", false
	}
	formulaPart := strings.TrimSpace(m[1])
	if formulaPart == "" {
		return "", "", false
	}
	return formulaPart, rulecatalog.Rule(strings.ToUpper(m[2])), true
}

func tryFormulaFirstAssumption(tail string) (string, rulecatalog.Rule, bool) {
	m := formulaFirstAssumption.FindStringSubmatch(tail)
	if m == nil {
		return "", "", false
	}
	formulaPart := strings.TrimSpace(m[1])
	if formulaPart == "" {
		return "", "", false
	}
	return formulaPart, rulecatalog.Rule(strings.ToUpper(m[2])), true
}

func tryBareClose(tail string) (rulecatalog.Rule, int, int, bool) {
	m := bareSubproofClose.FindStringSubmatch(tail)
	if m == nil {
		return "", 0, 0, false
	}
	s, err1 := strconv.Atoi(m[2])
	e, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		return "", 0, 0, false
	}
	return rulecatalog.Rule(strings.ToUpper(m[1])), s, e, true
}

func tryCloseWithFormula(tail string) (string, rulecatalog.Rule, int, int, bool) {
	m := subproofCloseWithFormula.FindStringSubmatch(tail)
	if m == nil {
		return "", "", 0, 0, false
	}
	formulaPart := strings.TrimSpace(m[1])
	if formulaPart == "" {
		return "", "", 0, 0, false
	}
	s, err1 := strconv.Atoi(m[3])
	e, err2 := strconv.Atoi(m[4])
	if err1 != nil || err2 != nil {
		return "", "", 0, 0, false
	}
	return formulaPart, rulecatalog.Rule(strings.ToUpper(m[2])), s, e, true
}

func tryParenRuleTail(tail string) (string, theorem.Justification, bool) {
	m := parenthesizedTail.FindStringSubmatch(tail)
	if m == nil {
		return "", theorem.Justification{}, false
	}
	formulaPart := strings.TrimSpace(m[1])
	inner := strings.TrimSpace(m[2])
	if formulaPart == "" || inner == "" {
		return "", theorem.Justification{}, false
	}
	innerTokens := strings.Fields(inner)

	maxWords := 3
	if len(innerTokens) < maxWords {
		maxWords = len(innerTokens)
	}
	for wlen := maxWords; wlen >= 1; wlen-- {
		candidate := strings.Join(innerTokens[:wlen], " ")
		rule, ok := rulecatalog.Canonicalize(candidate)
		if !ok {
			continue
		}
		rest := innerTokens[wlen:]

		if rulecatalog.IsTechnique(rule) {
			if len(rest) == 0 {
				continue
			}
			s, e, ok := parseRangeToken(strings.Join(rest, ""))
			if !ok {
				continue
			}
			return formulaPart, theorem.NewSubproofClose(rule, s, e), true
		}

		if len(rest) == 0 {
			if rulecatalog.IsEquivalence(rule) {
				return formulaPart, theorem.NewEquivalence(rule, 0), true
			}
			continue
		}
		cited, err := parseCitedTokens(rest)
		if err != nil {
			continue
		}
		return formulaPart, ruleJustification(rule, cited), true
	}
	return "", theorem.Justification{}, false
}

// trySuffixNumericAfterRule matches "formula RULE lines" (spec pattern
// 7/9): the rule name immediately precedes a trailing numeric citation
// list.
func trySuffixNumericAfterRule(tail string) (string, rulecatalog.Rule, []int, bool) {
	tokens := strings.Fields(tail)
	i := len(tokens)
	var citeTokens []string
	for i > 0 && isNumericToken(tokens[i-1]) {
		i--
		citeTokens = append([]string{tokens[i]}, citeTokens...)
	}
	if len(citeTokens) == 0 {
		return "", "", nil, false
	}
	cited, err := parseCitedTokens(citeTokens)
	if err != nil {
		return "", "", nil, false
	}

	maxWords := 3
	for wlen := maxWords; wlen >= 1; wlen-- {
		if i-wlen < 0 {
			continue
		}
		candidate := strings.Join(tokens[i-wlen:i], " ")
		rule, ok := rulecatalog.Canonicalize(candidate)
		if !ok || rulecatalog.IsTechnique(rule) {
			continue
		}
		formulaPart := strings.Join(tokens[:i-wlen], " ")
		if formulaPart == "" {
			continue
		}
		return formulaPart, rule, cited, true
	}
	return "", "", nil, false
}

// tryRuleAtVeryEnd matches "formula lines RULE" (spec pattern 8): the
// rule name is the very last word(s), with a numeric citation list
// immediately before it.
func tryRuleAtVeryEnd(tail string) (string, rulecatalog.Rule, []int, bool) {
	tokens := strings.Fields(tail)
	for wlen := 3; wlen >= 1; wlen-- {
		if len(tokens) < wlen {
			continue
		}
		candidate := strings.Join(tokens[len(tokens)-wlen:], " ")
		rule, ok := rulecatalog.Canonicalize(candidate)
		if !ok || rulecatalog.IsTechnique(rule) {
			continue
		}
		rest := tokens[:len(tokens)-wlen]
		j := len(rest)
		var citeTokens []string
		for j > 0 && isNumericToken(rest[j-1]) {
			j--
			citeTokens = append([]string{rest[j]}, citeTokens...)
		}
		if len(citeTokens) == 0 {
			continue
		}
		cited, err := parseCitedTokens(citeTokens)
		if err != nil {
			continue
		}
		formulaPart := strings.Join(rest[:j], " ")
		if formulaPart == "" {
			continue
		}
		return formulaPart, rule, cited, true
	}
	return "", "", nil, false
}

// tryBareRuleSuffix matches "formula RULE" with no citation at all
// (spec pattern 10) — legal only for equivalence rules, per the spec's
// note that these are accepted with an implicit (invalid) citation of
// line 0, surfaced later as a validator-time error.
func tryBareRuleSuffix(tail string) (string, rulecatalog.Rule, bool) {
	tokens := strings.Fields(tail)
	for wlen := 3; wlen >= 1; wlen-- {
		if len(tokens) <= wlen {
			continue
		}
		candidate := strings.Join(tokens[len(tokens)-wlen:], " ")
		rule, ok := rulecatalog.Canonicalize(candidate)
		if !ok || !rulecatalog.IsEquivalence(rule) {
			continue
		}
		formulaPart := strings.Join(tokens[:len(tokens)-wlen], " ")
		if formulaPart == "" {
			continue
		}
		return formulaPart, rule, true
	}
	return "", "", false
}

// isNumericToken reports whether tok is a citation token: one or more
// digits, optionally comma-separated (e.g. "1", "1,2", "1,").
func isNumericToken(tok string) bool {
	tok = strings.Trim(tok, ",")
	if tok == "" {
		return false
	}
	sawDigit := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
		case r == ',':
		default:
			return false
		}
	}
	return sawDigit
}

func parseCitedTokens(tokens []string) ([]int, error) {
	joined := strings.Join(tokens, ",")
	parts := strings.Split(joined, ",")
	var out []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, strconv.ErrSyntax
	}
	return out, nil
}

var rangePattern = regexp.MustCompile(`^(\d+)[-–—](\d+)$`)

func parseRangeToken(s string) (int, int, bool) {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(m[1])
	end, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return start, end, true
}
