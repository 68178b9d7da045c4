// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package proofparse

import (
	"regexp"
	"strings"

	"github.com/dogaozden/propbench/internal/rulecatalog"
)

var inlineComment = regexp.MustCompile(`\s--\s.*$`)
var trailingParen = regexp.MustCompile(`\s*\(([^()]*)\)\s*$`)

// stripTrailingCommentary removes trailing "-- ..." inline comments and,
// repeatedly, a final parenthesized group that is not itself a valid
// justification (spec.md §4.2 stage 3). A justification-looking
// parenthesized suffix such as "(DeM 1)" is left alone for the
// justification splitter to consume.
func stripTrailingCommentary(s string) string {
	s = inlineComment.ReplaceAllString(s, "")

	for {
		m := trailingParen.FindStringSubmatchIndex(s)
		if m == nil {
			break
		}
		inner := s[m[2]:m[3]]
		if parenLooksLikeJustification(inner) {
			break
		}
		s = s[:m[0]]
	}
	return strings.TrimRight(s, " \t")
}

// parenLooksLikeJustification reports whether inner (the text between a
// trailing pair of parentheses) reads as a rule citation, subproof close,
// premise, or assumption technique, e.g. "Conj 1,2", "DeM 1", "CP 3-7",
// "Premise", "CP".
func parenLooksLikeJustification(inner string) bool {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSuffix(inner, "."), "premise") {
		return true
	}
	tokens := strings.Fields(inner)
	maxWords := 3
	if len(tokens) < maxWords {
		maxWords = len(tokens)
	}
	for wlen := maxWords; wlen >= 1; wlen-- {
		candidate := strings.Join(tokens[:wlen], " ")
		rule, ok := rulecatalog.Canonicalize(candidate)
		if !ok {
			continue
		}
		rest := tokens[wlen:]
		if rulecatalog.IsTechnique(rule) {
			if len(rest) == 0 {
				return true
			}
			if _, _, ok := parseRangeToken(strings.Join(rest, "")); ok {
				return true
			}
			continue
		}
		if len(rest) == 0 {
			return rulecatalog.IsEquivalence(rule)
		}
		if _, err := parseCitedTokens(rest); err == nil {
			return true
		}
	}
	return false
}
