// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package proofparse turns the freeform text an LLM emits for a natural
// deduction proof into a sequence of theorem.ProofLine values, tolerating
// conversational filler, inconsistent numbering, and mixed indentation
// styles. It never fails outright: lines it cannot interpret become
// either commentary (dropped) or a theorem.ParseError (kept, reported).
package proofparse

import (
	"regexp"
	"strings"

	"github.com/dogaozden/propbench/internal/rulecatalog"
)

// commentaryPrefixes are lower-cased prefixes that mark a line as
// conversational prose rather than proof content (spec.md §4.2 stage 1).
var commentaryPrefixes = []string{
	"proof:", "here is", "here's", "the proof", "let me", "i will", "i'll",
	"we need", "we can", "note:", "note that", "explanation", "therefore",
	"thus", "qed", "∎", "//", "/*", "```", "--", "wait", "let's",
	"it looks like", "this is", "now ", "next", "first", "then", "so ",
	"since", "because", "using", "applying", "from ", "to ", "by ",
	"finally", "we should", "we must", "to prove",
}

var horizontalRule = regexp.MustCompile(`^[-=_*~ ]+$`)

// isCommentary reports whether trimmed (already whitespace-trimmed) is
// conversational filler rather than candidate proof content.
func isCommentary(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	if horizontalRule.MatchString(trimmed) {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, prefix := range commentaryPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

var operatorChars = "v.~⊃∨·¬≡⊥∧→↔#><"

// looksLikeProof reports whether a line (after number/marker stripping)
// is plausible proof content: it contains a logical operator character,
// a recognizable rule name, or a standalone uppercase letter.
func looksLikeProof(s string) bool {
	if strings.ContainsAny(s, operatorChars) {
		return true
	}
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return containsKnownRuleName(s)
}

func containsKnownRuleName(s string) bool {
	lower := strings.ToLower(s)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	for i := range words {
		for n := 1; n <= 3 && i+n <= len(words); n++ {
			if _, ok := rulecatalog.Canonicalize(strings.Join(words[i:i+n], " ")); ok {
				return true
			}
		}
	}
	return false
}

// stripBackticks removes every backtick from s; the spec requires this
// before any other processing so fenced code blocks don't interfere with
// line-number or marker stripping.
func stripBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "")
}
