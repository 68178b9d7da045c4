// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package formula

import "strings"

// symbolTable rewrites accepted Unicode/programmer variants to the
// canonical ASCII alphabet the lexer tokenizes. Order matters: longer
// patterns are listed before shorter ones that share a prefix, and
// contradiction is normalized before disjunction so a later `|`->`v`
// substitution cannot corrupt an already-rewritten `_|_`. Biconditional is
// normalized before conditional so `<->` is not split into `<` `-` `>`.
var symbolTable = []struct {
	from string
	to   string
}{
	{"_|_", "#"},
	{"⊥", "#"},
	{"<=>", "<>"},
	{"<->", "<>"},
	{"≡", "<>"},
	{"↔", "<>"},
	{"=>", ">"},
	{"->", ">"},
	{"→", ">"},
	{"⊃", ">"},
	{"||", "v"},
	{"∨", "v"},
	{"|", "v"},
	{"&&", "."},
	{"&", "."},
	{"·", "."},
	{"∧", "."},
	{"¬", "~"},
	{"−", "~"},
}

// Normalize rewrites ascii to the canonical symbol alphabet and removes
// all whitespace. It is idempotent: normalizing an already-canonical string is
// a no-op.
func Normalize(ascii string) string {
	s := ascii
	for _, sub := range symbolTable {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}
	return strings.Join(strings.Fields(s), "")
}
