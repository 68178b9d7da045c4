// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package formula

import "github.com/alecthomas/participle/v2/lexer"

// formulaLexer defines the token types for the propositional formula
// grammar. Order matters: Bicond must precede Cond so "<>" is not split
// into a lone "<" followed by garbage.
//
// Atoms are single letters of either case (NewAtom folds them to upper
// case). V is listed before Atom, so a lowercase "v" always lexes as
// disjunction and never as an atom; there is no lookahead on the
// following character (RE2, which backs this lexer, has none).
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Bicond", Pattern: `<>`},
	{Name: "Cond", Pattern: `>`},
	{Name: "Open", Pattern: `[(\[{]`},
	{Name: "Close", Pattern: `[)\]}]`},
	{Name: "Tilde", Pattern: `~`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "V", Pattern: `v`},
	{Name: "Bottom", Pattern: `#`},
	{Name: "Atom", Pattern: `[A-Za-z]`},
	{Name: "whitespace", Pattern: `\s+`},
})
