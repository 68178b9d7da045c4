// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package formula

import "github.com/alecthomas/participle/v2/lexer"

// The structs below are the raw participle parse tree: one level per
// precedence tier, lowest to highest, following spec.md's grammar
// (expr := bicond; bicond := cond ('<>' cond)*; cond := disj ('>' disj)*;
// disj := conj ('v' conj)*; conj := unary ('.' unary)*; unary := '~' unary
// | primary; primary := atom | BOTTOM | bracket expr bracket).
//
// participle does not know which of these chains associate left and which
// associate right; that is resolved by the fold* functions in fold.go
// which walk this tree into the immutable Formula AST.

type rawBicond struct {
	Pos   lexer.Position `parser:""`
	Conds []*rawCond     `parser:"@@ (Bicond @@)*"`
}

type rawCond struct {
	Pos   lexer.Position `parser:""`
	Disjs []*rawDisj     `parser:"@@ (Cond @@)*"`
}

type rawDisj struct {
	Pos   lexer.Position `parser:""`
	Conjs []*rawConj     `parser:"@@ (V @@)*"`
}

type rawConj struct {
	Pos    lexer.Position `parser:""`
	Unarys []*rawUnary    `parser:"@@ (Dot @@)*"`
}

// rawUnary is right-recursive: "~~~P" nests three rawUnary values deep,
// which already matches the grammar's associativity for negation.
type rawUnary struct {
	Pos     lexer.Position `parser:""`
	Negated *rawUnary      `parser:"  Tilde @@"`
	Primary *rawPrimary    `parser:"| @@"`
}

type rawPrimary struct {
	Pos     lexer.Position `parser:""`
	Atom    string         `parser:"  @Atom"`
	Bottom  bool           `parser:"| @Bottom"`
	Grouped *rawBicond     `parser:"| Open @@ Close"`
}
