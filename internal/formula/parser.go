// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package formula

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/samber/oops"
)

// Error codes for formula parse failures.
const (
	CodeEmptyFormula = "FORMULA_EMPTY"
	CodeSyntaxError  = "FORMULA_SYNTAX"
)

var rawParser = mustBuildParser()

func mustBuildParser() *participle.Parser[rawBicond] {
	p, err := participle.Build[rawBicond](
		participle.Lexer(formulaLexer),
		participle.Elide("whitespace"),
	)
	if err != nil {
		panic(fmt.Sprintf("formula: failed to build grammar: %v", err))
	}
	return p
}

// Parse parses an ASCII (or accepted-Unicode-variant) formula string into a
// Formula AST. The input is normalized first (§4.1): symbol substitution,
// then whitespace removal.
func Parse(ascii string) (*Formula, error) {
	normalized := Normalize(ascii)
	if normalized == "" {
		return nil, oops.Code(CodeEmptyFormula).Errorf("empty formula")
	}

	raw, err := rawParser.ParseString("", normalized)
	if err != nil {
		return nil, oops.Code(CodeSyntaxError).
			With("input", ascii).
			With("normalized", normalized).
			Wrap(err)
	}

	return foldBicond(raw), nil
}
