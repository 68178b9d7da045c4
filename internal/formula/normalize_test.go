// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dogaozden/propbench/internal/formula"
)

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"A . B", "A.B"},
		{"A v B", "AvB"},
		{"A -> B", "A>B"},
		{"A <-> B", "A<>B"},
		{"_|_", "#"},
		{" A  .  B ", "A.B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formula.Normalize(tt.in), tt.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := formula.Normalize("A→BvC")
	twice := formula.Normalize(once)
	assert.Equal(t, once, twice)
}
