// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package rulecatalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogaozden/propbench/internal/rulecatalog"
)

func TestCanonicalize_KnownAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want rulecatalog.Rule
	}{
		{"MP", rulecatalog.MP},
		{"modus ponens", rulecatalog.MP},
		{"Modus Ponens", rulecatalog.MP},
		{"MODUSPONENS", rulecatalog.MP},
		{"D.N.", rulecatalog.DN},
		{"DeMorgan", rulecatalog.DeM},
		{"de morgan", rulecatalog.DeM},
		{"CP", rulecatalog.CP},
		{"conditional proof", rulecatalog.CP},
		{"reductio ad absurdum", rulecatalog.IP},
	}
	for _, tt := range tests {
		got, ok := rulecatalog.Canonicalize(tt.raw)
		require.True(t, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestCanonicalize_Unknown(t *testing.T) {
	_, ok := rulecatalog.Canonicalize("not a rule")
	assert.False(t, ok)
}

func TestIsInferenceAndEquivalenceAreDisjoint(t *testing.T) {
	all := []rulecatalog.Rule{
		rulecatalog.MP, rulecatalog.MT, rulecatalog.DS, rulecatalog.Simp, rulecatalog.Conj,
		rulecatalog.HS, rulecatalog.Add, rulecatalog.CD, rulecatalog.NegE,
		rulecatalog.DN, rulecatalog.DeM, rulecatalog.Comm, rulecatalog.Assoc, rulecatalog.Dist,
		rulecatalog.Contra, rulecatalog.Impl, rulecatalog.Exp, rulecatalog.Taut, rulecatalog.Equiv,
	}
	for _, r := range all {
		assert.NotEqual(t, rulecatalog.IsInference(r), rulecatalog.IsEquivalence(r), string(r))
		assert.True(t, rulecatalog.IsInference(r) || rulecatalog.IsEquivalence(r), string(r))
	}
}

func TestVersionIsValidSemver(t *testing.T) {
	require.NotNil(t, rulecatalog.Version)
	assert.Equal(t, uint64(1), rulecatalog.Version.Major())
}
