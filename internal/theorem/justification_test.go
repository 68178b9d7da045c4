// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package theorem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogaozden/propbench/internal/rulecatalog"
	"github.com/dogaozden/propbench/internal/theorem"
)

func TestJustification_StringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		j    theorem.Justification
		want string
	}{
		{"premise", theorem.Premise(), "Premise"},
		{"assumption cp", theorem.NewAssumption(rulecatalog.CP), "Assumption (CP)"},
		{"assumption ip", theorem.NewAssumption(rulecatalog.IP), "Assumption (IP)"},
		{"inference single", theorem.NewInference(rulecatalog.MP, []int{1}), "MP 1"},
		{"inference multi", theorem.NewInference(rulecatalog.Conj, []int{1, 2}), "Conj 1,2"},
		{"equivalence", theorem.NewEquivalence(rulecatalog.DeM, 5), "DeM 5"},
		{"close", theorem.NewSubproofClose(rulecatalog.CP, 3, 7), "CP 3-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.j.String())

			parsed, err := theorem.ParseCanonical(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.j, parsed)
		})
	}
}

func TestParseCanonical_Errors(t *testing.T) {
	tests := []string{
		"",
		"Assumption (XY)",
		"NotARule 1,2",
		"CP notarange",
		"MP one,two",
	}
	for _, in := range tests {
		_, err := theorem.ParseCanonical(in)
		assert.Error(t, err, in)
	}
}
