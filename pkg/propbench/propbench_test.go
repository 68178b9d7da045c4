// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package propbench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogaozden/propbench/internal/theorem"
	"github.com/dogaozden/propbench/pkg/propbench"
)

func TestParseProof_EndToEnd(t *testing.T) {
	th := theorem.TheoremJSON{
		ID:         "t1",
		Premises:   []string{"P>Q", "P"},
		Conclusion: "Q",
	}
	text := "1. P > Q Premise\n2. P Premise\n3. Q MP 1,2"

	parsed, err := propbench.ParseProof(text, th)
	require.NoError(t, err)
	require.Len(t, parsed.Lines, 3)
	require.Empty(t, parsed.Errors)

	result, err := propbench.Validate(th, parsed.Lines)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 3, result.LineCount)
	assert.Empty(t, result.Errors)
}

func TestValidate_InvalidProofReportsErrors(t *testing.T) {
	th := theorem.TheoremJSON{Conclusion: "Q"}
	proof := []theorem.ProofLineJSON{
		{LineNumber: 1, Formula: "P", Justification: "Premise", Depth: 0},
	}
	result, err := propbench.Validate(th, proof)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestParseFormula_PrettyRoundTrip(t *testing.T) {
	f, err := propbench.ParseFormula("A.BvC")
	require.NoError(t, err)
	assert.Equal(t, "(A.B)vC", propbench.PrettyFormula(f))
}
