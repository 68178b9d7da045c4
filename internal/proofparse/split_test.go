// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package proofparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogaozden/propbench/internal/rulecatalog"
	"github.com/dogaozden/propbench/internal/theorem"
)

func TestSplitJustification_Premise(t *testing.T) {
	f, j, ok := splitJustification("P > Q Premise")
	require.True(t, ok)
	assert.Equal(t, "P > Q", f)
	assert.Equal(t, theorem.KindPremise, j.Kind)
}

func TestSplitJustification_KeywordFirstAssumption(t *testing.T) {
	f, j, ok := splitJustification("Assume P (CP)")
	require.True(t, ok)
	assert.Equal(t, "P", f)
	assert.Equal(t, theorem.KindAssumption, j.Kind)
	assert.Equal(t, rulecatalog.CP, j.Technique)
}

func TestSplitJustification_FormulaFirstAssumption(t *testing.T) {
	f, j, ok := splitJustification("~P Assumption (IP)")
	require.True(t, ok)
	assert.Equal(t, "~P", f)
	assert.Equal(t, rulecatalog.IP, j.Technique)
}

func TestSplitJustification_BareClose(t *testing.T) {
	f, j, ok := splitJustification("CP 3-7")
	require.True(t, ok)
	assert.Equal(t, "", f)
	assert.Equal(t, theorem.KindSubproofClose, j.Kind)
	assert.Equal(t, 3, j.Start)
	assert.Equal(t, 7, j.End)
}

func TestSplitJustification_CloseWithFormula(t *testing.T) {
	f, j, ok := splitJustification("P > Q CP 1-2")
	require.True(t, ok)
	assert.Equal(t, "P > Q", f)
	assert.Equal(t, rulecatalog.CP, j.Technique)
}

func TestSplitJustification_ReverseOrder(t *testing.T) {
	f, j, ok := splitJustification("Q 1,2 Conjunction")
	require.True(t, ok)
	assert.Equal(t, "Q", f)
	assert.Equal(t, rulecatalog.Conj, j.Rule)
	assert.Equal(t, []int{1, 2}, j.Cited)
}

func TestSplitJustification_BareEquivalenceRule(t *testing.T) {
	f, j, ok := splitJustification("~~P Double Negation")
	require.True(t, ok)
	assert.Equal(t, "~~P", f)
	assert.Equal(t, rulecatalog.DN, j.Rule)
	assert.Equal(t, []int{0}, j.Cited)
}

func TestSplitJustification_Unrecognized(t *testing.T) {
	_, _, ok := splitJustification("completely unintelligible text")
	assert.False(t, ok)
}

func TestStripTrailingCommentary(t *testing.T) {
	assert.Equal(t, "P Premise", stripTrailingCommentary("P Premise -- the first premise"))
	assert.Equal(t, "P.Q (Conj 1,2)", stripTrailingCommentary("P.Q (Conj 1,2)"))
	assert.Equal(t, "P.Q", stripTrailingCommentary("P.Q (this is commentary)"))
}
