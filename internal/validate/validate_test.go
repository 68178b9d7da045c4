// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/rulecatalog"
	"github.com/dogaozden/propbench/internal/theorem"
	"github.com/dogaozden/propbench/internal/validate"
)

func mustParse(t *testing.T, s string) *formula.Formula {
	t.Helper()
	f, err := formula.Parse(s)
	require.NoError(t, err)
	return f
}

func nestedCPProof(t *testing.T) []theorem.ProofLine {
	t.Helper()
	p := mustParse(t, "P")
	q := mustParse(t, "Q")
	pq := mustParse(t, "P.Q")
	qThenPQ := mustParse(t, "Q>(P.Q)")
	pThenQThenPQ := mustParse(t, "P>(Q>(P.Q))")

	return []theorem.ProofLine{
		{LineNumber: 1, Formula: p, Justification: theorem.NewAssumption(rulecatalog.CP), Depth: 1},
		{LineNumber: 2, Formula: q, Justification: theorem.NewAssumption(rulecatalog.CP), Depth: 2},
		{LineNumber: 3, Formula: pq, Justification: theorem.NewInference(rulecatalog.Conj, []int{1, 2}), Depth: 2},
		{LineNumber: 4, Formula: qThenPQ, Justification: theorem.NewSubproofClose(rulecatalog.CP, 2, 3), Depth: 1},
		{LineNumber: 5, Formula: pThenQThenPQ, Justification: theorem.NewSubproofClose(rulecatalog.CP, 1, 4), Depth: 0},
	}
}

func TestValidate_NestedCPAcceptsMatchingConclusion(t *testing.T) {
	th := theorem.Theorem{Conclusion: mustParse(t, "P>(Q>(P.Q))")}
	result := validate.Validate(th, nestedCPProof(t))
	assert.True(t, result.Valid)
	assert.Equal(t, 5, result.LineCount)
	assert.Empty(t, result.Errors)
}

func TestValidate_RejectsMismatchedConclusion(t *testing.T) {
	th := theorem.Theorem{Conclusion: mustParse(t, "(P>Q)v(Q>P)")}
	result := validate.Validate(th, nestedCPProof(t))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
}

func TestValidate_ModusPonensFromPremises(t *testing.T) {
	pq := mustParse(t, "P>Q")
	p := mustParse(t, "P")
	q := mustParse(t, "Q")
	th := theorem.Theorem{Premises: []*formula.Formula{pq, p}, Conclusion: q}
	proof := []theorem.ProofLine{
		{LineNumber: 1, Formula: pq, Justification: theorem.Premise(), Depth: 0},
		{LineNumber: 2, Formula: p, Justification: theorem.Premise(), Depth: 0},
		{LineNumber: 3, Formula: q, Justification: theorem.NewInference(rulecatalog.MP, []int{1, 2}), Depth: 0},
	}
	result := validate.Validate(th, proof)
	assert.True(t, result.Valid)
	assert.Equal(t, 3, result.LineCount)
	assert.Empty(t, result.Errors)
}

func TestValidate_InferenceSchemaMismatchIsRejected(t *testing.T) {
	pq := mustParse(t, "P>Q")
	p := mustParse(t, "P")
	bogus := mustParse(t, "R")
	th := theorem.Theorem{Premises: []*formula.Formula{pq, p}, Conclusion: bogus}
	proof := []theorem.ProofLine{
		{LineNumber: 1, Formula: pq, Justification: theorem.Premise(), Depth: 0},
		{LineNumber: 2, Formula: p, Justification: theorem.Premise(), Depth: 0},
		{LineNumber: 3, Formula: bogus, Justification: theorem.NewInference(rulecatalog.MP, []int{1, 2}), Depth: 0},
	}
	result := validate.Validate(th, proof)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_DeMorganEquivalence(t *testing.T) {
	premise := mustParse(t, "~(P.Q)")
	target := mustParse(t, "~Pv~Q")
	th := theorem.Theorem{Premises: []*formula.Formula{premise}, Conclusion: target}
	proof := []theorem.ProofLine{
		{LineNumber: 1, Formula: premise, Justification: theorem.Premise(), Depth: 0},
		{LineNumber: 2, Formula: target, Justification: theorem.NewEquivalence(rulecatalog.DeM, 1), Depth: 0},
	}
	result := validate.Validate(th, proof)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_PremiseOutsideTheoremPremisesIsRejected(t *testing.T) {
	th := theorem.Theorem{Premises: []*formula.Formula{mustParse(t, "P")}, Conclusion: mustParse(t, "Q")}
	proof := []theorem.ProofLine{
		{LineNumber: 1, Formula: mustParse(t, "Q"), Justification: theorem.Premise(), Depth: 0},
	}
	result := validate.Validate(th, proof)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_IPRequiresContradiction(t *testing.T) {
	notP := mustParse(t, "~P")
	notPOrQ := mustParse(t, "~PvQ")
	th := theorem.Theorem{Conclusion: mustParse(t, "P")}
	proof := []theorem.ProofLine{
		{LineNumber: 1, Formula: notP, Justification: theorem.NewAssumption(rulecatalog.IP), Depth: 1},
		{LineNumber: 2, Formula: notPOrQ, Justification: theorem.NewInference(rulecatalog.Add, []int{1}), Depth: 1},
		{LineNumber: 3, Formula: mustParse(t, "P"), Justification: theorem.NewSubproofClose(rulecatalog.IP, 1, 2), Depth: 0},
	}
	result := validate.Validate(th, proof)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "contradiction")
}

func TestValidate_LineNumberMustStrictlyIncrease(t *testing.T) {
	th := theorem.Theorem{Conclusion: mustParse(t, "P")}
	proof := []theorem.ProofLine{
		{LineNumber: 1, Formula: mustParse(t, "P"), Justification: theorem.Premise(), Depth: 0},
		{LineNumber: 1, Formula: mustParse(t, "P"), Justification: theorem.Premise(), Depth: 0},
	}
	result := validate.Validate(th, proof)
	assert.False(t, result.Valid)
}
