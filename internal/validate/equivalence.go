// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package validate

import (
	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/rulecatalog"
)

// equivalenceHolds reports whether there is a single subformula position
// in cited at which substituting the rule's equivalent yields concl
// structurally (spec.md §4.3 equivalence table; accepts either
// direction).
func equivalenceHolds(rule rulecatalog.Rule, cited, concl *formula.Formula) bool {
	for _, candidate := range rewriteSubformula(cited, rule) {
		if formula.Equal(candidate, concl) {
			return true
		}
	}
	return false
}

// rewriteSubformula returns every formula obtainable from f by replacing
// exactly one subformula position (f itself, or a position inside it)
// with its rule-equivalent. Replacement is single-position, per the
// spec: a match at a descendant does not also apply the rule at an
// ancestor in the same candidate.
func rewriteSubformula(f *formula.Formula, rule rulecatalog.Rule) []*formula.Formula {
	var out []*formula.Formula
	out = append(out, equivAt(rule, f)...)

	switch f.Kind() {
	case formula.KindNot:
		for _, newChild := range rewriteSubformula(f.Left(), rule) {
			out = append(out, formula.NewNot(newChild))
		}
	case formula.KindAnd:
		for _, newLeft := range rewriteSubformula(f.Left(), rule) {
			out = append(out, formula.NewAnd(newLeft, f.Right()))
		}
		for _, newRight := range rewriteSubformula(f.Right(), rule) {
			out = append(out, formula.NewAnd(f.Left(), newRight))
		}
	case formula.KindOr:
		for _, newLeft := range rewriteSubformula(f.Left(), rule) {
			out = append(out, formula.NewOr(newLeft, f.Right()))
		}
		for _, newRight := range rewriteSubformula(f.Right(), rule) {
			out = append(out, formula.NewOr(f.Left(), newRight))
		}
	case formula.KindCond:
		for _, newLeft := range rewriteSubformula(f.Left(), rule) {
			out = append(out, formula.NewCond(newLeft, f.Right()))
		}
		for _, newRight := range rewriteSubformula(f.Right(), rule) {
			out = append(out, formula.NewCond(f.Left(), newRight))
		}
	case formula.KindBicond:
		for _, newLeft := range rewriteSubformula(f.Left(), rule) {
			out = append(out, formula.NewBicond(newLeft, f.Right()))
		}
		for _, newRight := range rewriteSubformula(f.Right(), rule) {
			out = append(out, formula.NewBicond(f.Left(), newRight))
		}
	}
	return out
}

// equivAt returns the direct (non-recursive) rewrites of rule applicable
// to f itself, in both directions where the corresponding pattern
// matches f's top-level shape.
func equivAt(rule rulecatalog.Rule, f *formula.Formula) []*formula.Formula {
	var out []*formula.Formula
	switch rule {
	case rulecatalog.DN:
		out = append(out, formula.NewNot(formula.NewNot(f)))
		if inner, ok := asNot(f); ok {
			if inner2, ok := asNot(inner); ok {
				out = append(out, inner2)
			}
		}
	case rulecatalog.DeM:
		if inner, ok := asNot(f); ok {
			if p, q, ok := asAnd(inner); ok {
				out = append(out, formula.NewOr(formula.NewNot(p), formula.NewNot(q)))
			}
			if p, q, ok := asOr(inner); ok {
				out = append(out, formula.NewAnd(formula.NewNot(p), formula.NewNot(q)))
			}
		}
		if p, q, ok := asOr(f); ok {
			if np, ok1 := asNot(p); ok1 {
				if nq, ok2 := asNot(q); ok2 {
					out = append(out, formula.NewNot(formula.NewAnd(np, nq)))
				}
			}
		}
		if p, q, ok := asAnd(f); ok {
			if np, ok1 := asNot(p); ok1 {
				if nq, ok2 := asNot(q); ok2 {
					out = append(out, formula.NewNot(formula.NewOr(np, nq)))
				}
			}
		}
	case rulecatalog.Comm:
		if p, q, ok := asOr(f); ok {
			out = append(out, formula.NewOr(q, p))
		}
		if p, q, ok := asAnd(f); ok {
			out = append(out, formula.NewAnd(q, p))
		}
	case rulecatalog.Assoc:
		if p, rest, ok := asOr(f); ok {
			if q, r, ok2 := asOr(rest); ok2 {
				out = append(out, formula.NewOr(formula.NewOr(p, q), r))
			}
		}
		if rest, r, ok := asOr(f); ok {
			if p, q, ok2 := asOr(rest); ok2 {
				out = append(out, formula.NewOr(p, formula.NewOr(q, r)))
			}
		}
		if p, rest, ok := asAnd(f); ok {
			if q, r, ok2 := asAnd(rest); ok2 {
				out = append(out, formula.NewAnd(formula.NewAnd(p, q), r))
			}
		}
		if rest, r, ok := asAnd(f); ok {
			if p, q, ok2 := asAnd(rest); ok2 {
				out = append(out, formula.NewAnd(p, formula.NewAnd(q, r)))
			}
		}
	case rulecatalog.Dist:
		if p, rest, ok := asAnd(f); ok {
			if q, r, ok2 := asOr(rest); ok2 {
				out = append(out, formula.NewOr(formula.NewAnd(p, q), formula.NewAnd(p, r)))
			}
		}
		if p, rest, ok := asOr(f); ok {
			if q, r, ok2 := asAnd(rest); ok2 {
				out = append(out, formula.NewAnd(formula.NewOr(p, q), formula.NewOr(p, r)))
			}
		}
		if left, right, ok := asOr(f); ok {
			if p1, q, ok1 := asAnd(left); ok1 {
				if p2, r, ok2 := asAnd(right); ok2 && formula.Equal(p1, p2) {
					out = append(out, formula.NewAnd(p1, formula.NewOr(q, r)))
				}
			}
		}
		if left, right, ok := asAnd(f); ok {
			if p1, q, ok1 := asOr(left); ok1 {
				if p2, r, ok2 := asOr(right); ok2 && formula.Equal(p1, p2) {
					out = append(out, formula.NewOr(p1, formula.NewAnd(q, r)))
				}
			}
		}
	case rulecatalog.Contra:
		if p, q, ok := asCond(f); ok {
			out = append(out, formula.NewCond(formula.NewNot(q), formula.NewNot(p)))
			if x, ok1 := asNot(p); ok1 {
				if y, ok2 := asNot(q); ok2 {
					out = append(out, formula.NewCond(y, x))
				}
			}
		}
	case rulecatalog.Impl:
		if p, q, ok := asCond(f); ok {
			out = append(out, formula.NewOr(formula.NewNot(p), q))
		}
		if p, q, ok := asOr(f); ok {
			if np, ok2 := asNot(p); ok2 {
				out = append(out, formula.NewCond(np, q))
			}
		}
	case rulecatalog.Exp:
		if left, r, ok := asCond(f); ok {
			if p, q, ok2 := asAnd(left); ok2 {
				out = append(out, formula.NewCond(p, formula.NewCond(q, r)))
			}
		}
		if p, rest, ok := asCond(f); ok {
			if q, r, ok2 := asCond(rest); ok2 {
				out = append(out, formula.NewCond(formula.NewAnd(p, q), r))
			}
		}
	case rulecatalog.Taut:
		out = append(out, formula.NewAnd(f, f))
		out = append(out, formula.NewOr(f, f))
		if p, q, ok := asAnd(f); ok && formula.Equal(p, q) {
			out = append(out, p)
		}
		if p, q, ok := asOr(f); ok && formula.Equal(p, q) {
			out = append(out, p)
		}
	case rulecatalog.Equiv:
		if p, q, ok := asBicond(f); ok {
			out = append(out, formula.NewAnd(formula.NewCond(p, q), formula.NewCond(q, p)))
			out = append(out, formula.NewOr(formula.NewAnd(p, q), formula.NewAnd(formula.NewNot(p), formula.NewNot(q))))
		}
		if left, right, ok := asAnd(f); ok {
			p1, q1, ok1 := asCond(left)
			q2, p2, ok2 := asCond(right)
			if ok1 && ok2 && formula.Equal(p1, p2) && formula.Equal(q1, q2) {
				out = append(out, formula.NewBicond(p1, q1))
			}
		}
		if left, right, ok := asOr(f); ok {
			p1, q1, ok1 := asAnd(left)
			np2, nq2, ok2 := asAnd(right)
			if ok1 && ok2 {
				p2, ok3 := asNot(np2)
				q2, ok4 := asNot(nq2)
				if ok3 && ok4 && formula.Equal(p1, p2) && formula.Equal(q1, q2) {
					out = append(out, formula.NewBicond(p1, q1))
				}
			}
		}
	}
	return out
}

func asBicond(f *formula.Formula) (p, q *formula.Formula, ok bool) {
	if f.Kind() != formula.KindBicond {
		return nil, nil, false
	}
	return f.Left(), f.Right(), true
}
