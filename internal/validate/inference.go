// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package validate

import (
	"github.com/dogaozden/propbench/internal/formula"
	"github.com/dogaozden/propbench/internal/rulecatalog"
)

func asCond(f *formula.Formula) (p, q *formula.Formula, ok bool) {
	if f.Kind() != formula.KindCond {
		return nil, nil, false
	}
	return f.Left(), f.Right(), true
}

func asOr(f *formula.Formula) (p, q *formula.Formula, ok bool) {
	if f.Kind() != formula.KindOr {
		return nil, nil, false
	}
	return f.Left(), f.Right(), true
}

func asAnd(f *formula.Formula) (p, q *formula.Formula, ok bool) {
	if f.Kind() != formula.KindAnd {
		return nil, nil, false
	}
	return f.Left(), f.Right(), true
}

func asNot(f *formula.Formula) (p *formula.Formula, ok bool) {
	if f.Kind() != formula.KindNot {
		return nil, false
	}
	return f.Left(), true
}

// permutations returns every ordering of fs. Cited-line counts are
// small (at most three, for CD), so the naive O(n!) generation is fine.
func permutations(fs []*formula.Formula) [][]*formula.Formula {
	if len(fs) <= 1 {
		return [][]*formula.Formula{fs}
	}
	var out [][]*formula.Formula
	for i := range fs {
		rest := make([]*formula.Formula, 0, len(fs)-1)
		rest = append(rest, fs[:i]...)
		rest = append(rest, fs[i+1:]...)
		for _, perm := range permutations(rest) {
			withFirst := append([]*formula.Formula{fs[i]}, perm...)
			out = append(out, withFirst)
		}
	}
	return out
}

// matchesInference reports whether cited (in any order) satisfies
// rule's premise schema and produces concl (spec.md §4.3 inference
// table).
func matchesInference(rule rulecatalog.Rule, cited []*formula.Formula, concl *formula.Formula) bool {
	switch rule {
	case rulecatalog.MP:
		if len(cited) != 2 {
			return false
		}
		for _, perm := range permutations(cited) {
			p, q, ok := asCond(perm[0])
			if ok && formula.Equal(p, perm[1]) && formula.Equal(q, concl) {
				return true
			}
		}
	case rulecatalog.MT:
		if len(cited) != 2 {
			return false
		}
		for _, perm := range permutations(cited) {
			p, q, ok := asCond(perm[0])
			if !ok {
				continue
			}
			negQ, ok2 := asNot(perm[1])
			if ok2 && formula.Equal(negQ, q) && formula.Equal(concl, formula.NewNot(p)) {
				return true
			}
		}
	case rulecatalog.DS:
		if len(cited) != 2 {
			return false
		}
		for _, perm := range permutations(cited) {
			p, q, ok := asOr(perm[0])
			if !ok {
				continue
			}
			negated, ok2 := asNot(perm[1])
			if !ok2 {
				continue
			}
			if formula.Equal(negated, p) && formula.Equal(concl, q) {
				return true
			}
			if formula.Equal(negated, q) && formula.Equal(concl, p) {
				return true
			}
		}
	case rulecatalog.Simp:
		if len(cited) != 1 {
			return false
		}
		p, q, ok := asAnd(cited[0])
		if ok && (formula.Equal(concl, p) || formula.Equal(concl, q)) {
			return true
		}
	case rulecatalog.Conj:
		if len(cited) != 2 {
			return false
		}
		for _, perm := range permutations(cited) {
			if formula.Equal(concl, formula.NewAnd(perm[0], perm[1])) {
				return true
			}
		}
	case rulecatalog.HS:
		if len(cited) != 2 {
			return false
		}
		for _, perm := range permutations(cited) {
			p1, q1, ok1 := asCond(perm[0])
			p2, q2, ok2 := asCond(perm[1])
			if ok1 && ok2 && formula.Equal(q1, p2) && formula.Equal(concl, formula.NewCond(p1, q2)) {
				return true
			}
		}
	case rulecatalog.Add:
		if len(cited) != 1 {
			return false
		}
		p, q, ok := asOr(concl)
		if ok && (formula.Equal(p, cited[0]) || formula.Equal(q, cited[0])) {
			return true
		}
	case rulecatalog.CD:
		if len(cited) != 3 {
			return false
		}
		for _, perm := range permutations(cited) {
			orP, orQ, ok1 := asOr(perm[0])
			p1, r, ok2 := asCond(perm[1])
			q1, s, ok3 := asCond(perm[2])
			if !ok1 || !ok2 || !ok3 {
				continue
			}
			if !formula.Equal(p1, orP) || !formula.Equal(q1, orQ) {
				continue
			}
			// spec.md §4.3 gives CD's conclusion as the literal `r v s`; unlike
			// DS it carries no symmetric note, so a reordered disjunction
			// needs its own Comm step rather than being accepted here.
			if formula.Equal(concl, formula.NewOr(r, s)) {
				return true
			}
		}
	case rulecatalog.NegE:
		if len(cited) != 2 {
			return false
		}
		if concl.Kind() != formula.KindBottom {
			return false
		}
		for _, perm := range permutations(cited) {
			negated, ok := asNot(perm[1])
			if ok && formula.Equal(negated, perm[0]) {
				return true
			}
		}
	}
	return false
}
