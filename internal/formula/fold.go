// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package formula

// fold* walks the raw participle parse tree into the immutable Formula AST,
// resolving the associativity spec.md assigns to each precedence tier:
// bicond and cond are right-associative, disj and conj are left-associative.

func foldBicond(r *rawBicond) *Formula {
	conds := r.Conds
	if len(conds) == 1 {
		return foldCond(conds[0])
	}
	// Right fold: A <> B <> C == A <> (B <> C).
	result := foldCond(conds[len(conds)-1])
	for i := len(conds) - 2; i >= 0; i-- {
		result = NewBicond(foldCond(conds[i]), result)
	}
	return result
}

func foldCond(r *rawCond) *Formula {
	disjs := r.Disjs
	if len(disjs) == 1 {
		return foldDisj(disjs[0])
	}
	result := foldDisj(disjs[len(disjs)-1])
	for i := len(disjs) - 2; i >= 0; i-- {
		result = NewCond(foldDisj(disjs[i]), result)
	}
	return result
}

func foldDisj(r *rawDisj) *Formula {
	conjs := r.Conjs
	// Left fold: A v B v C == (A v B) v C.
	result := foldConj(conjs[0])
	for _, c := range conjs[1:] {
		result = NewOr(result, foldConj(c))
	}
	return result
}

func foldConj(r *rawConj) *Formula {
	unarys := r.Unarys
	result := foldUnary(unarys[0])
	for _, u := range unarys[1:] {
		result = NewAnd(result, foldUnary(u))
	}
	return result
}

func foldUnary(r *rawUnary) *Formula {
	if r.Negated != nil {
		return NewNot(foldUnary(r.Negated))
	}
	return foldPrimary(r.Primary)
}

func foldPrimary(r *rawPrimary) *Formula {
	switch {
	case r.Bottom:
		return Bottom
	case r.Grouped != nil:
		return foldBicond(r.Grouped)
	default:
		return NewAtom(r.Atom)
	}
}
