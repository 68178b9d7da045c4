// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package theorem

import "github.com/dogaozden/propbench/internal/formula"

// TheoremJSON is Theorem's wire form (spec.md §6): premises and
// conclusion are ASCII formula text.
type TheoremJSON struct {
	ID              string   `json:"id"`
	Premises        []string `json:"premises"`
	Conclusion      string   `json:"conclusion"`
	Difficulty      string   `json:"difficulty"`
	DifficultyValue int      `json:"difficulty_value"`
}

// ToJSON converts a Theorem to its wire form.
func (t Theorem) ToJSON() TheoremJSON {
	premises := make([]string, len(t.Premises))
	for i, p := range t.Premises {
		premises[i] = formula.Pretty(p)
	}
	return TheoremJSON{
		ID:              t.ID,
		Premises:        premises,
		Conclusion:      formula.Pretty(t.Conclusion),
		Difficulty:      t.DifficultyTier,
		DifficultyValue: t.DifficultyValue,
	}
}

// TheoremFromJSON parses a wire Theorem into its internal form, parsing
// every premise and the conclusion as formulas.
func TheoremFromJSON(w TheoremJSON) (Theorem, error) {
	premises := make([]*formula.Formula, len(w.Premises))
	for i, p := range w.Premises {
		f, err := formula.Parse(p)
		if err != nil {
			return Theorem{}, err
		}
		premises[i] = f
	}
	conclusion, err := formula.Parse(w.Conclusion)
	if err != nil {
		return Theorem{}, err
	}
	return Theorem{
		ID:              w.ID,
		Premises:        premises,
		Conclusion:      conclusion,
		DifficultyTier:  w.Difficulty,
		DifficultyValue: w.DifficultyValue,
	}, nil
}
