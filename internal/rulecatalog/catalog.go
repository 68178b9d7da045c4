// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package rulecatalog is the vocabulary shared by the proof-text parser and
// the validator: canonical rule identifiers, the surface-name alias table
// that the justification splitter and rule canonicalizer both consult, and
// a semantic version stamped on the catalog itself.
package rulecatalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Rule is a canonical rule or subproof-technique identifier.
type Rule string

// Inference rules (spec.md §4.3).
const (
	MP   Rule = "MP"
	MT   Rule = "MT"
	DS   Rule = "DS"
	Simp Rule = "Simp"
	Conj Rule = "Conj"
	HS   Rule = "HS"
	Add  Rule = "Add"
	CD   Rule = "CD"
	NegE Rule = "NegE"
)

// Equivalence (replacement) rules (spec.md §4.3).
const (
	DN     Rule = "DN"
	DeM    Rule = "DeM"
	Comm   Rule = "Comm"
	Assoc  Rule = "Assoc"
	Dist   Rule = "Dist"
	Contra Rule = "Contra"
	Impl   Rule = "Impl"
	Exp    Rule = "Exp"
	Taut   Rule = "Taut"
	Equiv  Rule = "Equiv"
)

// Subproof techniques (spec.md §3).
const (
	CP Rule = "CP"
	IP Rule = "IP"
)

var inferenceRules = map[Rule]bool{
	MP: true, MT: true, DS: true, Simp: true, Conj: true,
	HS: true, Add: true, CD: true, NegE: true,
}

var equivalenceRules = map[Rule]bool{
	DN: true, DeM: true, Comm: true, Assoc: true, Dist: true,
	Contra: true, Impl: true, Exp: true, Taut: true, Equiv: true,
}

// IsInference reports whether r is one of the nine inference rules.
func IsInference(r Rule) bool { return inferenceRules[r] }

// IsEquivalence reports whether r is one of the ten equivalence rules.
func IsEquivalence(r Rule) bool { return equivalenceRules[r] }

// IsTechnique reports whether r is a subproof technique (CP or IP).
func IsTechnique(r Rule) bool { return r == CP || r == IP }

// aliasTable maps lower-cased surface rule names to their canonical form.
// Order within a rule's block is not significant; the table is looked up by
// exact key, never by prefix or fuzzy match.
var aliasTable = map[string]Rule{
	// Modus Ponens
	"mp":                        MP,
	"modus ponens":              MP,
	"modusponens":               MP,
	"conditional elimination":   MP,
	"implication elimination":   MP,
	"detachment":                MP,
	">e":                        MP,
	"→e":                        MP,
	// Modus Tollens
	"mt":                 MT,
	"modus tollens":       MT,
	"modustollens":        MT,
	"denying the consequent": MT,
	// Disjunctive Syllogism
	"ds":                     DS,
	"disjunctive syllogism":  DS,
	"disjunctivesyllogism":   DS,
	"disjunction elimination": DS,
	// Simplification
	"simp":                     Simp,
	"simplification":           Simp,
	"conjunction elimination":  Simp,
	"and elimination":          Simp,
	".e":                       Simp,
	// Conjunction
	"conj":                     Conj,
	"conjunction":               Conj,
	"conjunction introduction": Conj,
	"and introduction":         Conj,
	".i":                       Conj,
	// Hypothetical Syllogism
	"hs":                       HS,
	"hypothetical syllogism":   HS,
	"hypotheticalsyllogism":    HS,
	// Addition
	"add":                      Add,
	"addition":                 Add,
	"disjunction introduction": Add,
	"or introduction":          Add,
	"vi":                       Add,
	// Constructive Dilemma
	"cd":                      CD,
	"constructive dilemma":    CD,
	// Negation Elimination (contradiction introduction)
	"nege":                    NegE,
	"negation elimination":    NegE,
	"neg elim":                NegE,
	"contradiction":           NegE,
	"contradiction introduction": NegE,
	"bottom introduction":     NegE,
	"absurdity":               NegE,

	// Double Negation
	"dn":               DN,
	"double negation":  DN,
	"doublenegation":   DN,
	// De Morgan
	"dem":                DeM,
	"demorgan":           DeM,
	"de morgan":          DeM,
	"de morgan's law":    DeM,
	"demorgans":          DeM,
	// Commutativity
	"comm":           Comm,
	"commutativity":  Comm,
	"commutation":    Comm,
	// Associativity
	"assoc":          Assoc,
	"associativity":  Assoc,
	"association":    Assoc,
	// Distribution
	"dist":            Dist,
	"distribution":    Dist,
	"distributivity":  Dist,
	// Contraposition
	"contra":          Contra,
	"contraposition":  Contra,
	"transposition":   Contra,
	// Material Implication
	"impl":                     Impl,
	"implication":              Impl,
	"material implication":     Impl,
	"materialimplication":      Impl,
	// Exportation
	"exp":          Exp,
	"exportation":  Exp,
	// Tautology
	"taut":        Taut,
	"tautology":   Taut,
	"idempotence": Taut,
	"idempotent":  Taut,
	// Equivalence / Material Equivalence
	"equiv":                   Equiv,
	"equivalence":             Equiv,
	"biconditional":           Equiv,
	"material equivalence":    Equiv,
	"materialequivalence":     Equiv,

	// Conditional Proof
	"cp":                 CP,
	"conditional proof":  CP,
	"conditionalproof":   CP,
	// Indirect Proof
	"ip":                         IP,
	"indirect proof":             IP,
	"indirectproof":              IP,
	"reductio":                   IP,
	"reductio ad absurdum":       IP,
	"proof by contradiction":     IP,
}

// Canonicalize matches a free-text rule name against the alias table.
// Matching is case-insensitive, ignores a trailing dot, and — as a
// fallback — ignores all dots (so "D.N." and "DN" both resolve).
func Canonicalize(raw string) (Rule, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.TrimSuffix(key, ".")
	if r, ok := aliasTable[key]; ok {
		return r, true
	}
	if stripped := strings.ReplaceAll(key, ".", ""); stripped != key {
		if r, ok := aliasTable[stripped]; ok {
			return r, true
		}
	}
	return "", false
}

// rawVersion is bumped whenever a rule or alias is added to the catalog.
const rawVersion = "1.0.0"

// Version is the catalog's semantic version, reported by the CLI's
// catalog subcommand and compared against its --min-catalog-version flag.
var Version = mustVersion(rawVersion)

func mustVersion(raw string) *semver.Version {
	v, err := semver.NewVersion(raw)
	if err != nil {
		panic(fmt.Sprintf("rulecatalog: invalid version %q: %v", raw, err))
	}
	return v
}
