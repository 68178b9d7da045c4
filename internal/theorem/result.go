// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package theorem

// ParseError reports one proof-text line that looked like proof content
// but could not be interpreted. LineNumber is nil when no number could
// be assigned at all.
type ParseError struct {
	LineNumber *int
	Raw        string
	Message    string
}

// ParseErrorJSON is ParseError's wire form (spec.md §6).
type ParseErrorJSON struct {
	LineNumber *int   `json:"line_number"`
	Raw        string `json:"raw"`
	Message    string `json:"message"`
}

// ToJSON converts a ParseError to its wire form.
func (e ParseError) ToJSON() ParseErrorJSON {
	return ParseErrorJSON{LineNumber: e.LineNumber, Raw: e.Raw, Message: e.Message}
}

// ParseResult is the output of parsing free-text proof output: the
// successfully interpreted lines, the lines that looked like proof
// content but failed, and the lines dropped as commentary.
type ParseResult struct {
	Lines            []ProofLine
	Errors           []ParseError
	UnparsedSections []string
}

// ParseResultJSON is ParseResult's wire form (spec.md §6).
type ParseResultJSON struct {
	Lines            []ProofLineJSON  `json:"lines"`
	Errors           []ParseErrorJSON `json:"errors"`
	UnparsedSections []string         `json:"unparsed_sections"`
}

// ToJSON converts a ParseResult to its wire form.
func (r ParseResult) ToJSON() ParseResultJSON {
	lines := make([]ProofLineJSON, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = l.ToJSON()
	}
	errs := make([]ParseErrorJSON, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e.ToJSON()
	}
	sections := r.UnparsedSections
	if sections == nil {
		sections = []string{}
	}
	return ParseResultJSON{Lines: lines, Errors: errs, UnparsedSections: sections}
}

// ValidationResult is the output of validating a proof against a
// theorem.
type ValidationResult struct {
	Valid     bool
	LineCount int
	Errors    []string
}

// ValidationResultJSON is ValidationResult's wire form (spec.md §6).
type ValidationResultJSON struct {
	Valid     bool     `json:"valid"`
	LineCount int      `json:"line_count"`
	Errors    []string `json:"errors"`
}

// ToJSON converts a ValidationResult to its wire form.
func (r ValidationResult) ToJSON() ValidationResultJSON {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResultJSON{Valid: r.Valid, LineCount: r.LineCount, Errors: errs}
}
