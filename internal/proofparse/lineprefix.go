// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package proofparse

import (
	"regexp"
	"strconv"
)

// numberPrefixPatterns are tried in priority order (spec.md §4.2 stage
// 3). Each must have the line number in capture group 1 and the
// remainder of the line in group 2.
var numberPrefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\((\d+)\)\s*(.*)$`),
	regexp.MustCompile(`^#(\d+)[.):]\s*(.*)$`),
	regexp.MustCompile(`(?i)^step\s+(\d+)[.:]\s*(.*)$`),
	regexp.MustCompile(`(?i)^line\s+(\d+)[.:]\s*(.*)$`),
	regexp.MustCompile(`^(\d+)\)\s*(.*)$`),
	regexp.MustCompile(`^(\d+)\.\s*(.*)$`),
	regexp.MustCompile(`^(\d+):\s*(.*)$`),
}

// stripLineNumberPrefix tries each recognized line-number prefix in
// priority order against s (which has already had markers and leading
// whitespace stripped). It reports the parsed number, the remaining
// text, and whether a prefix matched at all.
func stripLineNumberPrefix(s string) (num int, rest string, ok bool) {
	for _, pat := range numberPrefixPatterns {
		if m := pat.FindStringSubmatch(s); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return n, m[2], true
		}
	}
	return 0, s, false
}

// hasLineNumberPrefix reports whether trimmed begins with a recognized
// line-number prefix, for the indent pre-scan.
func hasLineNumberPrefix(trimmed string) bool {
	_, _, ok := stripLineNumberPrefix(trimmed)
	return ok
}
