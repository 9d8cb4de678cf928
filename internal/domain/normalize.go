package domain

import (
	"strings"
	"unicode"
)

// NormalizeCaseNumber returns the duplicate-comparison key for a case number:
// every whitespace character is removed and the rest is lowercased.
// Two case numbers are the same case iff their keys are equal.
func NormalizeCaseNumber(caseNumber string) string {
	var b strings.Builder
	b.Grow(len(caseNumber))
	for _, r := range caseNumber {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
