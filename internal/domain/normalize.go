package domain

import (
	"strings"
)

// NormalizeTerm builds the uniqueness key of a vocabulary term:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of inner whitespace into a single space
//
// Umlauts, ß, hyphens and apostrophes are preserved, so "Straße" and
// "Strasse" stay distinct terms.
func NormalizeTerm(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
