package restrictions

import (
	"regexp"
	"strings"
)

var alternator = regexp.MustCompile(`\bor\b`)

// SplitClauses splits conditions on the word "or" into alternative clauses,
// in document order. Blank clauses are dropped; the others are returned
// untouched, surrounding spaces included.
func SplitClauses(text string) []string {
	parts := alternator.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		clauses = append(clauses, p)
	}
	return clauses
}
