package util

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input by edit distance, ignoring
// case. Candidates further than a third of the input length (minimum 2)
// are not considered close.
func Suggest(input string, candidates []string) (string, bool) {
	if input == "" {
		return "", false
	}
	limit := max(2, len(input)/3)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// DidYouMean formats the suggestion for input as an error message suffix,
// or returns "" when nothing is close.
func DidYouMean(input string, candidates []string) string {
	if s, ok := Suggest(input, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
