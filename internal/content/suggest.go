package content

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input by edit distance. It only
// answers when the distance is small relative to the input length.
func Suggest(input string, candidates []string) (string, bool) {
	in := normalizeKey(input)
	if in == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(in) {
		return "", false
	}
	return best, true
}

func maxSuggestDistance(input string) int {
	return max(2, len([]rune(input))/3)
}
