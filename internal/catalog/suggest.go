package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestThreshold is the minimum similarity for a "did you mean" hit.
const suggestThreshold = 0.6

// Suggest returns the catalog title word closest to query, for use when
// a search comes back empty. Returns "" when nothing is similar enough
// or the query already matches a word exactly.
func Suggest(products []Product, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	best := ""
	bestScore := suggestThreshold
	for _, p := range products {
		for _, word := range strings.Fields(strings.ToLower(p.Title)) {
			if word == q {
				return ""
			}
			score := similarity(q, word)
			if score > bestScore {
				best = word
				bestScore = score
			}
		}
	}
	return best
}

func similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
