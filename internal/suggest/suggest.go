// Package suggest finds likely intended values for misspelled configuration
// entries, such as "dobule" for "double".
package suggest

import (
	"slices"
	"strings"
)

// Distance returns the edit distance between a and b, counting single-rune
// insertions, deletions and substitutions.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// two rows over the shorter string
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the candidates within maxDistance of value, compared
// case-insensitively, nearest first. Ties keep candidate order.
func Closest(value string, candidates []string, maxDistance int) []string {
	type scored struct {
		name     string
		distance int
	}

	needle := strings.ToLower(value)

	var found []scored
	for _, c := range candidates {
		if d := Distance(needle, strings.ToLower(c)); d <= maxDistance {
			found = append(found, scored{name: c, distance: d})
		}
	}

	slices.SortStableFunc(found, func(a, b scored) int {
		return a.distance - b.distance
	})

	result := make([]string, 0, len(found))
	for _, s := range found {
		result = append(result, s.name)
	}

	return result
}
