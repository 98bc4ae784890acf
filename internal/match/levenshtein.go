// Package match provides name-similarity scoring used to suggest likely
// intended type names when a particle references a name absent from every
// registry.
package match

import "strings"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions needed
// to transform one into the other.
//
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity computes a normalized case-insensitive score between 0 and 1.
// 1.0 means identical (ignoring case), 0.0 means completely different.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := max(len(a), len(b))

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// suggestThreshold is the minimum similarity for a candidate to be offered
// as a "did you mean" suggestion.
const suggestThreshold = 0.6

// Closest returns the candidate most similar to name, or "" when no
// candidate clears the suggestion threshold. Ties keep the earliest
// candidate, so callers passing candidates in registration order get a
// deterministic answer.
func Closest(name string, candidates []string) string {
	best := ""
	bestScore := suggestThreshold

	for _, c := range candidates {
		if score := Similarity(name, c); score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
