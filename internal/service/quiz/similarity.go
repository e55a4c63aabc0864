// Package quiz implements the adaptive exercise generator: it maps a
// mastery score to an exercise shape and builds plausible wrong answers
// for recognition exercises with a tiered similarity strategy chain.
package quiz

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions, or substitutions
// needed to transform one into the other. Symmetric by construction.
//
// Two-row dynamic programming: O(len(a)·len(b)) time, O(min(len)) space.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the shorter string in rb so the rows stay small.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
