package cliutil

// Suggest returns the candidate closest to input by edit distance, or ""
// when none is within maxDistance. Ties go to the earlier candidate.
func Suggest(input string, candidates []string, maxDistance int) string {
	best := ""
	bestDistance := maxDistance + 1
	for _, c := range candidates {
		if d := levenshtein(input, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}

// levenshtein computes the edit distance between a and b, byte-wise.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
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
	return prev[len(b)]
}
