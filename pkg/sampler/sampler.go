// Package sampler implements the uniform reservoir sample and per-character
// occurrence count used to summarize a candidate word set, per spec.md
// §4.6.
package sampler

import "math/rand/v2"

// UniformSample yields at most n elements from seq (a sequence of known
// maximum length total), preserving input order, in one linear pass and
// constant extra space beyond the output.
//
// At each step with needed > 0 and remaining input, it draws a uniform
// integer in [0, total); if that draw is < needed, the current element is
// emitted and needed is decremented. Either path then decrements total.
// Over repeated runs this makes the marginal inclusion probability of
// every element n / len(seq), per spec.md §8 invariant 5.
func UniformSample[T any](n int, seq []T) []T {
	if n <= 0 || len(seq) == 0 {
		return nil
	}
	needed := n
	total := len(seq)
	out := make([]T, 0, min(n, len(seq)))
	for _, item := range seq {
		if needed <= 0 {
			break
		}
		if rand.IntN(total) < needed {
			out = append(out, item)
			needed--
		}
		total--
	}
	return out
}

// CharacterOccurrences computes, for each distinct codepoint appearing in
// any word, the number of words in which it appears at least once
// (Σ_w 1[c ∈ set(w)]) — not the total count of occurrences across all
// positions.
func CharacterOccurrences(words []string) map[rune]int {
	counts := make(map[rune]int)
	seen := make(map[rune]bool)
	for _, w := range words {
		clear(seen)
		for _, c := range w {
			if !seen[c] {
				seen[c] = true
				counts[c]++
			}
		}
	}
	return counts
}
