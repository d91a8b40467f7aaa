package division

import "math"

// Unranked is the rank assigned to an item that appears in none of an
// agent's bundles: maximally unpreferred, sorts after every real rank.
const Unranked = math.MaxInt

// RankIndex returns the index of the first bundle in ranking that
// contains item, or Unranked if no bundle contains it.
//
// Absence is deliberately not an error: downstream comparisons treat
// "unranked" as "worst" without special-casing.
//
// Complexity: O(len(ranking) · bundle size).
func RankIndex(ranking []Bundle, item Item) int {
	for i, bundle := range ranking {
		for _, it := range bundle {
			if it == item {
				return i
			}
		}
	}

	return Unranked
}

// Ranked reports whether item appears in any bundle of ranking.
func Ranked(ranking []Bundle, item Item) bool {
	return RankIndex(ranking, item) != Unranked
}
