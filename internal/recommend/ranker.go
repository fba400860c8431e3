package recommend

import "sort"

// Rank sorts candidates by final score descending and truncates to the top
// n. The sort is stable: candidates with equal scores keep their catalog
// order, which makes ranking deterministic for identical inputs. Short or
// empty candidate sets are returned as-is, never an error.
func Rank(candidates []ScoredCandidate, n int) []ScoredCandidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalScore > candidates[j].FinalScore
	})

	if n >= 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
