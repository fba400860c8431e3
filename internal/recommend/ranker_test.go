package recommend_test

import (
	"testing"

	"internmatch/internal/recommend"
)

func candidateWithScore(index int, score float64) recommend.ScoredCandidate {
	return recommend.ScoredCandidate{CatalogIndex: index, FinalScore: score}
}

func TestRankSortsDescending(t *testing.T) {
	ranked := recommend.Rank([]recommend.ScoredCandidate{
		candidateWithScore(0, 10),
		candidateWithScore(1, 90),
		candidateWithScore(2, 50),
	}, 5)

	for i := 1; i < len(ranked); i++ {
		if ranked[i].FinalScore > ranked[i-1].FinalScore {
			t.Fatalf("scores not non-increasing at %d: %v", i, ranked)
		}
	}
	if ranked[0].CatalogIndex != 1 {
		t.Errorf("top candidate = %d, want 1", ranked[0].CatalogIndex)
	}
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	ranked := recommend.Rank([]recommend.ScoredCandidate{
		candidateWithScore(0, 42),
		candidateWithScore(1, 42),
		candidateWithScore(2, 42),
		candidateWithScore(3, 99),
	}, 5)

	if ranked[0].CatalogIndex != 3 {
		t.Fatalf("top candidate = %d, want 3", ranked[0].CatalogIndex)
	}
	for i, want := range []int{3, 0, 1, 2} {
		if ranked[i].CatalogIndex != want {
			t.Errorf("ranked[%d].CatalogIndex = %d, want %d (stable ties)", i, ranked[i].CatalogIndex, want)
		}
	}
}

func TestRankTruncatesToTopN(t *testing.T) {
	var candidates []recommend.ScoredCandidate
	for i := 0; i < 8; i++ {
		candidates = append(candidates, candidateWithScore(i, float64(i)))
	}

	ranked := recommend.Rank(candidates, 5)
	if len(ranked) != 5 {
		t.Fatalf("len(ranked) = %d, want 5", len(ranked))
	}
}

func TestRankShortAndEmptySets(t *testing.T) {
	ranked := recommend.Rank([]recommend.ScoredCandidate{candidateWithScore(0, 1)}, 5)
	if len(ranked) != 1 {
		t.Errorf("len(ranked) = %d, want 1", len(ranked))
	}

	ranked = recommend.Rank(nil, 5)
	if len(ranked) != 0 {
		t.Errorf("len(ranked) = %d, want 0", len(ranked))
	}
}
