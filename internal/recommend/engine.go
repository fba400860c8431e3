package recommend

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"internmatch/internal/catalog"
	"internmatch/internal/logging"
	"internmatch/internal/textindex"
	"internmatch/pkg/models"
)

var (
	// ErrNotReady is returned while no catalog snapshot has been
	// published, either before the first load or after a failed one.
	ErrNotReady = errors.New("recommendation engine is not ready")

	// ErrEmptyResult is returned when filtering, scoring and ranking
	// yield no candidates. Distinguishable from ErrNotReady so callers
	// can tell "try later" from "no match, adjust preferences".
	ErrEmptyResult = errors.New("no suitable internships found")
)

// snapshot pairs a catalog store with the similarity index fitted over it.
// A snapshot is immutable: a reload produces a new snapshot swapped in
// atomically, so in-flight requests keep the one they started with.
type snapshot struct {
	store *catalog.Store
	index *textindex.Index
}

// Engine matches user profiles against the loaded internship catalog. The
// read path takes no locks; Load is the only writer.
type Engine struct {
	topN int
	snap atomic.Pointer[snapshot]
}

// NewEngine creates an engine that returns at most topN recommendations
// per request. The engine is not ready until Load succeeds.
func NewEngine(topN int) *Engine {
	return &Engine{topN: topN}
}

// Load reads the catalog from path, fits the similarity index over it and
// publishes both as the current snapshot. On failure the previous snapshot
// (if any) stays published and the error is returned.
func (e *Engine) Load(path string) error {
	store, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	index := textindex.Build(store.CombinedTexts())
	if index.Len() != store.Count() {
		return fmt.Errorf("similarity index covers %d documents for %d postings", index.Len(), store.Count())
	}

	e.snap.Store(&snapshot{store: store, index: index})

	logging.GetGlobalLogger().Info("catalog loaded", map[string]interface{}{
		"postings":   store.Count(),
		"vocabulary": index.VocabularySize(),
	})

	return nil
}

// Ready reports whether a catalog snapshot has been published.
func (e *Engine) Ready() bool {
	return e.snap.Load() != nil
}

// Count returns the number of loaded postings, 0 when not ready.
func (e *Engine) Count() int {
	snap := e.snap.Load()
	if snap == nil {
		return 0
	}
	return snap.store.Count()
}

// Sectors returns the catalog's distinct sectors.
func (e *Engine) Sectors() ([]string, error) {
	snap := e.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap.store.Sectors(), nil
}

// Locations returns the catalog's distinct locations.
func (e *Engine) Locations() ([]string, error) {
	snap := e.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap.store.Locations(), nil
}

// Recommend runs the full pipeline for one profile: eligibility filter,
// similarity query, per-candidate scoring, stable ranking, truncation.
// Each call allocates its own candidate set; shared state is never
// mutated.
func (e *Engine) Recommend(profile *models.UserProfile) ([]models.Recommendation, error) {
	snap := e.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}

	indices := EligibleIndices(snap.store, profile.EducationLevel)

	query := snap.index.Query(queryText(profile))
	similarities := snap.index.Similarities(query)
	if len(similarities) != snap.store.Count() {
		// A length mismatch means a stale or broken index; fail loudly
		// instead of padding scores.
		return nil, fmt.Errorf("similarity scores misaligned: %d scores for %d postings", len(similarities), snap.store.Count())
	}

	records := snap.store.Records()
	candidates := make([]ScoredCandidate, 0, len(indices))
	for _, idx := range indices {
		candidates = append(candidates, ScoreCandidate(&records[idx], idx, profile, similarities[idx]))
	}

	top := Rank(candidates, e.topN)
	if len(top) == 0 {
		return nil, ErrEmptyResult
	}

	recommendations := make([]models.Recommendation, len(top))
	for i, c := range top {
		recommendations[i] = models.Recommendation{
			Posting:      *c.Posting,
			MatchScore:   publicScore(c.FinalScore),
			MatchReasons: c.MatchReasons,
		}
	}

	return recommendations, nil
}

// queryText embeds the profile into the index's text space the same way
// postings are embedded: skills plus field of study.
func queryText(profile *models.UserProfile) string {
	return strings.Join(profile.Skills, " ") + " " + profile.FieldOfStudy
}

// publicScore clamps the blended score into [0,100] and rounds to one
// decimal. The clamp happens after summation; the weights are intentionally
// not normalized.
func publicScore(finalScore float64) float64 {
	clamped := math.Min(100, math.Max(0, finalScore))
	return math.Round(clamped*10) / 10
}
