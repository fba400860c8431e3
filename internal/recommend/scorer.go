package recommend

import (
	"strings"

	"internmatch/pkg/models"
)

// Sub-score weights. The theoretical ceiling of the blended score exceeds
// 100; the public match score is clamped after summation rather than the
// weights being normalized.
const (
	locationPoints   = 20.0
	sectorPoints     = 15.0
	skillsPoints     = 20.0
	similarityWeight = 40.0
	skillsWeight     = 25.0
)

// Match reason tags, emitted in this fixed order.
const (
	ReasonSkillsAlignment   = "Strong skills alignment"
	ReasonLocationMatch     = "Preferred location match"
	ReasonSectorAligned     = "Sector preference aligned"
	ReasonContentSimilarity = "Content similarity high"
	ReasonGeneralCompatible = "General compatibility"
)

// ScoredCandidate annotates one posting, for one request, with its
// sub-scores, blended final score and match reasons. It lives only within
// the scope of a single recommendation call.
type ScoredCandidate struct {
	Posting         *models.Posting
	CatalogIndex    int
	SimilarityScore float64
	LocationScore   float64
	SectorScore     float64
	SkillsScore     float64
	ExperienceScore float64
	FinalScore      float64
	MatchReasons    []string
}

// ScoreCandidate computes all sub-scores for one posting against the
// profile and its aligned similarity score. Pure function: no shared state,
// trivially testable per candidate.
func ScoreCandidate(posting *models.Posting, catalogIndex int, profile *models.UserProfile, similarity float64) ScoredCandidate {
	c := ScoredCandidate{
		Posting:         posting,
		CatalogIndex:    catalogIndex,
		SimilarityScore: similarity,
		LocationScore:   locationScore(posting, profile),
		SectorScore:     sectorScore(posting, profile),
		SkillsScore:     skillsMatchScore(posting.RequiredSkills, profile.Skills),
		ExperienceScore: experienceScore(profile.ExperienceYears),
	}

	c.FinalScore = c.SimilarityScore*similarityWeight +
		c.SkillsScore*skillsWeight +
		c.LocationScore +
		c.SectorScore +
		c.ExperienceScore

	c.MatchReasons = matchReasons(&c)

	return c
}

func locationScore(posting *models.Posting, profile *models.UserProfile) float64 {
	if strings.Contains(strings.ToLower(posting.Location), strings.ToLower(profile.PreferredLoc)) {
		return locationPoints
	}
	return 0
}

func sectorScore(posting *models.Posting, profile *models.UserProfile) float64 {
	sector := strings.ToLower(posting.Sector)
	for _, preferred := range profile.PreferredSectors {
		if strings.Contains(sector, strings.ToLower(preferred)) {
			return sectorPoints
		}
	}
	return 0
}

// skillsMatchScore counts required skills with at least a partial
// bidirectional substring match against any user skill and scales the
// matched fraction to skillsPoints. A posting without required skills
// scores 0.
func skillsMatchScore(required, userSkills []string) float64 {
	if len(required) == 0 {
		return 0
	}

	matches := 0
	for _, req := range required {
		r := strings.ToLower(strings.TrimSpace(req))
		for _, skill := range userSkills {
			s := strings.ToLower(strings.TrimSpace(skill))
			if s == "" || r == "" {
				continue
			}
			if strings.Contains(r, s) || strings.Contains(s, r) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(required)) * skillsPoints
}

// experienceScore is a flat heuristic: a bonus for entry-level applicants,
// tapering off with experience.
func experienceScore(years int) float64 {
	switch {
	case years == 0:
		return 5
	case years <= 2:
		return 3
	default:
		return 2
	}
}

// matchReasons derives the human-readable tags. Reasons are independent of
// the ranking and never affect the final score.
func matchReasons(c *ScoredCandidate) []string {
	var reasons []string
	if c.SkillsScore > 10 {
		reasons = append(reasons, ReasonSkillsAlignment)
	}
	if c.LocationScore > 0 {
		reasons = append(reasons, ReasonLocationMatch)
	}
	if c.SectorScore > 0 {
		reasons = append(reasons, ReasonSectorAligned)
	}
	if c.SimilarityScore > 0.3 {
		reasons = append(reasons, ReasonContentSimilarity)
	}
	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralCompatible)
	}
	return reasons
}
