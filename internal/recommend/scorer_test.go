package recommend_test

import (
	"reflect"
	"testing"

	"internmatch/internal/recommend"
	"internmatch/pkg/models"
)

func baseProfile() *models.UserProfile {
	return &models.UserProfile{
		Name:             "Rahul Sharma",
		EducationLevel:   models.EducationUndergraduate,
		FieldOfStudy:     "Computer Science",
		Skills:           []string{"Python"},
		PreferredSectors: []string{"Technology"},
		PreferredLoc:     "Delhi",
		ExperienceYears:  0,
	}
}

func techPosting() *models.Posting {
	return &models.Posting{
		ID:                   "INT001",
		Title:                "Software Development Intern",
		Company:              "Tech Innovations Pvt Ltd",
		Sector:               "Technology",
		Location:             "Delhi",
		DurationMonths:       6,
		Description:          "Work on web applications",
		RequiredSkills:       []string{"Python", "React"},
		EducationRequirement: "Undergraduate",
	}
}

func TestScoreCandidateWorkedExample(t *testing.T) {
	c := recommend.ScoreCandidate(techPosting(), 0, baseProfile(), 0)

	if c.LocationScore != 20 {
		t.Errorf("LocationScore = %f, want 20", c.LocationScore)
	}
	if c.SectorScore != 15 {
		t.Errorf("SectorScore = %f, want 15", c.SectorScore)
	}
	// 1 of 2 required skills matched: 1/2 * 20 = 10.
	if c.SkillsScore != 10 {
		t.Errorf("SkillsScore = %f, want 10", c.SkillsScore)
	}
	if c.ExperienceScore != 5 {
		t.Errorf("ExperienceScore = %f, want 5 (entry-level bonus)", c.ExperienceScore)
	}

	want := 0*40 + 10*25.0 + 20 + 15 + 5
	if c.FinalScore != want {
		t.Errorf("FinalScore = %f, want %f", c.FinalScore, want)
	}

	// 10 is not > 10, so no skills alignment reason.
	wantReasons := []string{
		recommend.ReasonLocationMatch,
		recommend.ReasonSectorAligned,
	}
	if !reflect.DeepEqual(c.MatchReasons, wantReasons) {
		t.Errorf("MatchReasons = %v, want %v", c.MatchReasons, wantReasons)
	}
}

func TestLocationScoreIsSubstringMatch(t *testing.T) {
	profile := baseProfile()
	profile.PreferredLoc = "delhi"

	posting := techPosting()
	posting.Location = "New Delhi"

	c := recommend.ScoreCandidate(posting, 0, profile, 0)
	if c.LocationScore != 20 {
		t.Errorf("LocationScore = %f, want 20 for case-insensitive substring", c.LocationScore)
	}

	posting.Location = "Mumbai"
	c = recommend.ScoreCandidate(posting, 0, profile, 0)
	if c.LocationScore != 0 {
		t.Errorf("LocationScore = %f, want 0", c.LocationScore)
	}
	for _, r := range c.MatchReasons {
		if r == recommend.ReasonLocationMatch {
			t.Error("unmatched location must not produce a location reason")
		}
	}
}

func TestSectorScoreMatchesAnyPreferred(t *testing.T) {
	profile := baseProfile()
	profile.PreferredSectors = []string{"Healthcare", "tech"}

	c := recommend.ScoreCandidate(techPosting(), 0, profile, 0)
	if c.SectorScore != 15 {
		t.Errorf("SectorScore = %f, want 15 for partial sector match", c.SectorScore)
	}
}

func TestSkillsScoreBidirectionalPartialMatch(t *testing.T) {
	profile := baseProfile()
	profile.Skills = []string{"Machine Learning with Python"}

	posting := techPosting()
	posting.RequiredSkills = []string{"Python"}

	// Required "Python" is a substring of the user skill.
	c := recommend.ScoreCandidate(posting, 0, profile, 0)
	if c.SkillsScore != 20 {
		t.Errorf("SkillsScore = %f, want 20", c.SkillsScore)
	}
}

func TestSkillsScoreNoRequiredSkills(t *testing.T) {
	posting := techPosting()
	posting.RequiredSkills = nil

	c := recommend.ScoreCandidate(posting, 0, baseProfile(), 0)
	if c.SkillsScore != 0 {
		t.Errorf("SkillsScore = %f, want 0 when posting lists no skills", c.SkillsScore)
	}
}

func TestSkillsMatchMonotonicity(t *testing.T) {
	posting := techPosting()

	without := recommend.ScoreCandidate(posting, 0, baseProfile(), 0.2)

	profile := baseProfile()
	profile.Skills = append(profile.Skills, "React")
	with := recommend.ScoreCandidate(posting, 0, profile, 0.2)

	if with.FinalScore < without.FinalScore {
		t.Errorf("adding a matching skill lowered the score: %f -> %f",
			without.FinalScore, with.FinalScore)
	}
}

func TestExperienceScoreTiers(t *testing.T) {
	cases := []struct {
		years int
		want  float64
	}{
		{0, 5},
		{1, 3},
		{2, 3},
		{3, 2},
		{10, 2},
	}

	for _, c := range cases {
		profile := baseProfile()
		profile.ExperienceYears = c.years
		got := recommend.ScoreCandidate(techPosting(), 0, profile, 0).ExperienceScore
		if got != c.want {
			t.Errorf("experience %d years: score = %f, want %f", c.years, got, c.want)
		}
	}
}

func TestSimilarityReasonThreshold(t *testing.T) {
	posting := techPosting()
	posting.Location = "Chennai"
	posting.Sector = "Logistics"
	posting.RequiredSkills = nil

	c := recommend.ScoreCandidate(posting, 0, baseProfile(), 0.31)
	if !reflect.DeepEqual(c.MatchReasons, []string{recommend.ReasonContentSimilarity}) {
		t.Errorf("MatchReasons = %v, want similarity reason only", c.MatchReasons)
	}

	c = recommend.ScoreCandidate(posting, 0, baseProfile(), 0.3)
	if !reflect.DeepEqual(c.MatchReasons, []string{recommend.ReasonGeneralCompatible}) {
		t.Errorf("MatchReasons = %v, want general compatibility fallback", c.MatchReasons)
	}
}

func TestStrongSkillsReasonRequiresMoreThanTen(t *testing.T) {
	profile := baseProfile()
	profile.Skills = []string{"Python", "React"}

	// Both skills match: 2/2 * 20 = 20 > 10.
	c := recommend.ScoreCandidate(techPosting(), 0, profile, 0)
	if c.MatchReasons[0] != recommend.ReasonSkillsAlignment {
		t.Errorf("MatchReasons = %v, want skills alignment first", c.MatchReasons)
	}
}
