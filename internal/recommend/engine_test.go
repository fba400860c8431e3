package recommend_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"internmatch/internal/recommend"
	"internmatch/pkg/models"
)

func writeEngineCatalog(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "internships.csv")
	if err := os.WriteFile(path, []byte(catalogHeader+rows), 0644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}
	return path
}

func loadedEngine(t *testing.T, rows string) *recommend.Engine {
	t.Helper()
	engine := recommend.NewEngine(5)
	if err := engine.Load(writeEngineCatalog(t, rows)); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return engine
}

const sampleRows = "INT001,Software Development Intern,Tech Innovations,Technology,Delhi,6,15000,Work on web applications,\"Python,React\",Undergraduate,2026-03-15\n" +
	"INT002,Data Analysis Intern,Insight Analytics,Technology,Bangalore,3,12000,Analyze datasets,\"Python,SQL\",Undergraduate,\n" +
	"INT003,Marketing Intern,BrandWorks,Marketing,Delhi,3,8000,Social media campaigns,\"Communication\",High School,\n" +
	"INT004,Finance Intern,Capital Insights,Finance,Mumbai,6,18000,Equity research,\"Excel\",Graduate,\n" +
	"INT005,ML Intern,DeepLogic Labs,Technology,Hyderabad,6,20000,Prototype ML models,\"Python,Machine Learning\",Postgraduate,\n" +
	"INT006,Ops Intern,CarePlus,Healthcare,Mumbai,4,10000,Hospital operations,\"Communication,Excel\",Diploma,\n"

func TestRecommendNotReady(t *testing.T) {
	engine := recommend.NewEngine(5)
	if engine.Ready() {
		t.Fatal("engine must not be ready before a load")
	}
	if _, err := engine.Recommend(baseProfile()); !errors.Is(err, recommend.ErrNotReady) {
		t.Fatalf("Recommend on unloaded engine: err = %v, want ErrNotReady", err)
	}
	if _, err := engine.Sectors(); !errors.Is(err, recommend.ErrNotReady) {
		t.Errorf("Sectors on unloaded engine: err = %v, want ErrNotReady", err)
	}
}

func TestLoadFailureLeavesEngineNotReady(t *testing.T) {
	engine := recommend.NewEngine(5)
	if err := engine.Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("Load of a missing catalog should fail")
	}
	if engine.Ready() {
		t.Error("failed load must leave the engine not ready")
	}
}

func TestRecommendReturnsAtMostTopN(t *testing.T) {
	engine := loadedEngine(t, sampleRows)

	profile := baseProfile()
	profile.EducationLevel = models.EducationHighSchool // eligible for everything

	recs, err := engine.Recommend(profile)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) > 5 {
		t.Fatalf("len(recs) = %d, want at most 5", len(recs))
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].MatchScore > recs[i-1].MatchScore {
			t.Errorf("match scores not non-increasing at %d: %v > %v", i, recs[i].MatchScore, recs[i-1].MatchScore)
		}
	}
	for _, r := range recs {
		if r.MatchScore < 0 || r.MatchScore > 100 {
			t.Errorf("match score %f outside [0,100]", r.MatchScore)
		}
	}
}

func TestRecommendWorkedScenario(t *testing.T) {
	engine := loadedEngine(t,
		"INT001,Software Development Intern,Tech Innovations,Technology,Delhi,6,15000,Work on web applications,\"Python,React\",Undergraduate,2026-03-15\n")

	recs, err := engine.Recommend(baseProfile())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("len(recs) = %d, want 1", len(recs))
	}

	rec := recs[0]
	if rec.ID != "INT001" {
		t.Errorf("ID = %q, want INT001", rec.ID)
	}

	hasReason := func(reason string) bool {
		for _, r := range rec.MatchReasons {
			if r == reason {
				return true
			}
		}
		return false
	}
	if !hasReason(recommend.ReasonLocationMatch) {
		t.Errorf("reasons %v missing location match", rec.MatchReasons)
	}
	if !hasReason(recommend.ReasonSectorAligned) {
		t.Errorf("reasons %v missing sector alignment", rec.MatchReasons)
	}
	// 1 of 2 skills gives exactly 10, which is not strong alignment.
	if hasReason(recommend.ReasonSkillsAlignment) {
		t.Errorf("reasons %v must not include skills alignment", rec.MatchReasons)
	}
}

func TestRecommendNoLocationMatchAnywhere(t *testing.T) {
	engine := loadedEngine(t, sampleRows)

	profile := baseProfile()
	profile.EducationLevel = models.EducationHighSchool
	profile.PreferredLoc = "Reykjavik"

	recs, err := engine.Recommend(profile)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	for _, rec := range recs {
		for _, reason := range rec.MatchReasons {
			if reason == recommend.ReasonLocationMatch {
				t.Errorf("%s claims a location match for an unmatched location", rec.ID)
			}
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	engine := loadedEngine(t, sampleRows)

	first, err := engine.Recommend(baseProfile())
	if err != nil {
		t.Fatalf("first Recommend returned error: %v", err)
	}
	second, err := engine.Recommend(baseProfile())
	if err != nil {
		t.Fatalf("second Recommend returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical requests returned different results:\n%v\n%v", first, second)
	}
}

func TestRecommendEducationWidening(t *testing.T) {
	// Every requirement is an unmatched token; recommendations must still
	// come back, drawn from the full catalog.
	engine := loadedEngine(t,
		"INT001,T,C,Technology,Delhi,3,,D,Python,Open to anyone,\n"+
			"INT002,T,C,Technology,Delhi,3,,D,Python,Vocational track,\n")

	recs, err := engine.Recommend(baseProfile())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2 (widened to full catalog)", len(recs))
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	engine := loadedEngine(t, "")

	if !engine.Ready() {
		t.Fatal("an empty catalog still counts as loaded")
	}
	if _, err := engine.Recommend(baseProfile()); !errors.Is(err, recommend.ErrEmptyResult) {
		t.Fatalf("Recommend on empty catalog: err = %v, want ErrEmptyResult", err)
	}
}

func TestEngineCatalogQueries(t *testing.T) {
	engine := loadedEngine(t, sampleRows)

	if engine.Count() != 6 {
		t.Errorf("Count() = %d, want 6", engine.Count())
	}

	sectors, err := engine.Sectors()
	if err != nil {
		t.Fatalf("Sectors returned error: %v", err)
	}
	want := []string{"Finance", "Healthcare", "Marketing", "Technology"}
	if !reflect.DeepEqual(sectors, want) {
		t.Errorf("Sectors() = %v, want %v", sectors, want)
	}

	locations, err := engine.Locations()
	if err != nil {
		t.Fatalf("Locations returned error: %v", err)
	}
	wantLocations := []string{"Bangalore", "Delhi", "Hyderabad", "Mumbai"}
	if !reflect.DeepEqual(locations, wantLocations) {
		t.Errorf("Locations() = %v, want %v", locations, wantLocations)
	}
}
