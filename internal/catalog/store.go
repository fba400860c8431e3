package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"internmatch/pkg/models"
	"internmatch/pkg/utils"
)

// Defaults substituted for missing or unparseable catalog values. Per-record
// anomalies are always recovered locally and never surfaced to callers.
const (
	DefaultTitle                = "Internship Opportunity"
	DefaultCompany              = "Company Name"
	DefaultSector               = "General"
	DefaultLocation             = "Location TBD"
	DefaultDescription          = "Description not available"
	DefaultEducationRequirement = "Not specified"
	DefaultDurationMonths       = 3
)

// Store holds the immutable set of postings and their derived text blobs.
// It is built once by Load and read-only afterwards, so it is safe to share
// across concurrent requests without locking.
type Store struct {
	postings      []models.Posting
	combinedTexts []string
}

// Load reads the catalog CSV at path and normalizes every row. The load is
// atomic: any reader or parser failure returns an error and no Store.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	return load(f)
}

func load(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are padded with defaults
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing catalog csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog csv has no header row")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["id"]; !ok {
		return nil, fmt.Errorf("catalog csv is missing the id column")
	}

	store := &Store{
		postings:      make([]models.Posting, 0, len(rows)-1),
		combinedTexts: make([]string, 0, len(rows)-1),
	}

	for _, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		posting := models.Posting{
			ID:                   cell("id"),
			Title:                utils.GetStringOrDefault(cell("title"), DefaultTitle),
			Company:              utils.GetStringOrDefault(cell("company"), DefaultCompany),
			Sector:               utils.GetStringOrDefault(cell("sector"), DefaultSector),
			Location:             utils.GetStringOrDefault(cell("location"), DefaultLocation),
			DurationMonths:       parseDuration(cell("duration_months")),
			Stipend:              parseStipend(cell("stipend")),
			Description:          utils.GetStringOrDefault(cell("description"), DefaultDescription),
			RequiredSkills:       splitSkills(cell("required_skills")),
			EducationRequirement: utils.GetStringOrDefault(cell("education_requirement"), DefaultEducationRequirement),
			ApplicationDeadline:  optionalString(cell("application_deadline")),
		}

		store.postings = append(store.postings, posting)
		store.combinedTexts = append(store.combinedTexts, combinedText(posting))
	}

	return store, nil
}

// parseDuration coerces the duration column; unparseable or missing
// values fall back to the default.
func parseDuration(raw string) int {
	if raw == "" {
		return DefaultDurationMonths
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return DefaultDurationMonths
	}
	return n
}

// parseStipend coerces the stipend column; unparseable or missing values
// are absent, not zero.
func parseStipend(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func optionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// combinedText joins the fields the similarity index is built over.
func combinedText(p models.Posting) string {
	parts := make([]string, 0, len(p.RequiredSkills)+2)
	parts = append(parts, p.RequiredSkills...)
	parts = append(parts, p.Sector, p.Description)
	return strings.Join(parts, " ")
}

// Records returns all postings in catalog load order.
func (s *Store) Records() []models.Posting {
	return s.postings
}

// Count returns the number of loaded postings.
func (s *Store) Count() int {
	return len(s.postings)
}

// CombinedTexts returns the derived text blob per posting, aligned with
// Records order. Used exclusively by the similarity index.
func (s *Store) CombinedTexts() []string {
	return s.combinedTexts
}

// Sectors returns the distinct sectors, sorted, with blanks dropped.
func (s *Store) Sectors() []string {
	return s.distinct(func(p models.Posting) string { return p.Sector })
}

// Locations returns the distinct locations, sorted, with blanks dropped.
func (s *Store) Locations() []string {
	return s.distinct(func(p models.Posting) string { return p.Location })
}

func (s *Store) distinct(field func(models.Posting) string) []string {
	seen := make(map[string]struct{}, len(s.postings))
	values := make([]string, 0, len(s.postings))
	for _, p := range s.postings {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
