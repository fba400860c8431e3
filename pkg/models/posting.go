package models

// Posting represents one internship opening loaded from the catalog file.
// All string fields are non-empty after load; missing values are replaced
// with the documented defaults at load time. Postings are immutable after
// the catalog is built.
type Posting struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Company              string   `json:"company"`
	Sector               string   `json:"sector"`
	Location             string   `json:"location"`
	DurationMonths       int      `json:"duration_months"`
	Stipend              *int     `json:"stipend"`
	Description          string   `json:"description"`
	RequiredSkills       []string `json:"required_skills"`
	EducationRequirement string   `json:"education_requirement"`
	ApplicationDeadline  *string  `json:"application_deadline"`
}
