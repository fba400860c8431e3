package models

// EducationLevel represents the applicant's highest attained education level.
type EducationLevel string

const (
	EducationHighSchool    EducationLevel = "high_school"
	EducationDiploma       EducationLevel = "diploma"
	EducationUndergraduate EducationLevel = "undergraduate"
	EducationGraduate      EducationLevel = "graduate"
	EducationPostgraduate  EducationLevel = "postgraduate"
)

// educationOrder lists levels from lowest to highest attainment. Requirement
// names are the display tokens matched against posting requirement text.
var educationOrder = []struct {
	Level EducationLevel
	Name  string
}{
	{EducationHighSchool, "High School"},
	{EducationDiploma, "Diploma"},
	{EducationUndergraduate, "Undergraduate"},
	{EducationGraduate, "Graduate"},
	{EducationPostgraduate, "Postgraduate"},
}

// IsValid reports whether the level is one of the known enum values.
func (l EducationLevel) IsValid() bool {
	for _, e := range educationOrder {
		if e.Level == l {
			return true
		}
	}
	return false
}

// SatisfiableRequirements returns the requirement names that a profile at
// this level is eligible for: its own level and every level above it.
// Higher attainment satisfies lower or equal requirements.
func (l EducationLevel) SatisfiableRequirements() []string {
	names := make([]string, 0, len(educationOrder))
	found := false
	for _, e := range educationOrder {
		if e.Level == l {
			found = true
		}
		if found {
			names = append(names, e.Name)
		}
	}
	return names
}

// UserProfile is the input for one recommendation request. It is constructed
// per request, validated against the stated bounds and never persisted.
type UserProfile struct {
	Name             string         `json:"name" validate:"required,min=2,max=100"`
	EducationLevel   EducationLevel `json:"education_level" validate:"required,education_level"`
	FieldOfStudy     string         `json:"field_of_study" validate:"required,min=2,max=100"`
	Skills           []string       `json:"skills" validate:"required,min=1,max=20,dive,required"`
	PreferredSectors []string       `json:"preferred_sectors" validate:"required,min=1,max=10,dive,required"`
	PreferredLoc     string         `json:"preferred_location" validate:"required,min=2,max=100"`
	ExperienceYears  int            `json:"experience_years" validate:"min=0,max=10"`
}
