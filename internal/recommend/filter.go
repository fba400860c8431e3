package recommend

import (
	"strings"

	"internmatch/internal/catalog"
	"internmatch/pkg/models"
)

// EligibleIndices returns the catalog-order indices of postings whose
// education requirement accepts the given profile level: the requirement
// text must contain (case-insensitive) the name of the profile's level or
// of any level above it.
//
// If the education gate would leave nothing, the filter widens to the
// entire catalog instead of returning no candidates; recommendations must
// never hard-fail purely on an overly strict education match.
func EligibleIndices(store *catalog.Store, level models.EducationLevel) []int {
	allowed := level.SatisfiableRequirements()
	for i := range allowed {
		allowed[i] = strings.ToLower(allowed[i])
	}

	records := store.Records()
	indices := make([]int, 0, len(records))
	for i, p := range records {
		requirement := strings.ToLower(p.EducationRequirement)
		for _, name := range allowed {
			if strings.Contains(requirement, name) {
				indices = append(indices, i)
				break
			}
		}
	}

	if len(indices) == 0 {
		for i := range records {
			indices = append(indices, i)
		}
	}

	return indices
}
