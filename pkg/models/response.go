package models

import "time"

// Recommendation is the public output: a posting's public fields plus the
// clamped match score and the rule-derived match reasons. It is derived
// one-way from a scored candidate and never mutated after construction.
type Recommendation struct {
	Posting
	MatchScore   float64  `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
}

// RecommendResponse wraps the ranked recommendations for one request.
type RecommendResponse struct {
	UserName        string           `json:"user_name"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalMatches    int              `json:"total_matches"`
	GeneratedAt     time.Time        `json:"generated_at"`
	RequestID       string           `json:"request_id"`
}

// SectorsResponse lists the distinct sectors present in the catalog.
type SectorsResponse struct {
	Sectors []string `json:"sectors"`
}

// LocationsResponse lists the distinct locations present in the catalog.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string            `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
	Version       string            `json:"version"`
	Uptime        time.Duration     `json:"uptime"`
	CatalogLoaded bool              `json:"catalog_loaded"`
	TotalPostings int               `json:"total_postings"`
	Checks        map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
