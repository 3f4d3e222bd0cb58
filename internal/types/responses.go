// Package types defines the request and response shapes of the public API.
package types

// PaginationResponse represents pagination information for list endpoints
// Example: {"total":50,"page":1,"limit":50,"offset":0}
type PaginationResponse struct {
	// Total number of items in the current page
	Total int `json:"total"`

	// Current page number (1-based)
	Page int `json:"page"`

	// Maximum number of items per page
	Limit int `json:"limit"`

	// Number of items skipped from the beginning of the result set
	Offset int `json:"offset"`
}

// ListResponse defines a generic response structure for listing resources
// Example: {"rows":[{"state":"Alabama","index":0.41}],"pagination":{"total":1,"page":1,"limit":50,"offset":0}}
type ListResponse[T any] struct {
	// Array of resource items
	Rows []T `json:"rows"`

	// Pagination information for the result set
	Pagination PaginationResponse `json:"pagination"`
}

// IndexEntry is one bar of the index chart: a state and its composite score
// Example: {"state":"Colorado","index":0.73}
type IndexEntry struct {
	// State name
	State string `json:"state"`

	// Composite health and prosperity index in [0, 1]
	Score float64 `json:"index"`
}

// IndexResponse represents the latest computed index
// Example: {"snapshot_id":7,"fetched_at":"2026-08-29T04:00:00Z","rows":[...]}
type IndexResponse struct {
	// Snapshot the scores were computed in
	SnapshotID uint `json:"snapshot_id"`

	// When the underlying data was fetched from the upstream API
	FetchedAt string `json:"fetched_at"`

	// Scores per state, best first
	Rows []IndexEntry `json:"rows"`

	// Pagination information for the result set
	Pagination PaginationResponse `json:"pagination"`
}

// ErrorResponse represents an error response
// Example: {"error":"State not found"}
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error"`

	// Optional additional details about the error
	Details interface{} `json:"details,omitempty"`
}
