// Package handlers provides HTTP request handling
package handlers

import (
	"github.com/healthindex/healthindex/internal/services"
)

// APIHandler is a handler for the API
type APIHandler struct {
	query   *services.Query
	refresh *services.Refresh
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(query *services.Query, refresh *services.Refresh) *APIHandler {
	return &APIHandler{
		query:   query,
		refresh: refresh,
	}
}
