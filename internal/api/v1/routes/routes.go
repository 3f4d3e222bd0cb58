// Package routes defines the API routes and URL structure
package routes

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8501"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// Endpoint paths relative to the v1 prefix
const (
	IndexEndpoint        = "/index"
	IndexExportEndpoint  = "/index/export"
	IndexStateEndpoint   = "/index/:state"
	MeasurementsEndpoint = "/measurements"
	SnapshotsEndpoint    = "/snapshots"
	RefreshEndpoint      = "/refresh"
)

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, h *handlers.APIHandler) {
	// Index routes. The export route is registered before the :state route so
	// fiber does not capture "export" as a state name.
	router.Get(IndexEndpoint, h.GetIndex)
	router.Get(IndexExportEndpoint, h.ExportIndex)
	router.Get(IndexStateEndpoint, h.GetStateIndex)

	// Measurement routes
	router.Get(MeasurementsEndpoint, h.GetMeasurements)

	// Snapshot routes
	router.Get(SnapshotsEndpoint, h.ListSnapshots)

	// Refresh routes
	router.Post(RefreshEndpoint, h.TriggerRefresh)
}

// Register registers the v1 routes
func Register(app *fiber.App, h *handlers.APIHandler) {
	v1Group := app.Group(APIv1Prefix)
	SetupRoutes(v1Group, h)
}
