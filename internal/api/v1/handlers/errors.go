package handlers

// Common error messages
const (
	ErrMsgInvalidParams = "Invalid parameters"
	ErrMsgNoData        = "No data available yet. Please run the update first."
)

// Index error messages
const (
	ErrMsgStateRequired  = "State name is required"
	ErrMsgStateNotFound  = "State not found in the latest dataset"
	ErrMsgIndexFailed    = "Failed to get index"
	ErrMsgExportFailed   = "Failed to export dataset"
	ErrMsgMeasListFailed = "Failed to list measurements"
)

// Snapshot error messages
const (
	ErrMsgSnapListFailed = "Failed to list snapshots"
	ErrMsgRefreshFailed  = "Failed to refresh data"
)
