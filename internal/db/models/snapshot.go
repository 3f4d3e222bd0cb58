package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SnapshotStatus represents the current state of a data refresh run
type SnapshotStatus string

// Snapshot status constants
const (
	// SnapshotStatusUnknown represents an unknown or invalid snapshot status
	SnapshotStatusUnknown SnapshotStatus = "unknown"
	// SnapshotStatusPending indicates the refresh is in progress
	SnapshotStatusPending SnapshotStatus = "pending"
	// SnapshotStatusSucceeded indicates the refresh completed and the snapshot is servable
	SnapshotStatusSucceeded SnapshotStatus = "succeeded"
	// SnapshotStatusFailed indicates the refresh failed
	SnapshotStatusFailed SnapshotStatus = "failed"
)

// Snapshot represents a single refresh run against the upstream data source.
// The most recent succeeded snapshot is the dataset the API serves.
type Snapshot struct {
	gorm.Model
	SourceURL string         `json:"source_url" gorm:"not null"`
	Status    SnapshotStatus `json:"status" gorm:"not null; index"`
	RowCount  int            `json:"row_count" gorm:"not null;default:0"`
	FetchedAt time.Time      `json:"fetched_at"`
	Error     string         `json:"error,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

// String returns the string representation of the snapshot status
func (s SnapshotStatus) String() string {
	return string(s)
}

// ParseSnapshotStatus converts a string to a SnapshotStatus type
func ParseSnapshotStatus(str string) (SnapshotStatus, error) {
	switch str {
	case string(SnapshotStatusPending):
		return SnapshotStatusPending, nil
	case string(SnapshotStatusSucceeded):
		return SnapshotStatusSucceeded, nil
	case string(SnapshotStatusFailed):
		return SnapshotStatusFailed, nil
	default:
		return SnapshotStatusUnknown, fmt.Errorf("invalid snapshot status: %s", str)
	}
}
