// Package services implements the application services of the health index
// service.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/healthindex/healthindex/internal/datausa"
	"github.com/healthindex/healthindex/internal/db/models"
	"github.com/healthindex/healthindex/internal/db/repos"
	"github.com/healthindex/healthindex/internal/index"
	"github.com/healthindex/healthindex/internal/logger"
)

// Refresh orchestrates one data refresh run: fetch from the upstream API,
// compute the index, and persist the result as a new snapshot.
type Refresh struct {
	client       datausa.Client
	snapshots    *repos.SnapshotRepository
	measurements *repos.MeasurementRepository
	scores       *repos.ScoreRepository
	sourceURL    string
	dataFilePath string
}

// NewRefreshService creates a new instance of the refresh service
func NewRefreshService(
	client datausa.Client,
	snapshots *repos.SnapshotRepository,
	measurements *repos.MeasurementRepository,
	scores *repos.ScoreRepository,
	sourceURL string,
	dataFilePath string,
) *Refresh {
	return &Refresh{
		client:       client,
		snapshots:    snapshots,
		measurements: measurements,
		scores:       scores,
		sourceURL:    sourceURL,
		dataFilePath: dataFilePath,
	}
}

// Run executes a full refresh and returns the resulting snapshot. Failed runs
// are recorded as failed snapshots so the refresh history stays inspectable.
func (s *Refresh) Run(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{
		SourceURL: s.sourceURL,
		Status:    models.SnapshotStatusPending,
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	measurements, err := s.client.Fetch(ctx)
	if err != nil {
		return snapshot, s.fail(ctx, snapshot, fmt.Errorf("error fetching data from API: %w", err))
	}
	fetchedAt := time.Now()

	for _, m := range measurements {
		m.SnapshotID = snapshot.ID
	}

	scores, err := index.Compute(measurements)
	if err != nil {
		return snapshot, s.fail(ctx, snapshot, fmt.Errorf("error calculating index: %w", err))
	}

	if err := s.measurements.CreateBatch(ctx, measurements); err != nil {
		return snapshot, s.fail(ctx, snapshot, fmt.Errorf("failed to store measurements: %w", err))
	}
	if err := s.scores.CreateBatch(ctx, scores); err != nil {
		return snapshot, s.fail(ctx, snapshot, fmt.Errorf("failed to store index scores: %w", err))
	}

	if err := s.snapshots.MarkSucceeded(ctx, snapshot.ID, len(measurements), fetchedAt); err != nil {
		return snapshot, fmt.Errorf("failed to finalize snapshot: %w", err)
	}
	snapshot.Status = models.SnapshotStatusSucceeded
	snapshot.RowCount = len(measurements)
	snapshot.FetchedAt = fetchedAt

	// CSV export is best effort: a write failure must not fail the refresh.
	if s.dataFilePath != "" {
		if err := ExportCSVFile(s.dataFilePath, measurements, scores); err != nil {
			logger.Errorf("Error saving data to file: %v", err)
		} else {
			logger.Infof("Data updated successfully. File saved to %s", s.dataFilePath)
		}
	}

	logger.InfoWithFields("Refresh completed", map[string]interface{}{
		"snapshot_id": snapshot.ID,
		"rows":        snapshot.RowCount,
		"source":      snapshot.SourceURL,
	})

	return snapshot, nil
}

// fail marks the snapshot failed, preferring the original error over a
// bookkeeping error.
func (s *Refresh) fail(ctx context.Context, snapshot *models.Snapshot, cause error) error {
	if err := s.snapshots.MarkFailed(ctx, snapshot.ID, cause); err != nil {
		logger.Errorf("Failed to mark snapshot %d as failed: %v", snapshot.ID, err)
	}
	snapshot.Status = models.SnapshotStatusFailed
	snapshot.Error = cause.Error()
	return cause
}
