package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/healthindex/healthindex/internal/db"
	"github.com/healthindex/healthindex/internal/db/models"
	"github.com/healthindex/healthindex/internal/db/repos"
)

// ErrNoSnapshot indicates no refresh has succeeded yet, so there is no
// dataset to serve.
var ErrNoSnapshot = errors.New("no data available yet, run a refresh first")

// Query serves read access to the latest successfully refreshed dataset
type Query struct {
	snapshots    *repos.SnapshotRepository
	measurements *repos.MeasurementRepository
	scores       *repos.ScoreRepository
}

// NewQueryService creates a new instance of the query service
func NewQueryService(
	snapshots *repos.SnapshotRepository,
	measurements *repos.MeasurementRepository,
	scores *repos.ScoreRepository,
) *Query {
	return &Query{
		snapshots:    snapshots,
		measurements: measurements,
		scores:       scores,
	}
}

// LatestSnapshot returns the most recent succeeded snapshot
func (s *Query) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	snapshot, err := s.snapshots.LatestSucceeded(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return snapshot, nil
}

// LatestScores returns the index scores of the latest snapshot, best first
func (s *Query) LatestScores(ctx context.Context, opts *models.ListOptions) (*models.Snapshot, []models.IndexScore, error) {
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	scores, err := s.scores.ListBySnapshot(ctx, snapshot.ID, opts)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, scores, nil
}

// StateScore returns one state's score within the latest snapshot
func (s *Query) StateScore(ctx context.Context, state string) (*models.IndexScore, error) {
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.scores.GetByState(ctx, snapshot.ID, state)
}

// LatestMeasurements returns the raw measurements of the latest snapshot
func (s *Query) LatestMeasurements(ctx context.Context, opts *models.ListOptions) (*models.Snapshot, []models.Measurement, error) {
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	measurements, err := s.measurements.ListBySnapshot(ctx, snapshot.ID, opts)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, measurements, nil
}

// ListSnapshots returns the refresh history, newest first
func (s *Query) ListSnapshots(ctx context.Context, opts *models.ListOptions) ([]models.Snapshot, error) {
	return s.snapshots.List(ctx, opts)
}

// ExportLatest writes the latest dataset as CSV to w
func (s *Query) ExportLatest(ctx context.Context, w io.Writer) error {
	snapshot, err := s.LatestSnapshot(ctx)
	if err != nil {
		return err
	}

	measurements, err := s.measurements.ListBySnapshot(ctx, snapshot.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to load measurements: %w", err)
	}
	scores, err := s.scores.ListBySnapshot(ctx, snapshot.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to load index scores: %w", err)
	}

	mPtrs := make([]*models.Measurement, len(measurements))
	for i := range measurements {
		mPtrs[i] = &measurements[i]
	}
	sPtrs := make([]*models.IndexScore, len(scores))
	for i := range scores {
		sPtrs[i] = &scores[i]
	}

	return WriteCSV(w, mPtrs, sPtrs)
}
