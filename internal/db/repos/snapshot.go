// Package repos provides database repository implementations
package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/healthindex/healthindex/internal/db/models"
)

// SnapshotRepository handles database operations for snapshots
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new instance of SnapshotRepository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{
		db: db,
	}
}

// Create creates a new snapshot in the database
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *models.Snapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// Get retrieves a snapshot by ID from the database
func (r *SnapshotRepository) Get(ctx context.Context, id uint) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	if err := r.db.WithContext(ctx).First(&snapshot, id).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// LatestSucceeded retrieves the most recent succeeded snapshot, the dataset
// currently being served.
func (r *SnapshotRepository) LatestSucceeded(ctx context.Context) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	err := r.db.WithContext(ctx).
		Where(models.Snapshot{Status: models.SnapshotStatusSucceeded}).
		Order("created_at DESC, id DESC").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// List retrieves snapshots from the database with pagination, newest first
func (r *SnapshotRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Find(&snapshots).Error
	return snapshots, err
}

// MarkSucceeded updates a snapshot to the succeeded state with its row count
func (r *SnapshotRepository) MarkSucceeded(ctx context.Context, id uint, rowCount int, fetchedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Snapshot{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.SnapshotStatusSucceeded,
			"row_count":  rowCount,
			"fetched_at": fetchedAt,
		}).Error
}

// MarkFailed updates a snapshot to the failed state with the failure reason
func (r *SnapshotRepository) MarkFailed(ctx context.Context, id uint, cause error) error {
	errText := ""
	if cause != nil {
		errText = cause.Error()
	}
	return r.db.WithContext(ctx).Model(&models.Snapshot{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": models.SnapshotStatusFailed,
			"error":  errText,
		}).Error
}
