package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/healthindex/healthindex/internal/db/models"
)

// MeasurementRepository handles database operations for raw measurements
type MeasurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository creates a new instance of MeasurementRepository
func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{
		db: db,
	}
}

// CreateBatch inserts a batch of measurements in a single operation
func (r *MeasurementRepository) CreateBatch(ctx context.Context, measurements []*models.Measurement) error {
	if len(measurements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(measurements).Error
}

// ListBySnapshot retrieves the measurements of a snapshot with pagination
func (r *MeasurementRepository) ListBySnapshot(ctx context.Context, snapshotID uint, opts *models.ListOptions) ([]models.Measurement, error) {
	var measurements []models.Measurement
	query := r.db.WithContext(ctx).
		Where(models.Measurement{SnapshotID: snapshotID}).
		Order("state ASC")
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Find(&measurements).Error
	return measurements, err
}

// GetByState retrieves a single state's measurement within a snapshot
func (r *MeasurementRepository) GetByState(ctx context.Context, snapshotID uint, state string) (*models.Measurement, error) {
	var measurement models.Measurement
	query := r.db.WithContext(ctx).Where(models.Measurement{
		SnapshotID: snapshotID,
		State:      state,
	})
	if err := query.First(&measurement).Error; err != nil {
		return nil, err
	}
	return &measurement, nil
}
