package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/healthindex/healthindex/internal/db/models"
)

// ScoreRepository handles database operations for index scores
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new instance of ScoreRepository
func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{
		db: db,
	}
}

// CreateBatch inserts a batch of index scores in a single operation
func (r *ScoreRepository) CreateBatch(ctx context.Context, scores []*models.IndexScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(scores).Error
}

// ListBySnapshot retrieves the scores of a snapshot with pagination, best
// scoring states first
func (r *ScoreRepository) ListBySnapshot(ctx context.Context, snapshotID uint, opts *models.ListOptions) ([]models.IndexScore, error) {
	var scores []models.IndexScore
	query := r.db.WithContext(ctx).
		Where(models.IndexScore{SnapshotID: snapshotID}).
		Order("score DESC")
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Find(&scores).Error
	return scores, err
}

// GetByState retrieves a single state's score within a snapshot
func (r *ScoreRepository) GetByState(ctx context.Context, snapshotID uint, state string) (*models.IndexScore, error) {
	var score models.IndexScore
	query := r.db.WithContext(ctx).Where(models.IndexScore{
		SnapshotID: snapshotID,
		State:      state,
	})
	if err := query.First(&score).Error; err != nil {
		return nil, err
	}
	return &score, nil
}
