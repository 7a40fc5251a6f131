package repository

import (
	"context"
	"errors"

	"github.com/saradorri/prospera/internal/domain"
	"gorm.io/gorm"
)

// ProgressRepository implements domain.ProgressRepository
type ProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *gorm.DB) domain.ProgressRepository {
	return &ProgressRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *ProgressRepository) WithTransaction(tx *gorm.DB) domain.ProgressRepository {
	return &ProgressRepository{db: tx}
}

// GetByUserID retrieves the progress row of a user
func (r *ProgressRepository) GetByUserID(ctx context.Context, userID int64) (*domain.UserProgress, error) {
	var progress domain.UserProgress
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &progress, nil
}

// Create creates a progress row
func (r *ProgressRepository) Create(ctx context.Context, progress *domain.UserProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

// AddCoins increments the coin balance in place
func (r *ProgressRepository) AddCoins(ctx context.Context, userID int64, coins int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumn("coins", gorm.Expr("coins + ?", coins))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AddReward increments coins and xp in place
func (r *ProgressRepository) AddReward(ctx context.Context, userID int64, coins, xp int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"coins": gorm.Expr("coins + ?", coins),
			"xp":    gorm.Expr("xp + ?", xp),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
