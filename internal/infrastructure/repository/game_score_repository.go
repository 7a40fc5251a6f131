package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/prospera/internal/domain"
	"gorm.io/gorm"
)

// GameScoreRepository implements domain.GameScoreRepository
type GameScoreRepository struct {
	db *gorm.DB
}

// NewGameScoreRepository creates a new game score repository
func NewGameScoreRepository(db *gorm.DB) domain.GameScoreRepository {
	return &GameScoreRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *GameScoreRepository) WithTransaction(tx *gorm.DB) domain.GameScoreRepository {
	return &GameScoreRepository{db: tx}
}

// Create stores a game score
func (r *GameScoreRepository) Create(ctx context.Context, score *domain.GameScore) error {
	score.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(score).Error
}

// ListByUserID retrieves the scores of a user with pagination, newest first
func (r *GameScoreRepository) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*domain.GameScore, error) {
	var scores []*domain.GameScore
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

// GetHighScore retrieves the best score of a user in a game, nil when the user never played it
func (r *GameScoreRepository) GetHighScore(ctx context.Context, userID int64, gameName string) (*domain.GameScore, error) {
	var score domain.GameScore
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_name = ?", userID, gameName).
		Order("score DESC").
		Order("id ASC").
		Take(&score)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &score, nil
}

// TopScores retrieves the highest scores of a game joined with their players.
// Equal scores keep submission order.
func (r *GameScoreRepository) TopScores(ctx context.Context, gameName string, limit int) ([]*domain.PlayerScore, error) {
	var rows []*domain.PlayerScore
	result := r.db.WithContext(ctx).
		Table("game_scores").
		Select("game_scores.id AS score_id, game_scores.score, game_scores.created_at, users.name, users.phone_number").
		Joins("JOIN users ON users.id = game_scores.user_id").
		Where("game_scores.game_name = ?", gameName).
		Order("game_scores.score DESC").
		Order("game_scores.id ASC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
