package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/prospera/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository implements domain.ContentRepository
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) domain.ContentRepository {
	return &ContentRepository{db: db}
}

// List retrieves active content matching every non-empty filter, newest first
func (r *ContentRepository) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.FinancialContent, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)

	if filter.ContentType != "" {
		query = query.Where("content_type = ?", filter.ContentType)
	}
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.DifficultyLevel != "" {
		query = query.Where("difficulty_level = ?", filter.DifficultyLevel)
	}

	var content []*domain.FinancialContent
	result := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&content)
	if result.Error != nil {
		return nil, result.Error
	}
	return content, nil
}

// GetActiveByID retrieves an active content item, nil when absent or inactive
func (r *ContentRepository) GetActiveByID(ctx context.Context, id int64) (*domain.FinancialContent, error) {
	var content domain.FinancialContent
	result := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &content, nil
}

// GetByTitle retrieves a content item by title regardless of its state
func (r *ContentRepository) GetByTitle(ctx context.Context, title string) (*domain.FinancialContent, error) {
	var content domain.FinancialContent
	result := r.db.WithContext(ctx).Where("title = ?", title).First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &content, nil
}

// Create stores a content item. Inactive items are written in two steps
// because the column default would otherwise replace a false value.
func (r *ContentRepository) Create(ctx context.Context, content *domain.FinancialContent) error {
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}
	active := content.IsActive

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(content).Error; err != nil {
			return err
		}
		if !active {
			content.IsActive = false
			return tx.Model(content).Update("is_active", false).Error
		}
		return nil
	})
}
