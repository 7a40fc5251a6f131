package domain

//go:generate mockgen -source=content.go -destination=mocks/content_mock.go -package=mocks

import (
	"context"
	"time"
)

// Content types
const (
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
	ContentTypeQuiz    = "quiz"
)

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// FinancialContent is an item of the educational catalogue
type FinancialContent struct {
	ID              int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Title           string    `json:"title" gorm:"type:varchar(255);not null"`
	Description     *string   `json:"description" gorm:"type:text"`
	ContentType     string    `json:"content_type" gorm:"index;type:varchar(16);not null"`
	Language        string    `json:"language" gorm:"index;type:varchar(8);not null;default:'en'"`
	DifficultyLevel string    `json:"difficulty_level" gorm:"type:varchar(16);not null;default:'beginner'"`
	DurationMinutes *int      `json:"duration_minutes"`
	ThumbnailURL    *string   `json:"thumbnail_url" gorm:"type:varchar(512)"`
	ContentURL      *string   `json:"content_url" gorm:"type:varchar(512)"`
	IsActive        bool      `json:"is_active" gorm:"index;not null;default:true"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for FinancialContent
func (f FinancialContent) TableName() string {
	return "financial_content"
}

// ContentFilter narrows a catalogue listing; empty strings match everything
type ContentFilter struct {
	ContentType     string
	Language        string
	DifficultyLevel string
	Offset          int
	Limit           int
}

// ContentTaxonomy lists the values the catalogue is organised by
type ContentTaxonomy struct {
	ContentTypes     []string `json:"content_types"`
	Languages        []string `json:"languages"`
	DifficultyLevels []string `json:"difficulty_levels"`
}

// ContentRepository defines the interface for content data
type ContentRepository interface {
	List(ctx context.Context, filter ContentFilter) ([]*FinancialContent, error)
	GetActiveByID(ctx context.Context, id int64) (*FinancialContent, error)
	GetByTitle(ctx context.Context, title string) (*FinancialContent, error)
	Create(ctx context.Context, content *FinancialContent) error
}

// ContentUseCase defines the interface for content business logic
type ContentUseCase interface {
	List(ctx context.Context, filter ContentFilter) ([]*FinancialContent, error)
	Get(ctx context.Context, id int64) (*FinancialContent, error)
	Taxonomy() ContentTaxonomy
}
