package content

import (
	"context"

	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
)

var taxonomy = domain.ContentTaxonomy{
	ContentTypes:     []string{domain.ContentTypeVideo, domain.ContentTypeArticle, domain.ContentTypeQuiz},
	Languages:        []string{"en", "hi", "ta", "te", "bn"},
	DifficultyLevels: []string{domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced},
}

// ContentUseCase implements domain.ContentUseCase
type ContentUseCase struct {
	contentRepo domain.ContentRepository
	logger      *logger.Logger
}

// NewContentUseCase creates a new content usecase
func NewContentUseCase(contentRepo domain.ContentRepository, logger *logger.Logger) domain.ContentUseCase {
	logger.Info("ContentUseCase initialized successfully")
	return &ContentUseCase{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// List retrieves active catalogue items matching the filter
func (uc *ContentUseCase) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.FinancialContent, error) {
	items, err := uc.contentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list content", zap.Error(err))
		return nil, domain.NewDatabaseError("list content", err)
	}
	return items, nil
}

// Get retrieves an active catalogue item
func (uc *ContentUseCase) Get(ctx context.Context, id int64) (*domain.FinancialContent, error) {
	item, err := uc.contentRepo.GetActiveByID(ctx, id)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get content", zap.Int64("contentID", id), zap.Error(err))
		return nil, domain.NewDatabaseError("get content", err)
	}
	if item == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeContentNotFound, "Content")
	}
	return item, nil
}

// Taxonomy returns a copy of the static catalogue taxonomy
func (uc *ContentUseCase) Taxonomy() domain.ContentTaxonomy {
	return domain.ContentTaxonomy{
		ContentTypes:     append([]string(nil), taxonomy.ContentTypes...),
		Languages:        append([]string(nil), taxonomy.Languages...),
		DifficultyLevels: append([]string(nil), taxonomy.DifficultyLevels...),
	}
}
