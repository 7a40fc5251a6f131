package seeder

import (
	"context"

	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Seeder handles database seeding operations
type Seeder struct {
	contentRepo domain.ContentRepository
	logger      *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(contentRepo domain.ContentRepository, logger *logger.Logger) *Seeder {
	return &Seeder{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// SeedContent inserts the starter catalogue, skipping titles that already exist.
// It returns the number of rows created.
func (s *Seeder) SeedContent(ctx context.Context) (int, error) {
	s.logger.Info("Seeding financial content...")

	created := 0
	for _, item := range StarterCatalogue() {
		existing, err := s.contentRepo.GetByTitle(ctx, item.Title)
		if err != nil {
			return created, err
		}
		if existing != nil {
			s.logger.Debug("Content already exists, skipping", zap.String("title", item.Title))
			continue
		}

		if err := s.contentRepo.Create(ctx, item); err != nil {
			s.logger.Error("Error creating content", zap.String("title", item.Title), zap.Error(err))
			return created, err
		}
		created++
	}

	s.logger.Info("Content seeding completed", zap.Int("created", created))
	return created, nil
}

// StarterCatalogue returns fresh copies of the built-in content items
func StarterCatalogue() []*domain.FinancialContent {
	return []*domain.FinancialContent{
		{
			Title:           "Budgeting Basics",
			Description:     str("Split your income into needs, wants and savings."),
			ContentType:     domain.ContentTypeVideo,
			Language:        "en",
			DifficultyLevel: domain.DifficultyBeginner,
			DurationMinutes: num(6),
			ContentURL:      str("https://cdn.prospera.app/videos/budgeting-basics.mp4"),
			ThumbnailURL:    str("https://cdn.prospera.app/thumbs/budgeting-basics.jpg"),
			IsActive:        true,
		},
		{
			Title:           "Why an Emergency Fund Matters",
			Description:     str("How much to keep aside and where to keep it."),
			ContentType:     domain.ContentTypeArticle,
			Language:        "en",
			DifficultyLevel: domain.DifficultyBeginner,
			DurationMinutes: num(4),
			ContentURL:      str("https://cdn.prospera.app/articles/emergency-fund"),
			IsActive:        true,
		},
		{
			Title:           "Understanding Interest Rates",
			Description:     str("Simple versus compound interest on loans and deposits."),
			ContentType:     domain.ContentTypeVideo,
			Language:        "en",
			DifficultyLevel: domain.DifficultyIntermediate,
			DurationMinutes: num(9),
			ContentURL:      str("https://cdn.prospera.app/videos/interest-rates.mp4"),
			ThumbnailURL:    str("https://cdn.prospera.app/thumbs/interest-rates.jpg"),
			IsActive:        true,
		},
		{
			Title:           "बचत की आदत",
			Description:     str("रोज़ की छोटी बचत से बड़ा फ़र्क।"),
			ContentType:     domain.ContentTypeVideo,
			Language:        "hi",
			DifficultyLevel: domain.DifficultyBeginner,
			DurationMinutes: num(5),
			ContentURL:      str("https://cdn.prospera.app/videos/bachat-ki-aadat.mp4"),
			IsActive:        true,
		},
		{
			Title:           "Spot the Scam",
			Description:     str("Test yourself on common UPI and SMS frauds."),
			ContentType:     domain.ContentTypeQuiz,
			Language:        "en",
			DifficultyLevel: domain.DifficultyIntermediate,
			DurationMinutes: num(3),
			IsActive:        true,
		},
		{
			Title:           "Investing in Index Funds",
			Description:     str("Diversification, expense ratios and staying invested."),
			ContentType:     domain.ContentTypeArticle,
			Language:        "en",
			DifficultyLevel: domain.DifficultyAdvanced,
			DurationMinutes: num(12),
			ContentURL:      str("https://cdn.prospera.app/articles/index-funds"),
			IsActive:        true,
		},
	}
}

func str(s string) *string { return &s }

func num(n int) *int { return &n }
