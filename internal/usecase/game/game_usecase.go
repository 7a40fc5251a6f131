package game

import (
	"context"

	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	scoreRepo domain.GameScoreRepository
	uow       domain.UnitOfWork
	logger    *logger.Logger
}

// NewGameUseCase creates a new game usecase
func NewGameUseCase(scoreRepo domain.GameScoreRepository, uow domain.UnitOfWork, logger *logger.Logger) domain.GameUseCase {
	logger.Info("GameUseCase initialized successfully")
	return &GameUseCase{
		scoreRepo: scoreRepo,
		uow:       uow,
		logger:    logger,
	}
}

// SubmitScore stores a game result and rewards the player: coins_earned coins
// and one xp point per score point.
func (uc *GameUseCase) SubmitScore(ctx context.Context, userID int64, input domain.SubmitScoreInput) (*domain.GameScore, error) {
	log := uc.logger.WithContext(ctx)

	score := &domain.GameScore{
		UserID:      userID,
		GameName:    input.GameName,
		Score:       input.Score,
		CoinsEarned: input.CoinsEarned,
	}

	err := uc.uow.Do(ctx, func(repos domain.Repositories) error {
		user, err := repos.Users.GetByID(ctx, userID)
		if err != nil {
			return domain.NewDatabaseError("get user", err)
		}
		if user == nil {
			return domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
		}

		if err := repos.Scores.Create(ctx, score); err != nil {
			return domain.NewDatabaseError("create game score", err)
		}

		applied, err := repos.Progress.AddReward(ctx, userID, input.CoinsEarned, input.Score)
		if err != nil {
			return domain.NewDatabaseError("apply reward", err)
		}
		if !applied {
			log.Warn("No progress row, reward skipped", zap.Int64("userID", userID), zap.Int64("scoreID", score.ID))
		}
		return nil
	})
	if err != nil {
		appErr := domain.AsAppError(err)
		if appErr.HTTPStatus >= 500 {
			log.Error("Failed to submit score", zap.Int64("userID", userID), zap.Error(err))
		}
		return nil, appErr
	}

	log.Info("Score submitted",
		zap.Int64("userID", userID),
		zap.String("game", score.GameName),
		zap.Int("score", score.Score),
		zap.Int("coins", score.CoinsEarned),
	)
	return score, nil
}

// ListScores retrieves a page of a user's scores, newest first
func (uc *GameUseCase) ListScores(ctx context.Context, userID int64, skip, limit int) ([]*domain.GameScore, error) {
	scores, err := uc.scoreRepo.ListByUserID(ctx, userID, skip, limit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list scores", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("list game scores", err)
	}
	return scores, nil
}

// HighScore returns the best score of a user in a game, or the empty sentinel
func (uc *GameUseCase) HighScore(ctx context.Context, userID int64, gameName string) (*domain.HighScore, error) {
	best, err := uc.scoreRepo.GetHighScore(ctx, userID, gameName)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get high score", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("get high score", err)
	}
	if best == nil {
		return &domain.HighScore{
			GameName:  gameName,
			HighScore: 0,
			Message:   domain.NoScoresMessage,
		}, nil
	}

	coins := best.CoinsEarned
	achievedAt := best.CreatedAt
	return &domain.HighScore{
		GameName:    best.GameName,
		HighScore:   best.Score,
		CoinsEarned: &coins,
		AchievedAt:  &achievedAt,
	}, nil
}

// Leaderboard ranks the top scores of a game
func (uc *GameUseCase) Leaderboard(ctx context.Context, gameName string, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}

	rows, err := uc.scoreRepo.TopScores(ctx, gameName, limit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to load leaderboard", zap.String("game", gameName), zap.Error(err))
		return nil, domain.NewDatabaseError("get leaderboard", err)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		player := domain.User{Name: row.Name, PhoneNumber: row.PhoneNumber}
		entries = append(entries, &domain.LeaderboardEntry{
			Rank:       i + 1,
			UserName:   player.DisplayName(),
			Score:      row.Score,
			AchievedAt: row.CreatedAt,
		})
	}
	return entries, nil
}
