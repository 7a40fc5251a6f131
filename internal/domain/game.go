package domain

//go:generate mockgen -source=game.go -destination=mocks/game_mock.go -package=mocks

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultLeaderboardLimit is the number of leaderboard entries returned when no limit is given
const DefaultLeaderboardLimit = 10

// NoScoresMessage is returned instead of a high score when a user never played a game
const NoScoresMessage = "No scores found"

// GameScore is a single, immutable game result submitted by a user
type GameScore struct {
	ID          int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	UserID      int64     `json:"user_id" gorm:"index;not null"`
	GameName    string    `json:"game_name" gorm:"index;type:varchar(64);not null"`
	Score       int       `json:"score" gorm:"not null"`
	CoinsEarned int       `json:"coins_earned" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for GameScore
func (g GameScore) TableName() string {
	return "game_scores"
}

// SubmitScoreInput carries a game result
type SubmitScoreInput struct {
	GameName    string
	Score       int
	CoinsEarned int
}

// HighScore is the best result of a user in one game. When the user has no
// score the sentinel form carries HighScore 0 and Message.
type HighScore struct {
	GameName    string     `json:"game_name"`
	HighScore   int        `json:"high_score"`
	CoinsEarned *int       `json:"coins_earned,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// PlayerScore is a game score joined with its user, as read for leaderboards
type PlayerScore struct {
	ScoreID     int64
	Score       int
	CreatedAt   time.Time
	Name        *string
	PhoneNumber string
}

// LeaderboardEntry is a ranked leaderboard row
type LeaderboardEntry struct {
	Rank       int       `json:"rank"`
	UserName   string    `json:"user_name"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}

// GameScoreRepository defines the interface for game score data
type GameScoreRepository interface {
	Create(ctx context.Context, score *GameScore) error
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*GameScore, error)
	GetHighScore(ctx context.Context, userID int64, gameName string) (*GameScore, error)
	TopScores(ctx context.Context, gameName string, limit int) ([]*PlayerScore, error)
	WithTransaction(tx *gorm.DB) GameScoreRepository
}

// GameUseCase defines the interface for game business logic
type GameUseCase interface {
	SubmitScore(ctx context.Context, userID int64, input SubmitScoreInput) (*GameScore, error)
	ListScores(ctx context.Context, userID int64, skip, limit int) ([]*GameScore, error)
	HighScore(ctx context.Context, userID int64, gameName string) (*HighScore, error)
	Leaderboard(ctx context.Context, gameName string, limit int) ([]*LeaderboardEntry, error)
}
