package domain

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultLanguage is assigned to users that do not choose one
const DefaultLanguage = "en"

// User represents an app user identified by phone number
type User struct {
	ID          int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	PhoneNumber string    `json:"phone_number" gorm:"uniqueIndex;not null;type:varchar(32)"`
	Name        *string   `json:"name" gorm:"type:varchar(128)"`
	Email       *string   `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Language    string    `json:"language" gorm:"type:varchar(8);not null;default:'en'"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// DisplayName returns the user's name, falling back to the phone number
func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.PhoneNumber
}

// UserProgress holds the gamification state of a user
type UserProgress struct {
	ID           int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	UserID       int64     `json:"user_id" gorm:"uniqueIndex;not null"`
	Coins        int       `json:"coins" gorm:"not null;default:0"`
	Level        int       `json:"level" gorm:"not null;default:1"`
	XP           int       `json:"xp" gorm:"column:xp;not null;default:0"`
	StreakDays   int       `json:"streak_days" gorm:"not null;default:0"`
	LastActivity time.Time `json:"last_activity" gorm:"not null"`
}

// TableName specifies the table name for UserProgress
func (p UserProgress) TableName() string {
	return "user_progress"
}

// NewUserProgress returns the initial progress row for a freshly created user
func NewUserProgress(userID int64, now time.Time) *UserProgress {
	return &UserProgress{
		UserID:       userID,
		Coins:        0,
		Level:        1,
		XP:           0,
		StreakDays:   0,
		LastActivity: now,
	}
}

// CreateUserInput carries the fields accepted when registering a user
type CreateUserInput struct {
	PhoneNumber string
	Name        *string
	Email       *string
	Language    string
}

// UpdateUserInput carries a partial update; nil fields are left untouched
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Language *string
}

// IsEmpty reports whether the update carries no fields
func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Language == nil
}

// AddCoinsResult is returned after crediting coins to a user
type AddCoinsResult struct {
	Message    string `json:"message"`
	TotalCoins int    `json:"total_coins"`
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	WithTransaction(tx *gorm.DB) UserRepository
}

// ProgressRepository defines the interface for user progress data
type ProgressRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*UserProgress, error)
	Create(ctx context.Context, progress *UserProgress) error
	// AddCoins increments coins in a single statement and reports whether a row was updated
	AddCoins(ctx context.Context, userID int64, coins int) (bool, error)
	// AddReward increments coins and xp in a single statement and reports whether a row was updated
	AddReward(ctx context.Context, userID int64, coins, xp int) (bool, error)
	WithTransaction(tx *gorm.DB) ProgressRepository
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, skip, limit int) ([]*User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*User, error)
	GetProgress(ctx context.Context, id int64) (*UserProgress, error)
	AddCoins(ctx context.Context, id int64, coins int) (*AddCoinsResult, error)
}
