package domain

//go:generate mockgen -source=transaction.go -destination=mocks/transaction_mock.go -package=mocks

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents an income or expense entry recorded by a user
type Transaction struct {
	ID              int64           `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	UserID          int64           `json:"user_id" gorm:"index;not null"`
	Amount          float64         `json:"amount" gorm:"type:numeric(20,2);not null"`
	Category        string          `json:"category" gorm:"type:varchar(64);not null"`
	Description     *string         `json:"description" gorm:"type:text"`
	TransactionType TransactionType `json:"transaction_type" gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time       `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (t Transaction) TableName() string {
	return "transactions"
}

// CreateTransactionInput carries the fields accepted when recording a transaction
type CreateTransactionInput struct {
	Amount          float64
	Category        string
	Description     *string
	TransactionType TransactionType
}

// TransactionSummary aggregates every transaction of a user
type TransactionSummary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// TransactionRepository defines the interface for transaction data
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*Transaction, error)
	ListAllByUserID(ctx context.Context, userID int64) ([]*Transaction, error)
	Delete(ctx context.Context, id int64) error
	WithTransaction(tx *gorm.DB) TransactionRepository
}

// TransactionUseCase defines the interface for transaction business logic
type TransactionUseCase interface {
	Create(ctx context.Context, userID int64, input CreateTransactionInput) (*Transaction, error)
	List(ctx context.Context, userID int64, skip, limit int) ([]*Transaction, error)
	Summary(ctx context.Context, userID int64) (*TransactionSummary, error)
	Delete(ctx context.Context, id int64) error
}
