package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/prospera/internal/domain"

	"gorm.io/gorm"
)

// TransactionRepository implements domain.TransactionRepository
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *TransactionRepository) WithTransaction(tx *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: tx}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	transaction.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(transaction).Error
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &transaction, nil
}

// ListByUserID retrieves transactions for a user with pagination, newest first
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions)

	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// ListAllByUserID retrieves every transaction of a user
func (r *TransactionRepository) ListAllByUserID(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id ASC").
		Find(&transactions)

	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// Delete hard-deletes a transaction. It returns gorm.ErrRecordNotFound when no row matched.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
