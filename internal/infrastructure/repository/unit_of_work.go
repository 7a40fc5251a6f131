package repository

import (
	"context"

	"github.com/saradorri/prospera/internal/domain"
	"gorm.io/gorm"
)

// UnitOfWork implements domain.UnitOfWork on top of gorm transactions
type UnitOfWork struct {
	db           *gorm.DB
	users        domain.UserRepository
	progress     domain.ProgressRepository
	transactions domain.TransactionRepository
	scores       domain.GameScoreRepository
}

// NewUnitOfWork creates a unit of work whose repositories are rebound to each transaction
func NewUnitOfWork(
	db *gorm.DB,
	users domain.UserRepository,
	progress domain.ProgressRepository,
	transactions domain.TransactionRepository,
	scores domain.GameScoreRepository,
) domain.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		users:        users,
		progress:     progress,
		transactions: transactions,
		scores:       scores,
	}
}

// Do runs fn in a transaction; gorm rolls back on error or panic
func (u *UnitOfWork) Do(ctx context.Context, fn func(repos domain.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(domain.Repositories{
			Users:        u.users.WithTransaction(tx),
			Progress:     u.progress.WithTransaction(tx),
			Transactions: u.transactions.WithTransaction(tx),
			Scores:       u.scores.WithTransaction(tx),
		})
	})
}
