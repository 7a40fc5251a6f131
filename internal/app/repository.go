package app

import (
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepository(db)
}

func (a *application) InitProgressRepository(db *gorm.DB) domain.ProgressRepository {
	return repository.NewProgressRepository(db)
}

func (a *application) InitTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return repository.NewTransactionRepository(db)
}

func (a *application) InitGameScoreRepository(db *gorm.DB) domain.GameScoreRepository {
	return repository.NewGameScoreRepository(db)
}

func (a *application) InitContentRepository(db *gorm.DB) domain.ContentRepository {
	return repository.NewContentRepository(db)
}

func (a *application) InitUnitOfWork(
	db *gorm.DB,
	users domain.UserRepository,
	progress domain.ProgressRepository,
	transactions domain.TransactionRepository,
	scores domain.GameScoreRepository,
) domain.UnitOfWork {
	return repository.NewUnitOfWork(db, users, progress, transactions, scores)
}
