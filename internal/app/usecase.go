package app

import (
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"github.com/saradorri/prospera/internal/usecase/content"
	"github.com/saradorri/prospera/internal/usecase/game"
	"github.com/saradorri/prospera/internal/usecase/transaction"
	"github.com/saradorri/prospera/internal/usecase/user"
)

func (a *application) InitUserUseCase(
	ur domain.UserRepository,
	pr domain.ProgressRepository,
	uow domain.UnitOfWork,
	log *logger.Logger,
) domain.UserUseCase {
	return user.NewUserUseCase(ur, pr, uow, log)
}

func (a *application) InitTransactionUseCase(
	tr domain.TransactionRepository,
	ur domain.UserRepository,
	log *logger.Logger,
) domain.TransactionUseCase {
	return transaction.NewTransactionUseCase(tr, ur, log)
}

func (a *application) InitGameUseCase(
	sr domain.GameScoreRepository,
	uow domain.UnitOfWork,
	log *logger.Logger,
) domain.GameUseCase {
	return game.NewGameUseCase(sr, uow, log)
}

func (a *application) InitContentUseCase(cr domain.ContentRepository, log *logger.Logger) domain.ContentUseCase {
	return content.NewContentUseCase(cr, log)
}
