package app

import (
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/http/handlers"
	"github.com/saradorri/prospera/internal/infrastructure/database"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

func (a *application) InitUserHandler(uc domain.UserUseCase, log *logger.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, log)
}

func (a *application) InitTransactionHandler(tc domain.TransactionUseCase, log *logger.Logger) *handlers.TransactionHandler {
	return handlers.NewTransactionHandler(tc, log)
}

func (a *application) InitGameHandler(gc domain.GameUseCase, log *logger.Logger) *handlers.GameHandler {
	return handlers.NewGameHandler(gc, log)
}

func (a *application) InitContentHandler(cc domain.ContentUseCase) *handlers.ContentHandler {
	return handlers.NewContentHandler(cc)
}

func (a *application) InitHealthHandler(db *database.Database, log *logger.Logger) *handlers.HealthHandler {
	return handlers.NewHealthHandler(db, log)
}
