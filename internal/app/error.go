package app

import (
	"github.com/saradorri/prospera/internal/http/middleware"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
