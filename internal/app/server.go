package app

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/saradorri/prospera/internal/http"
	"github.com/saradorri/prospera/internal/http/handlers"
	"github.com/saradorri/prospera/internal/http/middleware"
	"github.com/saradorri/prospera/internal/infrastructure/database"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const apiVersion = handlers.APIVersion

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	userHandler *handlers.UserHandler,
	transactionHandler *handlers.TransactionHandler,
	gameHandler *handlers.GameHandler,
	contentHandler *handlers.ContentHandler,
	healthHandler *handlers.HealthHandler,
	errorHandler *middleware.ErrorHandler,
	tracker *Tracker,
	log *logger.Logger,
) *http.Server {
	opts := http.Options{
		Address:         a.config.GetServerAddress(),
		RequestTimeout:  a.config.Server.RequestTimeout,
		ShutdownTimeout: a.config.Server.ShutdownTimeout,
		AllowedOrigins:  a.config.AllowedOrigins(),
		SentryEnabled:   tracker.Enabled,
	}

	return http.NewServer(opts, http.Handlers{
		User:        userHandler,
		Transaction: transactionHandler,
		Game:        gameHandler,
		Content:     contentHandler,
		Health:      healthHandler,
	}, errorHandler, log)
}

// RegisterLifecycle starts the server with the fx app and tears everything down in reverse on stop
func (a *application) RegisterLifecycle(
	lc fx.Lifecycle,
	server *http.Server,
	db *database.Database,
	tracker *Tracker,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			server.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			if err != nil {
				log.Error("HTTP server shutdown failed", zap.Error(err))
			}
			if tracker.Enabled {
				sentry.Flush(2 * time.Second)
			}
			if cerr := db.Close(); cerr != nil {
				log.Error("Failed to close database", zap.Error(cerr))
			}
			_ = log.Sync()
			return err
		},
	})
}
