package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	_ "github.com/saradorri/prospera/docs"
	"github.com/saradorri/prospera/internal/http/handlers"
	"github.com/saradorri/prospera/internal/http/middleware"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Options configures the HTTP server
type Options struct {
	Address         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	SentryEnabled   bool
}

// Handlers groups the route handlers
type Handlers struct {
	User        *handlers.UserHandler
	Transaction *handlers.TransactionHandler
	Game        *handlers.GameHandler
	Content     *handlers.ContentHandler
	Health      *handlers.HealthHandler
}

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	handlers     Handlers
	errorHandler *middleware.ErrorHandler
	logger       *logger.Logger
	opts         Options
}

// NewServer creates a new HTTP server
func NewServer(opts Options, h Handlers, errorHandler *middleware.ErrorHandler, log *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.SentryEnabled {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(errorHandler.TimeoutMiddleware(opts.RequestTimeout))
	router.Use(errorHandler.ReportMiddleware())

	server := &Server{
		router:       router,
		handlers:     h,
		errorHandler: errorHandler,
		logger:       log,
		opts:         opts,
		httpServer: &http.Server{
			Addr:              opts.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handlers.Health.Banner)
	s.router.GET("/health", s.handlers.Health.Health)
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", s.handlers.User.Create)
			users.GET("", s.handlers.User.List)
			users.GET("/:id", s.handlers.User.Get)
			users.PUT("/:id", s.handlers.User.Update)
			users.GET("/:id/progress", s.handlers.User.GetProgress)
			users.POST("/:id/progress/add-coins", s.handlers.User.AddCoins)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("/:user_id", s.handlers.Transaction.Create)
			transactions.GET("/:user_id", s.handlers.Transaction.List)
			transactions.GET("/:user_id/summary", s.handlers.Transaction.Summary)
			transactions.DELETE("/:id", s.handlers.Transaction.Delete)
		}

		games := api.Group("/games")
		{
			games.POST("/:user_id/scores", s.handlers.Game.SubmitScore)
			games.GET("/:user_id/scores", s.handlers.Game.ListScores)
			games.GET("/:user_id/scores/:game_name", s.handlers.Game.HighScore)
			games.GET("/leaderboard/:game_name", s.handlers.Game.Leaderboard)
		}

		content := api.Group("/content")
		{
			content.GET("", s.handlers.Content.List)
			content.GET("/types/list", s.handlers.Content.Taxonomy)
			content.GET("/:id", s.handlers.Content.Get)
		}
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP in the background. Listen errors other than a clean shutdown are logged.
func (s *Server) Start() {
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.opts.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ShutdownTimeout)
		defer cancel()
	}
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
