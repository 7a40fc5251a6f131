package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// APIVersion is reported by the banner endpoint
const APIVersion = "1.0.0"

// Pinger checks database connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the banner and liveness endpoints
type HealthHandler struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// BannerResponse is returned from the root path
type BannerResponse struct {
	Message string `json:"message" example:"Welcome to Prospera API"`
	Version string `json:"version" example:"1.0.0"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"ok"`
}

// Banner handles the root path
// @Summary API banner
// @Tags health
// @Produce json
// @Success 200 {object} BannerResponse
// @Router / [get]
func (h *HealthHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, BannerResponse{
		Message: "Welcome to Prospera API",
		Version: APIVersion,
		Docs:    "/swagger/index.html",
	})
}

// Health handles the liveness probe; it always answers 200 and reports the database separately
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "ok"
	if err := h.db.Ping(ctx); err != nil {
		h.logger.WithContext(ctx).Warn("Database ping failed", zap.Error(err))
		database = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: database})
}
