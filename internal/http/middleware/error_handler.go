package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// ErrorHandlerMiddleware recovers panics into 500 responses
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

// handlePanic handles panic recovery
func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	requestID := h.getRequestID(c)

	h.logger.WithContext(c.Request.Context()).Error("Panic recovered",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.String("stack", string(debug.Stack())),
	)

	err := domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered))
	err.RequestID = requestID
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method

	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.NewErrorResponse(err))
}

// ReportMiddleware logs 5xx errors attached by handlers and sends them to Sentry when enabled
func (h *ErrorHandler) ReportMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			appErr, ok := domain.IsAppError(ginErr.Err)
			if !ok || appErr.HTTPStatus < http.StatusInternalServerError {
				continue
			}

			h.logger.WithContext(c.Request.Context()).Error("Request failed",
				zap.String("code", appErr.Code),
				zap.String("path", c.Request.URL.Path),
				zap.Error(appErr),
			)

			if hub := sentrygin.GetHubFromContext(c); hub != nil {
				hub.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("error_code", appErr.Code)
					scope.SetTag("request_id", appErr.RequestID)
					hub.CaptureException(appErr)
				})
			}
		}
	}
}

// getRequestID gets or generates a request ID
func (h *ErrorHandler) getRequestID(c *gin.Context) string {
	if requestID := c.GetString("request_id"); requestID != "" {
		return requestID
	}
	return uuid.NewString()
}

// RequestIDMiddleware adds a unique request ID to each request and its context
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID))
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. Handlers that hit the deadline
// without writing a response are answered with 408.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		h.logger.WithContext(ctx).Warn("Request timeout",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)

		err := domain.NewAppError(domain.ErrCodeTimeout, "Request timeout", http.StatusRequestTimeout, ctx.Err())
		err.RequestID = h.getRequestID(c)
		err.Path = c.Request.URL.Path
		err.Method = c.Request.Method

		c.AbortWithStatusJSON(http.StatusRequestTimeout, domain.NewErrorResponse(err))
	}
}
