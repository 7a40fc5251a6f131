package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		entry := log.WithRequest(
			c.Request.Context(),
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).String(),
			size,
		)

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("HTTP Request Processed")
		case status >= 400:
			entry.Warn("HTTP Request Processed")
		default:
			entry.Info("HTTP Request Processed")
		}
	}
}
