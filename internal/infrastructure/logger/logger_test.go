package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextAddsTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := New(zap.New(core))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	log.WithContext(ctx).Info("hello")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["X-TRACE-ID"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := New(zap.New(core))

	log.WithContext(context.Background()).Info("hello")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "X-TRACE-ID")
}

func TestWithRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := New(zap.New(core))

	ctx := context.WithValue(context.Background(), RequestIDKey, "abc")
	log.WithRequest(ctx, "GET", "/health", "127.0.0.1", 200, "1ms", 42).Info("HTTP Request Processed")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/health", fields["path"])
	assert.Equal(t, int64(200), fields["statusCode"])
	assert.Equal(t, int64(42), fields["dataLength"])
	assert.Equal(t, "abc", fields["X-TRACE-ID"])
}

func TestWithErrorAndField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := New(zap.New(core))

	log.WithError(errors.New("boom")).WithField("user_id", 7).Warn("failed")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, int64(7), fields["user_id"])
}

func TestNewLoggerLevels(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogger("production", "warn")
		NewLogger("development", "")
		NewLogger("development", "not-a-level")
	})
}
