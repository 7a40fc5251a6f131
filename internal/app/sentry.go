package app

import (
	"github.com/getsentry/sentry-go"
	"github.com/saradorri/prospera/internal/config"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

// Tracker reports whether error tracking was initialised
type Tracker struct {
	Enabled bool
}

// InitSentry configures the global Sentry client when a DSN is set
func (a *application) InitSentry(log *logger.Logger) (*Tracker, error) {
	if a.config.Sentry.DSN == "" {
		log.Info("Sentry disabled, no DSN configured")
		return &Tracker{}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              a.config.Sentry.DSN,
		Environment:      config.GetEnvironment(),
		Release:          "prospera@" + apiVersion,
		EnableTracing:    a.config.Sentry.TracesSampleRate > 0,
		TracesSampleRate: a.config.Sentry.TracesSampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Sentry initialized")
	return &Tracker{Enabled: true}, nil
}
