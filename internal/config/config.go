package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultCORSOrigins are always allowed in addition to the configured front-end URL
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"requestTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	LogLevel        string        `mapstructure:"logLevel"`
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	FrontendURL string `mapstructure:"frontendURL"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SentryConfig holds error tracking configuration, disabled when DSN is empty
type SentryConfig struct {
	DSN              string  `mapstructure:"dsn"`
	TracesSampleRate float64 `mapstructure:"tracesSampleRate"`
}

// GetMigrateURL returns the database URL in the form golang-migrate expects
func (c *Config) GetMigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	port := c.Server.Port
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("%s:%s", c.Server.Host, port)
}

// AllowedOrigins returns the configured front-end origin followed by the local development origins
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(DefaultCORSOrigins)+1)
	if c.CORS.FrontendURL != "" {
		origins = append(origins, c.CORS.FrontendURL)
	}
	for _, o := range DefaultCORSOrigins {
		if o != c.CORS.FrontendURL {
			origins = append(origins, o)
		}
	}
	return origins
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("PROSPERA_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
