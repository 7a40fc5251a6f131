package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

const testConfig = `
server:
  host: "127.0.0.1"
  port: "9090"
  requestTimeout: 5s
  shutdownTimeout: 2s
database:
  host: "localhost"
  port: 5432
  user: "postgres"
  password: "postgres"
  name: "prospera"
  ssl: "disable"
cors:
  frontendURL: "http://localhost:5173"
log:
  level: "info"
sentry:
  dsn: ""
  tracesSampleRate: 0
`

func writeConfig(t *testing.T, env string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config."+env+".yml"), []byte(testConfig), 0o600)
	require.NoError(t, err)
	return dir
}

func TestSetupViper(t *testing.T) {
	t.Setenv("PROSPERA_ENV", "ci")
	t.Setenv("PROSPERA_DATABASE_HOST", "db.internal")
	t.Setenv("PROSPERA_CORS_FRONTENDURL", "https://prospera.example")

	a := &application{ctx: context.Background()}
	require.NoError(t, a.setupViper(writeConfig(t, "ci")))

	assert.Equal(t, "db.internal", a.config.Database.Host)
	assert.Equal(t, 5432, a.config.Database.Port)
	assert.Equal(t, "127.0.0.1:9090", a.config.GetServerAddress())
	assert.Equal(t, 5*time.Second, a.config.Server.RequestTimeout)
	assert.Equal(t, "https://prospera.example", a.config.AllowedOrigins()[0])
}

func TestSetupViperMissingFile(t *testing.T) {
	t.Setenv("PROSPERA_ENV", "nowhere")

	a := &application{ctx: context.Background()}
	assert.Error(t, a.setupViper(t.TempDir()))
}

func TestDependencyGraph(t *testing.T) {
	t.Setenv("PROSPERA_ENV", "ci")

	a := &application{ctx: context.Background()}
	require.NoError(t, a.setupViper(writeConfig(t, "ci")))

	assert.NoError(t, fx.ValidateApp(a.options()))
}
