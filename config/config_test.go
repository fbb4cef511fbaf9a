package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 5*time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "development", cfg.Log.Env)
	assert.Equal(t, SourceFile, cfg.Source.Kind)
	assert.Equal(t, "./data/events.json", cfg.Source.EventsPath)
	assert.Equal(t, "./data/workhours.json", cfg.Source.WorkhoursPath)
	assert.Equal(t, 30*time.Second, cfg.Source.LoadTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoad_DatabaseSource(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
source:
  kind: database
  load_timeout_seconds: 2
database:
  driver: sqlite
  dsn: "file::memory:?cache=shared"
server:
  cache_ttl_seconds: 30
`))
	require.NoError(t, err)

	assert.Equal(t, SourceDatabase, cfg.Source.Kind)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.CacheTTL)
	assert.Equal(t, 2*time.Second, cfg.Source.LoadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout, "load timeout does not change the shutdown timeout")
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "Database source without dsn", body: "source:\n  kind: database\n"},
		{name: "Unknown source", body: "source:\n  kind: redis\n"},
		{name: "Unknown driver", body: "database:\n  driver: mysql\n"},
		{name: "Malformed yaml", body: "server: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
