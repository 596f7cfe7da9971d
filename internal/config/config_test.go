package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/domainwatch")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.False(t, cfg.PruneTechnologies)
	assert.Equal(t, 15*time.Second, cfg.SSLLabsTimeout)
	assert.Equal(t, 3, cfg.SSLLabsPollAttempts)
	assert.Equal(t, 30*time.Second, cfg.TLSDialTimeout)
	assert.Equal(t, "whois", cfg.WhoisCommand)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "1h", cfg.Schedules["domain-status"])
	assert.Equal(t, "03:00", cfg.Schedules["ssl"])
	assert.Len(t, cfg.Schedules, 5)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load("")
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)

	t.Setenv("STORE", "memory")
	_, err = Load("")
	assert.NoError(t, err)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domainwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store: memory
timezone: Europe/Paris
batch_size: 20
schedule_ssl: "04:30"
cors_origins:
  - https://dash.example
`), 0o600))
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("PRUNE_TECHNOLOGIES", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 20, cfg.BatchSize)
	assert.True(t, cfg.PruneTechnologies)
	assert.Equal(t, "Europe/Paris", cfg.Location.String())
	assert.Equal(t, "04:30", cfg.Schedules["ssl"])
	assert.Equal(t, []string{"https://dash.example"}, cfg.CORSOrigins)
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv("STORE", "sqlite")
	_, err := Load("")
	assert.ErrorContains(t, err, "sqlite")

	t.Setenv("STORE", "memory")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a", "https://b"}, splitList([]string{"https://a, https://b"}))
	assert.Nil(t, splitList(nil))
}
