package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-dashboard/internal/config/configs"
)

var managedVars = []string{
	"ENV", "HOST", "PORT", "SHUTDOWN_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT",
	"DATASET_SOURCE", "DATASET_PATH", "DATASET_SHEET",
	"PSQL_ADDRESS", "PSQL_RUN_MIGRATIONS", "PSQL_MAX_CONNS",
}

// unsetAll clears every variable Load reads and restores it after the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range managedVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, uint16(8050), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8050", cfg.HTTP.Addr())
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, configs.SourceXLSX, cfg.Dataset.Source)
	assert.Equal(t, "relatorio_facebook_ads_2025-09-17.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Campanhas", cfg.Dataset.Sheet)
	assert.False(t, cfg.Psql.RunMigrations)
}

func TestLoadFromEnv(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("PSQL_ADDRESS", "postgres://ads:secret@db:5432/ads")
	t.Setenv("PSQL_MAX_CONNS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.SourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, int32(4), cfg.Psql.MaxConns)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port not a number", map[string]string{"PORT": "http"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"unknown source", map[string]string{"DATASET_SOURCE": "csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetAll(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	unsetAll(t)
	t.Setenv("HOST", "localhost")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8123\nHOST=10.0.0.1\nDATASET_SHEET=Outra\n"), 0o600))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8123), cfg.HTTP.Port)
	assert.Equal(t, "localhost", cfg.HTTP.Host, "process environment wins over the file")
	assert.Equal(t, "Outra", cfg.Dataset.Sheet)

	// godotenv.Load sets variables on the process; clear them for later tests.
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.Unsetenv("DATASET_SHEET"))
}

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel(), in)
	}
}
