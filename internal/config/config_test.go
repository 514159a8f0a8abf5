package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"promptparser/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Zero(t, cfg.HTTP.RateLimit)
	require.Equal(t, 65536, cfg.Parser.MaxInputBytes)
	require.Equal(t, 3, cfg.Parser.MaxAttempts)
	require.Equal(t, 4, cfg.Parser.Concurrency)
	require.Equal(t, 20, cfg.Worker.MaxWorkers)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("PARSER_MAX_INPUT_BYTES", "128")
	t.Setenv("HTTP_RATE_LIMIT", "2.5")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, 128, cfg.Parser.MaxInputBytes)
	require.InDelta(t, 2.5, cfg.HTTP.RateLimit, 0)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: debug
http:
  addr: ":9090"
  rateLimit: 10
  rateBurst: 20
parser:
  maxInputBytes: 512
  maxAttempts: 5
worker:
  maxWorkers: 2
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.InDelta(t, 10, cfg.HTTP.RateLimit, 0)
	require.Equal(t, 20, cfg.HTTP.RateBurst)
	require.Equal(t, 512, cfg.Parser.MaxInputBytes)
	require.Equal(t, 5, cfg.Parser.MaxAttempts)
	require.Equal(t, 2, cfg.Worker.MaxWorkers)
	// unset keys keep their defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
