package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dashboard/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTPPort)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, time.Second, cfg.Session.LoginLatency)
	require.Equal(t, 2*time.Second, cfg.Upload.Latency)
	require.Equal(t, 30*time.Minute, cfg.Upload.BlobTTL)
	require.Empty(t, cfg.Kafka.Brokers)
	require.Empty(t, cfg.PostgresDSN)
}

func TestNew_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	err := os.WriteFile(path, []byte("HTTP_PORT=9000\nUPLOAD_LATENCY=150ms\nKAFKA_BROKERS=a:9092,b:9092\n"), 0o600)
	require.NoError(t, err)

	t.Cleanup(func() {
		os.Unsetenv("UPLOAD_LATENCY")
		os.Unsetenv("KAFKA_BROKERS")
	})

	t.Setenv("LOG_LEVEL", "debug")
	// godotenv does not override variables that are already set.
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := config.New(path)
	require.NoError(t, err)

	require.Equal(t, 7000, cfg.HTTPPort)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 150*time.Millisecond, cfg.Upload.Latency)
	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
}
