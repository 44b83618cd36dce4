package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/pgn2json/internal/config"
	apperrors "github.com/vytor/pgn2json/internal/errors"
	"github.com/vytor/pgn2json/internal/logger"
)

var configKeys = []string{"LOG_LEVEL", "LOG_COLORS", "VALIDATE_MOVES", "STRICT", "BATCH_WORKER_COUNT", "BATCH_QUEUE_SIZE"}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "invalid level", level: "INVALID"},
		{name: "empty level", level: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "LOG_LEVEL")
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
		})
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR", "debug"} {
		t.Run(level, func(t *testing.T) {
			cfg := config.Default()
			cfg.LogLevel = level
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_InvalidBatchSettings(t *testing.T) {
	tests := []struct {
		name          string
		workers       int
		queue         int
		expectedError string
	}{
		{name: "zero workers", workers: 0, queue: 8, expectedError: "BATCH_WORKER_COUNT"},
		{name: "negative workers", workers: -1, queue: 8, expectedError: "BATCH_WORKER_COUNT"},
		{name: "zero queue", workers: 2, queue: 0, expectedError: "BATCH_QUEUE_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.BatchWorkerCount = tt.workers
			cfg.BatchQueueSize = tt.queue

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{LogLevel: "LOUD"}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "BATCH_WORKER_COUNT")
	assert.Contains(t, errStr, "BATCH_QUEUE_SIZE")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_COLORS", "false")
	t.Setenv("VALIDATE_MOVES", "true")
	t.Setenv("STRICT", "1")
	t.Setenv("BATCH_WORKER_COUNT", "8")
	t.Setenv("BATCH_QUEUE_SIZE", "128")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.False(t, cfg.LogColors)
	assert.True(t, cfg.ValidateMoves)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 8, cfg.BatchWorkerCount)
	assert.Equal(t, 128, cfg.BatchQueueSize)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("BATCH_WORKER_COUNT", "many")
	t.Setenv("VALIDATE_MOVES", "perhaps")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, config.Default().BatchWorkerCount, cfg.BatchWorkerCount)
	assert.False(t, cfg.ValidateMoves)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("BATCH_WORKER_COUNT", "3")

	path := filepath.Join(t.TempDir(), "test.env")
	contents := "LOG_LEVEL=warn\nVALIDATE_MOVES=true\nBATCH_WORKER_COUNT=16\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg := config.Load(path)

	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.True(t, cfg.ValidateMoves)
	assert.Equal(t, 3, cfg.BatchWorkerCount, "environment wins over the .env file")
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "ERROR"

	assert.Equal(t, logger.ERROR, cfg.NewLogger().Level())
}
