package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/vytor/pgn2json/internal/errors"
	"github.com/vytor/pgn2json/internal/logger"
)

type Config struct {
	LogLevel         string
	LogColors        bool
	ValidateMoves    bool
	Strict           bool
	BatchWorkerCount int
	BatchQueueSize   int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:         "INFO",
		LogColors:        true,
		ValidateMoves:    false,
		Strict:           false,
		BatchWorkerCount: 4,
		BatchQueueSize:   64,
	}
}

// Load reads configuration from the given .env files (".env" when none are
// named) and environment variables, applying defaults when values are missing
// or unparsable. Variables already set in the environment win over .env files.
func Load(files ...string) Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load(files...)

	def := Default()
	return Config{
		LogLevel:         strings.ToUpper(envOr("LOG_LEVEL", def.LogLevel)),
		LogColors:        envBoolOr("LOG_COLORS", def.LogColors),
		ValidateMoves:    envBoolOr("VALIDATE_MOVES", def.ValidateMoves),
		Strict:           envBoolOr("STRICT", def.Strict),
		BatchWorkerCount: envIntOr("BATCH_WORKER_COUNT", def.BatchWorkerCount),
		BatchQueueSize:   envIntOr("BATCH_QUEUE_SIZE", def.BatchQueueSize),
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, apperrors.NewValidationError("LOG_LEVEL", fmt.Sprintf("%q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel)))
	}
	if c.BatchWorkerCount < 1 {
		errs = append(errs, apperrors.NewValidationError("BATCH_WORKER_COUNT", "must be at least 1"))
	}
	if c.BatchQueueSize < 1 {
		errs = append(errs, apperrors.NewValidationError("BATCH_QUEUE_SIZE", "must be at least 1"))
	}

	return errors.Join(errs...)
}

// NewLogger builds the logger described by the configuration.
func (c Config) NewLogger() *logger.Logger {
	return logger.New(
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithColors(c.LogColors),
	)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		logger.Warn("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		logger.Warn("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
