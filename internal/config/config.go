// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	appValidation "github.com/allisson/cpfer/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat selects the slog handler ("text" or "json").
	LogFormat string

	// DigitSource names the random digit source used by the generator ("crypto", "seeded", "legacy").
	DigitSource string
	// DigitSeed seeds the "seeded" and "legacy" sources. Zero means a time-derived seed.
	DigitSeed int
	// BatchWorkers bounds the number of concurrent validations in a batch.
	BatchWorkers int
	// MaxBatchSize is the upper bound for batch generation and validation.
	MaxBatchSize int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel:  env.GetString("LOG_LEVEL", "warn"),
		LogFormat: env.GetString("LOG_FORMAT", "text"),

		// Generator
		DigitSource:  env.GetString("CPF_DIGIT_SOURCE", "crypto"),
		DigitSeed:    env.GetInt("CPF_DIGIT_SEED", 0),
		BatchWorkers: env.GetInt("CPF_BATCH_WORKERS", 4),
		MaxBatchSize: env.GetInt("CPF_MAX_BATCH_SIZE", 10000),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cpfer"),
	}
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.LogFormat,
			validation.Required,
			validation.In("text", "json"),
		),
		validation.Field(&c.DigitSource,
			validation.Required,
			appValidation.DigitSource,
		),
		validation.Field(&c.DigitSeed, validation.Min(0)),
		validation.Field(&c.BatchWorkers, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, appValidation.NoWhitespace),
		),
	)
	return appValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
