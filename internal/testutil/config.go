// Package testutil provides configuration fixtures for tests that assemble the full container.
//
// Environment Variables:
//
//   - TEST_CPF_SEED: seed for the "seeded" digit source (default: 42)
//
// Usage:
//
//	cfg := testutil.NewConfig(func(cfg *config.Config) {
//		cfg.MetricsEnabled = true
//	})
package testutil

import (
	"os"
	"strconv"

	"github.com/allisson/cpfer/internal/config"
)

const defaultTestSeed = 42

// GetTestSeed returns the digit seed for tests, checking environment variable first.
// Invalid or non-positive values fall back to the default.
func GetTestSeed() int {
	if raw := os.Getenv("TEST_CPF_SEED"); raw != "" {
		if seed, err := strconv.Atoi(raw); err == nil && seed > 0 {
			return seed
		}
	}
	return defaultTestSeed
}

// NewConfig returns a valid configuration using the seeded digit source, with opts applied in order.
func NewConfig(opts ...func(cfg *config.Config)) *config.Config {
	cfg := &config.Config{
		LogLevel:         "error",
		LogFormat:        "text",
		DigitSource:      "seeded",
		DigitSeed:        GetTestSeed(),
		BatchWorkers:     2,
		MaxBatchSize:     1000,
		MetricsNamespace: "cpfer",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
