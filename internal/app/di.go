// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/allisson/cpfer/internal/config"
	"github.com/allisson/cpfer/internal/cpf/domain"
	cpfService "github.com/allisson/cpfer/internal/cpf/service"
	cpfUseCase "github.com/allisson/cpfer/internal/cpf/usecase"
	"github.com/allisson/cpfer/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	digitSource  cpfService.DigitSource
	cpfGenerator cpfService.CPFGenerator

	// Use Cases
	cpfUseCase cpfUseCase.CPFUseCase

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	digitSourceInit     sync.Once
	cpfGeneratorInit    sync.Once
	cpfUseCaseInit      sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logOutput:  os.Stderr,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// SetLogOutput redirects log output. It only has effect before the first Logger call.
func (c *Container) SetLogOutput(w io.Writer) {
	c.logOutput = w
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder backed by the metrics provider.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// DigitSource returns the random digit source selected by configuration.
func (c *Container) DigitSource() (cpfService.DigitSource, error) {
	var err error
	c.digitSourceInit.Do(func() {
		c.digitSource, err = cpfService.NewDigitSource(
			domain.SourceType(c.config.DigitSource),
			uint64(c.config.DigitSeed), //nolint:gosec // seed is validated non-negative
		)
		if err != nil {
			c.initErrors["digitSource"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["digitSource"]; exists {
		return nil, storedErr
	}
	return c.digitSource, nil
}

// CPFGenerator returns the CPF generator.
func (c *Container) CPFGenerator() (cpfService.CPFGenerator, error) {
	var err error
	c.cpfGeneratorInit.Do(func() {
		c.cpfGenerator, err = c.initCPFGenerator()
		if err != nil {
			c.initErrors["cpfGenerator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cpfGenerator"]; exists {
		return nil, storedErr
	}
	return c.cpfGenerator, nil
}

// CPFUseCase returns the CPF use case, wrapped with metrics when enabled.
func (c *Container) CPFUseCase() (cpfUseCase.CPFUseCase, error) {
	var err error
	c.cpfUseCaseInit.Do(func() {
		c.cpfUseCase, err = c.initCPFUseCase()
		if err != nil {
			c.initErrors["cpfUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cpfUseCase"]; exists {
		return nil, storedErr
	}
	return c.cpfUseCase, nil
}

// WriteMetrics dumps the collected metrics in Prometheus text format.
// It is a no-op when metrics are disabled.
func (c *Container) WriteMetrics(w io.Writer) error {
	if !c.config.MetricsEnabled {
		return nil
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return err
	}
	return provider.WriteText(w)
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level and format.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch c.config.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(c.logOutput, opts)
	default:
		handler = slog.NewTextHandler(c.logOutput, opts)
	}

	return slog.New(handler)
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initCPFGenerator creates the CPF generator over the configured digit source.
func (c *Container) initCPFGenerator() (cpfService.CPFGenerator, error) {
	source, err := c.DigitSource()
	if err != nil {
		return nil, fmt.Errorf("failed to get digit source for cpf generator: %w", err)
	}
	return cpfService.NewCPFGenerator(source), nil
}

// initCPFUseCase creates the CPF use case with all its dependencies.
func (c *Container) initCPFUseCase() (cpfUseCase.CPFUseCase, error) {
	logger := c.Logger()

	generator, err := c.CPFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to get cpf generator for cpf use case: %w", err)
	}

	baseUseCase := cpfUseCase.NewCPFUseCase(
		generator,
		logger,
		c.config.BatchWorkers,
		c.config.MaxBatchSize,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for cpf use case: %w", err)
		}
		return cpfUseCase.NewCPFUseCaseWithMetrics(baseUseCase, businessMetrics, clockwork.NewRealClock()), nil
	}

	return baseUseCase, nil
}
