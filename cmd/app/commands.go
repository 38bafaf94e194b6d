package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cpfer/internal/app"
	"github.com/allisson/cpfer/internal/config"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getCPFCommands()...)
	return cmds
}

// metricsFlag enables metrics for a single run and dumps them to stderr afterwards.
func metricsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "metrics",
		Value: false,
		Usage: "Print Prometheus metrics to stderr after the run",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// newContainer loads and validates configuration, applying per-run flag overrides.
func newContainer(cmd *cli.Command) (*app.Container, error) {
	cfg := config.Load()
	if cmd.Bool("metrics") {
		cfg.MetricsEnabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), nil
}

// finishRun dumps metrics when enabled and releases container resources.
func finishRun(ctx context.Context, container *app.Container, metricsWriter io.Writer) {
	logger := container.Logger()
	if err := container.WriteMetrics(metricsWriter); err != nil {
		logger.Error("failed to write metrics", slog.Any("error", err))
	}
	if err := container.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
