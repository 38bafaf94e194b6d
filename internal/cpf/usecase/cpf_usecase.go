package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/cpfer/internal/cpf/domain"
	"github.com/allisson/cpfer/internal/cpf/service"
	apperrors "github.com/allisson/cpfer/internal/errors"
)

type cpfUseCase struct {
	generator    service.CPFGenerator
	logger       *slog.Logger
	batchWorkers int
	maxBatchSize int
}

// NewCPFUseCase creates a CPF use case. batchWorkers bounds how many candidates ValidateBatch
// checks at once; maxBatchSize bounds both batch operations.
func NewCPFUseCase(
	generator service.CPFGenerator,
	logger *slog.Logger,
	batchWorkers int,
	maxBatchSize int,
) CPFUseCase {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &cpfUseCase{
		generator:    generator,
		logger:       logger,
		batchWorkers: batchWorkers,
		maxBatchSize: maxBatchSize,
	}
}

// Generate completes body and returns the generated CPF.
func (c *cpfUseCase) Generate(ctx context.Context, body domain.Body) (*domain.CPF, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cpf, err := c.generator.Generate(body)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cpf: %w", err)
	}

	c.logger.Debug("cpf generated",
		slog.String("body", body.Mask()),
		slog.String("cpf", cpf.String()),
	)

	return &cpf, nil
}

// GenerateBatch generates count CPFs from the same body template.
func (c *cpfUseCase) GenerateBatch(ctx context.Context, body domain.Body, count int) ([]*domain.CPF, error) {
	if err := c.checkBatchSize(count); err != nil {
		return nil, err
	}

	cpfs := make([]*domain.CPF, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cpf, err := c.generator.Generate(body)
		if err != nil {
			return nil, fmt.Errorf("failed to generate cpf %d of %d: %w", i+1, count, err)
		}
		cpfs = append(cpfs, &cpf)
	}

	c.logger.Info("cpf batch generated",
		slog.String("body", body.Mask()),
		slog.Int("count", count),
	)

	return cpfs, nil
}

// Validate checks a single candidate.
func (c *cpfUseCase) Validate(ctx context.Context, candidate string) *domain.ValidationResult {
	result := c.validate(candidate)

	c.logger.Debug("cpf validated",
		slog.Bool("valid", result.Valid),
		slog.Any("reason", result.Err),
	)

	return result
}

// ValidateBatch checks candidates with at most batchWorkers running at once.
func (c *cpfUseCase) ValidateBatch(
	ctx context.Context,
	candidates []string,
) (*domain.ValidationReport, error) {
	if len(candidates) > c.maxBatchSize {
		return nil, apperrors.Wrapf(
			domain.ErrInvalidBatchSize,
			"batch of %d exceeds the maximum of %d",
			len(candidates),
			c.maxBatchSize,
		)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report id: %w", err)
	}

	results := make([]*domain.ValidationResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchWorkers)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.validate(candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := domain.NewValidationReport(id, results)

	c.logger.Info("cpf batch validated",
		slog.String("report_id", report.ID.String()),
		slog.Int64("total_checked", report.TotalChecked),
		slog.Int64("valid", report.ValidCount),
		slog.Int64("invalid", report.InvalidCount),
	)

	return report, nil
}

func (c *cpfUseCase) validate(candidate string) *domain.ValidationResult {
	result := &domain.ValidationResult{Input: candidate}
	if normalized, err := domain.Normalize(candidate); err == nil {
		result.Normalized = normalized
	}

	result.Err = c.generator.Validate(candidate)
	result.Valid = result.Err == nil
	return result
}

func (c *cpfUseCase) checkBatchSize(count int) error {
	if count < 1 || count > c.maxBatchSize {
		return apperrors.Wrapf(
			domain.ErrInvalidBatchSize,
			"count must be between 1 and %d, got %d",
			c.maxBatchSize,
			count,
		)
	}
	return nil
}
