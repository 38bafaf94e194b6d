package usecase

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/allisson/cpfer/internal/cpf/domain"
	"github.com/allisson/cpfer/internal/metrics"
)

const metricsDomain = "cpf"

// cpfUseCaseWithMetrics decorates CPFUseCase with metrics instrumentation.
type cpfUseCaseWithMetrics struct {
	next    CPFUseCase
	metrics metrics.BusinessMetrics
	clock   clockwork.Clock
}

// NewCPFUseCaseWithMetrics wraps a CPFUseCase with metrics recording. Durations are measured
// with clock.
func NewCPFUseCaseWithMetrics(
	useCase CPFUseCase,
	m metrics.BusinessMetrics,
	clock clockwork.Clock,
) CPFUseCase {
	return &cpfUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
		clock:   clock,
	}
}

// Generate records metrics for single generation.
func (c *cpfUseCaseWithMetrics) Generate(ctx context.Context, body domain.Body) (*domain.CPF, error) {
	start := c.clock.Now()
	cpf, err := c.next.Generate(ctx, body)

	c.record(ctx, "cpf_generate", start, errorStatus(err))

	return cpf, err
}

// GenerateBatch records metrics for batch generation.
func (c *cpfUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	body domain.Body,
	count int,
) ([]*domain.CPF, error) {
	start := c.clock.Now()
	cpfs, err := c.next.GenerateBatch(ctx, body, count)

	c.record(ctx, "cpf_generate_batch", start, errorStatus(err))

	return cpfs, err
}

// Validate records metrics for single validation, with status "valid" or "invalid".
func (c *cpfUseCaseWithMetrics) Validate(ctx context.Context, candidate string) *domain.ValidationResult {
	start := c.clock.Now()
	result := c.next.Validate(ctx, candidate)

	c.record(ctx, "cpf_validate", start, validityStatus(result))

	return result
}

// ValidateBatch records metrics for batch validation, plus a "cpf_validate_item" count per
// candidate with status "valid" or "invalid".
func (c *cpfUseCaseWithMetrics) ValidateBatch(
	ctx context.Context,
	candidates []string,
) (*domain.ValidationReport, error) {
	start := c.clock.Now()
	report, err := c.next.ValidateBatch(ctx, candidates)

	c.record(ctx, "cpf_validate_batch", start, errorStatus(err))
	if err == nil {
		for _, result := range report.Results {
			c.metrics.RecordOperation(ctx, metricsDomain, "cpf_validate_item", validityStatus(result))
		}
	}

	return report, err
}

func (c *cpfUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, c.clock.Since(start), status)
}

func errorStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func validityStatus(result *domain.ValidationResult) string {
	if result.Valid {
		return "valid"
	}
	return "invalid"
}
