// Package usecase orchestrates CPF generation and validation for the CLI and other callers.
// Adds batch operations, logging and optional metrics on top of the service layer.
package usecase

import (
	"context"

	"github.com/allisson/cpfer/internal/cpf/domain"
)

// CPFUseCase defines the CPF operations exposed to callers.
type CPFUseCase interface {
	// Generate completes body with random digits where absent and returns the resulting CPF.
	Generate(ctx context.Context, body domain.Body) (*domain.CPF, error)

	// GenerateBatch generates count CPFs sharing the same body template.
	// Count must be between 1 and the configured maximum batch size.
	GenerateBatch(ctx context.Context, body domain.Body, count int) ([]*domain.CPF, error)

	// Validate checks a single candidate. Invalid input is reported in the result, never as an error.
	Validate(ctx context.Context, candidate string) *domain.ValidationResult

	// ValidateBatch checks candidates concurrently and returns the verdicts in input order.
	// Returns an error only when the batch is too large or ctx is cancelled.
	ValidateBatch(ctx context.Context, candidates []string) (*domain.ValidationReport, error)
}
