// Package mocks provides mock implementations of the CPF use case for testing commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/cpfer/internal/cpf/domain"
)

// MockCPFUseCase is a mock implementation of CPFUseCase for testing.
type MockCPFUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of CPFUseCase.
func (m *MockCPFUseCase) Generate(ctx context.Context, body domain.Body) (*domain.CPF, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CPF), args.Error(1)
}

// GenerateBatch mocks the GenerateBatch method of CPFUseCase.
func (m *MockCPFUseCase) GenerateBatch(
	ctx context.Context,
	body domain.Body,
	count int,
) ([]*domain.CPF, error) {
	args := m.Called(ctx, body, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CPF), args.Error(1)
}

// Validate mocks the Validate method of CPFUseCase.
func (m *MockCPFUseCase) Validate(ctx context.Context, candidate string) *domain.ValidationResult {
	args := m.Called(ctx, candidate)
	return args.Get(0).(*domain.ValidationResult)
}

// ValidateBatch mocks the ValidateBatch method of CPFUseCase.
func (m *MockCPFUseCase) ValidateBatch(
	ctx context.Context,
	candidates []string,
) (*domain.ValidationReport, error) {
	args := m.Called(ctx, candidates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationReport), args.Error(1)
}
