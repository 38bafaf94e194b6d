package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cpfer/internal/cpf/domain"
	cpfMocks "github.com/allisson/cpfer/internal/cpf/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestNewCPFUseCaseWithMetrics(t *testing.T) {
	decorator := NewCPFUseCaseWithMetrics(
		&cpfMocks.MockCPFUseCase{},
		&mockBusinessMetrics{},
		clockwork.NewFakeClock(),
	)

	assert.NotNil(t, decorator)
	assert.IsType(t, &cpfUseCaseWithMetrics{}, decorator)
}

func TestCPFUseCaseWithMetrics_Generate(t *testing.T) {
	ctx := context.Background()
	body := domain.EmptyBody()
	cpf := domain.NewCPF([domain.BodyLength]domain.Digit{5, 2, 9, 9, 8, 2, 2, 4, 7})

	tests := []struct {
		name           string
		returnCPF      *domain.CPF
		returnErr      error
		expectedStatus string
	}{
		{name: "Success_RecordsSuccessMetrics", returnCPF: &cpf, expectedStatus: "success"},
		{name: "Error_RecordsErrorMetrics", returnErr: errors.New("entropy unavailable"), expectedStatus: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			mockUseCase := &cpfMocks.MockCPFUseCase{}
			mockMetrics := &mockBusinessMetrics{}

			var ret any
			if tt.returnCPF != nil {
				ret = tt.returnCPF
			}
			mockUseCase.On("Generate", ctx, body).
				Run(func(args mock.Arguments) { clock.Advance(250 * time.Millisecond) }).
				Return(ret, tt.returnErr).
				Once()
			mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_generate", tt.expectedStatus).Once()
			mockMetrics.On("RecordDuration", ctx, "cpf", "cpf_generate", 250*time.Millisecond, tt.expectedStatus).
				Once()

			decorator := NewCPFUseCaseWithMetrics(mockUseCase, mockMetrics, clock)
			got, err := decorator.Generate(ctx, body)

			if tt.returnErr != nil {
				assert.Equal(t, tt.returnErr, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.returnCPF, got)
			}
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestCPFUseCaseWithMetrics_GenerateBatch(t *testing.T) {
	ctx := context.Background()
	body := domain.EmptyBody()
	clock := clockwork.NewFakeClock()
	mockUseCase := &cpfMocks.MockCPFUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("GenerateBatch", ctx, body, 0).Return(nil, domain.ErrInvalidBatchSize).Once()
	mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_generate_batch", "error").Once()
	mockMetrics.On("RecordDuration", ctx, "cpf", "cpf_generate_batch", time.Duration(0), "error").Once()

	decorator := NewCPFUseCaseWithMetrics(mockUseCase, mockMetrics, clock)
	cpfs, err := decorator.GenerateBatch(ctx, body, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidBatchSize)
	assert.Nil(t, cpfs)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestCPFUseCaseWithMetrics_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		candidate      string
		result         *domain.ValidationResult
		expectedStatus string
	}{
		{
			name:           "Valid_RecordsValidStatus",
			candidate:      "529.982.247-25",
			result:         &domain.ValidationResult{Input: "529.982.247-25", Valid: true},
			expectedStatus: "valid",
		},
		{
			name:           "Invalid_RecordsInvalidStatus",
			candidate:      "123",
			result:         &domain.ValidationResult{Input: "123", Err: domain.ErrInvalidLength},
			expectedStatus: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			mockUseCase := &cpfMocks.MockCPFUseCase{}
			mockMetrics := &mockBusinessMetrics{}

			mockUseCase.On("Validate", ctx, tt.candidate).
				Run(func(args mock.Arguments) { clock.Advance(time.Millisecond) }).
				Return(tt.result).
				Once()
			mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_validate", tt.expectedStatus).Once()
			mockMetrics.On("RecordDuration", ctx, "cpf", "cpf_validate", time.Millisecond, tt.expectedStatus).
				Once()

			decorator := NewCPFUseCaseWithMetrics(mockUseCase, mockMetrics, clock)
			result := decorator.Validate(ctx, tt.candidate)

			assert.Same(t, tt.result, result)
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestCPFUseCaseWithMetrics_ValidateBatch(t *testing.T) {
	ctx := context.Background()
	candidates := []string{"529.982.247-25", "111.111.111-11", "123"}
	report := domain.NewValidationReport(
		uuid.Must(uuid.NewV7()),
		[]*domain.ValidationResult{
			{Input: "529.982.247-25", Valid: true},
			{Input: "111.111.111-11", Err: domain.ErrRepeatedDigits},
			{Input: "123", Err: domain.ErrInvalidLength},
		},
	)
	clock := clockwork.NewFakeClock()
	mockUseCase := &cpfMocks.MockCPFUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("ValidateBatch", ctx, candidates).
		Run(func(args mock.Arguments) { clock.Advance(2 * time.Second) }).
		Return(report, nil).
		Once()
	mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_validate_batch", "success").Once()
	mockMetrics.On("RecordDuration", ctx, "cpf", "cpf_validate_batch", 2*time.Second, "success").Once()
	mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_validate_item", "valid").Once()
	mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_validate_item", "invalid").Twice()

	decorator := NewCPFUseCaseWithMetrics(mockUseCase, mockMetrics, clock)
	got, err := decorator.ValidateBatch(ctx, candidates)

	require.NoError(t, err)
	assert.Same(t, report, got)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestCPFUseCaseWithMetrics_ValidateBatch_Error(t *testing.T) {
	ctx := context.Background()
	candidates := []string{"529.982.247-25"}
	clock := clockwork.NewFakeClock()
	mockUseCase := &cpfMocks.MockCPFUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("ValidateBatch", ctx, candidates).
		Return(nil, context.Canceled).
		Once()
	mockMetrics.On("RecordOperation", ctx, "cpf", "cpf_validate_batch", "error").Once()
	mockMetrics.On("RecordDuration", ctx, "cpf", "cpf_validate_batch", time.Duration(0), "error").Once()

	decorator := NewCPFUseCaseWithMetrics(mockUseCase, mockMetrics, clock)
	got, err := decorator.ValidateBatch(ctx, candidates)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}
