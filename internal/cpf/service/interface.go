// Package service provides CPF generation and validation on top of the domain arithmetic.
// Absent body digits are drawn from an injectable DigitSource.
package service

import (
	"github.com/allisson/cpfer/internal/cpf/domain"
)

// DigitSource supplies the digits used to fill absent body slots.
type DigitSource interface {
	Digit() (domain.Digit, error)
}

// CPFGenerator defines the interface for CPF generation and validation.
type CPFGenerator interface {
	// Generate completes body with digits from the source and appends both check digits.
	Generate(body domain.Body) (domain.CPF, error)

	// Validate returns nil when candidate is a valid CPF, or the reason it is not.
	Validate(candidate string) error
}
