package domain

import (
	"github.com/allisson/cpfer/internal/errors"
)

var (
	// ErrInvalidDigit indicates a value outside [0,9] was used as a digit.
	ErrInvalidDigit = errors.Wrap(errors.ErrInvalidInput, "digit must be between 0 and 9")

	// ErrInvalidBody indicates a body mask does not describe exactly nine slots.
	ErrInvalidBody = errors.Wrap(errors.ErrInvalidInput, "body must have exactly 9 slots")

	// ErrInvalidCharacter indicates a candidate contains a character that is neither a digit nor punctuation.
	ErrInvalidCharacter = errors.Wrap(errors.ErrInvalidInput, "cpf contains a non-digit character")

	// ErrInvalidLength indicates a candidate does not have exactly eleven digits.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "cpf must have exactly 11 digits")

	// ErrRepeatedDigits indicates a candidate made of one digit repeated eleven times.
	ErrRepeatedDigits = errors.Wrap(errors.ErrInvalidInput, "cpf must not repeat a single digit")

	// ErrCheckDigitMismatch indicates a candidate whose check digits do not match its body.
	ErrCheckDigitMismatch = errors.Wrap(errors.ErrInvalidInput, "cpf check digit mismatch")

	// ErrInvalidSourceType indicates an unknown digit source type.
	ErrInvalidSourceType = errors.Wrap(errors.ErrInvalidInput, "invalid digit source type")
)

// ErrInvalidBatchSize indicates a batch size outside the configured bounds.
var ErrInvalidBatchSize = errors.Wrap(errors.ErrInvalidInput, "invalid batch size")
