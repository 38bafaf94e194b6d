package service

import (
	"time"

	"github.com/allisson/cpfer/internal/cpf/domain"
)

// NewDigitSource creates a digit source for the given type. A zero seed is replaced by one
// derived from the current time; the crypto source ignores the seed.
func NewDigitSource(sourceType domain.SourceType, seed uint64) (DigitSource, error) {
	if seed == 0 {
		//nolint:gosec // wall clock is non-negative
		seed = uint64(time.Now().UnixNano())
	}

	switch sourceType {
	case domain.SourceCrypto:
		return NewCryptoDigitSource(), nil
	case domain.SourceSeeded:
		return NewSeededDigitSource(seed), nil
	case domain.SourceLegacy:
		return NewLegacyDigitSource(seed), nil
	default:
		return nil, domain.ErrInvalidSourceType
	}
}
