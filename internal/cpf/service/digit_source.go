package service

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	mathrand "math/rand/v2"
	"sync"

	"github.com/allisson/cpfer/internal/cpf/domain"
	apperrors "github.com/allisson/cpfer/internal/errors"
)

type cryptoDigitSource struct{}

// NewCryptoDigitSource creates a source of cryptographically secure, uniformly distributed digits.
func NewCryptoDigitSource() DigitSource {
	return &cryptoDigitSource{}
}

// Digit draws a uniform digit in [0,9] from crypto/rand.
func (s *cryptoDigitSource) Digit() (domain.Digit, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random digit: %w: %w", apperrors.ErrUnavailable, err)
	}
	//nolint:gosec // n is bounded [0,9] by big.NewInt(10), safe conversion
	return domain.Digit(n.Int64()), nil
}

type seededDigitSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededDigitSource creates a source of uniform digits from a PCG generator. Two sources built
// with the same seed yield the same sequence. Safe for concurrent use.
func NewSeededDigitSource(seed uint64) DigitSource {
	return &seededDigitSource{rng: newPCG(seed)}
}

// Digit draws a uniform digit in [0,9].
func (s *seededDigitSource) Digit() (domain.Digit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Digit(s.rng.IntN(10)), nil
}

type legacyDigitSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewLegacyDigitSource creates a source reproducing round(random()*9): 0 and 9 come out half as
// often as 1..8. Use it only when parity with numbers produced by the old form matters.
func NewLegacyDigitSource(seed uint64) DigitSource {
	return &legacyDigitSource{rng: newPCG(seed)}
}

// Digit draws round(x*9) for x uniform in [0,1).
func (s *legacyDigitSource) Digit() (domain.Digit, error) {
	s.mu.Lock()
	x := s.rng.Float64()
	s.mu.Unlock()
	return domain.Digit(math.Round(x * 9)), nil
}

func newPCG(seed uint64) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
