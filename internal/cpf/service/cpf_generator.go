package service

import (
	"fmt"

	"github.com/allisson/cpfer/internal/cpf/domain"
)

// maxRedraws bounds how many times random slots are redrawn to escape a repeated-digit body.
const maxRedraws = 32

type cpfGenerator struct {
	source DigitSource
}

// NewCPFGenerator creates a CPF generator that fills absent body slots from source.
func NewCPFGenerator(source DigitSource) CPFGenerator {
	return &cpfGenerator{source: source}
}

// Generate completes body and appends the check digits. Present slots are kept as given. When at
// least one slot was drawn and the completed body repeats a single digit, the drawn slots are
// redrawn up to maxRedraws times; after that the last completed body is used as-is. The legacy
// source never redraws, so its output matches the old draw digit for digit.
func (g *cpfGenerator) Generate(body domain.Body) (domain.CPF, error) {
	var digits [domain.BodyLength]domain.Digit

	redraws := maxRedraws
	if _, ok := g.source.(*legacyDigitSource); ok || body.Missing() == 0 {
		redraws = 0
	}

	for attempt := 0; ; attempt++ {
		for i, slot := range body {
			if slot.Valid {
				digits[i] = slot.Value
				continue
			}

			d, err := g.source.Digit()
			if err != nil {
				return domain.CPF{}, fmt.Errorf("failed to draw digit for position %d: %w", i+1, err)
			}
			digits[i] = d
		}

		if attempt >= redraws || !domain.IsRepeatedBody(digits) {
			break
		}
	}

	return domain.NewCPF(digits), nil
}

// Validate checks candidate against the CPF rules.
func (g *cpfGenerator) Validate(candidate string) error {
	_, err := domain.Parse(candidate)
	return err
}
