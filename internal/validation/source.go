package validation

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/cpfer/internal/cpf/domain"
)

// DigitSource validates that a string names a supported digit source.
var DigitSource = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_digit_source_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if err := domain.SourceType(s).Validate(); err != nil {
		return validation.NewError("validation_digit_source", "must be one of crypto, seeded, legacy")
	}
	return nil
})
