// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/cpfer/internal/cpf/domain"
	apperrors "github.com/allisson/cpfer/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// CPF validates that a string is a valid CPF, formatted or bare.
var CPF = validation.NewStringRuleWithError(
	domain.IsValid,
	validation.NewError("validation_cpf", "must be a valid cpf"),
)

// BodyMask validates a partial body mask such as "123.456.___".
var BodyMask = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := domain.ParseBody(s)
		return err == nil
	},
	validation.NewError("validation_body_mask", "must be a body mask with exactly 9 digit or '_' slots"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
