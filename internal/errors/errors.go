// Package errors provides the error kinds shared by the CPF modules. Domain errors wrap one of
// these kinds so the CLI can decide how to report a failure without matching on messages.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the caller supplied a value that fails CPF rules.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates a dependency (such as the entropy source) could not serve the call.
	ErrUnavailable = errors.New("unavailable")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
