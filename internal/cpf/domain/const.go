// Package domain defines the CPF value types and the check-digit arithmetic.
// A CPF is eleven digits: nine body digits followed by two check digits derived from them.
package domain

// CPF length constraints
const (
	// BodyLength is the number of body digits a caller may provide.
	BodyLength = 9

	// Length is the number of digits in a complete CPF (body plus two check digits).
	Length = 11

	// FormattedLength is the length of the canonical DDD.DDD.DDD-DD form.
	FormattedLength = 14
)

// SourceType selects how absent body digits are drawn.
type SourceType string

const (
	// SourceCrypto draws uniform digits from crypto/rand.
	SourceCrypto SourceType = "crypto"

	// SourceSeeded draws uniform digits from a seeded PCG generator, for reproducible runs.
	SourceSeeded SourceType = "seeded"

	// SourceLegacy reproduces round(random()*9), where 0 and 9 are half as likely as 1..8.
	SourceLegacy SourceType = "legacy"
)

// Validate checks if the source type is valid.
func (s SourceType) Validate() error {
	switch s {
	case SourceCrypto, SourceSeeded, SourceLegacy:
		return nil
	default:
		return ErrInvalidSourceType
	}
}

// String returns the string representation of the source type.
func (s SourceType) String() string {
	return string(s)
}
