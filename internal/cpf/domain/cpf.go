package domain

import (
	"strings"
)

// CPF is a complete eleven-digit CPF number. The last two digits are always the check digits
// of the first nine when the value was built by NewCPF or accepted by Parse.
type CPF [Length]Digit

// NewCPF builds a CPF from nine body digits, appending both check digits.
func NewCPF(body [BodyLength]Digit) CPF {
	var c CPF
	copy(c[:BodyLength], body[:])
	c[BodyLength] = checkDigit(c[:BodyLength])
	c[BodyLength+1] = checkDigit(c[:BodyLength+1])
	return c
}

// Parse normalizes candidate and checks it against the CPF rules. Every occurrence of '.', '-'
// and space is stripped; any other non-digit character is rejected rather than coerced.
func Parse(candidate string) (CPF, error) {
	normalized, err := Normalize(candidate)
	if err != nil {
		return CPF{}, err
	}
	if len(normalized) != Length {
		return CPF{}, ErrInvalidLength
	}

	var c CPF
	for i := 0; i < Length; i++ {
		c[i] = Digit(normalized[i] - '0')
	}

	if c.IsRepeated() {
		return CPF{}, ErrRepeatedDigits
	}

	if checkDigit(c[:BodyLength]) != c[BodyLength] {
		return CPF{}, ErrCheckDigitMismatch
	}
	if checkDigit(c[:BodyLength+1]) != c[BodyLength+1] {
		return CPF{}, ErrCheckDigitMismatch
	}

	return c, nil
}

// IsValid reports whether candidate is a valid CPF.
func IsValid(candidate string) bool {
	_, err := Parse(candidate)
	return err == nil
}

// Normalize strips formatting punctuation from candidate and returns the bare digits.
// It does not check length or check digits.
func Normalize(candidate string) (string, error) {
	var sb strings.Builder
	sb.Grow(Length)
	for _, r := range candidate {
		switch {
		case isPunctuation(r):
			continue
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			return "", ErrInvalidCharacter
		}
	}
	return sb.String(), nil
}

// String returns the canonical DDD.DDD.DDD-DD form.
func (c CPF) String() string {
	out := make([]byte, 0, FormattedLength)
	for i, d := range c {
		switch i {
		case 3, 6:
			out = append(out, '.')
		case 9:
			out = append(out, '-')
		}
		out = append(out, d.Byte())
	}
	return string(out)
}

// Digits returns the eleven digits without punctuation.
func (c CPF) Digits() string {
	out := make([]byte, Length)
	for i, d := range c {
		out[i] = d.Byte()
	}
	return string(out)
}

// BodyDigits returns the first nine digits.
func (c CPF) BodyDigits() [BodyLength]Digit {
	var body [BodyLength]Digit
	copy(body[:], c[:BodyLength])
	return body
}

// CheckDigits returns the two trailing check digits.
func (c CPF) CheckDigits() (Digit, Digit) {
	return c[BodyLength], c[BodyLength+1]
}

// IsRepeated reports whether every digit is the same, as in 000.000.000-00.
func (c CPF) IsRepeated() bool {
	for _, d := range c[1:] {
		if d != c[0] {
			return false
		}
	}
	return true
}

// Equal reports whether both values hold the same digits.
func (c CPF) Equal(other CPF) bool {
	return c == other
}

// checkDigit computes the check digit of digits using weights len(digits)+1 down to 2.
// A remainder that yields 10 or 11 maps to 0.
func checkDigit(digits []Digit) Digit {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += int(d) * weight
		weight--
	}

	r := 11 - sum%11
	if r >= 10 {
		return 0
	}
	return Digit(r)
}

// IsRepeatedBody reports whether all nine body digits are equal. Such bodies always produce a
// repeated CPF, which Parse rejects.
func IsRepeatedBody(body [BodyLength]Digit) bool {
	for _, d := range body[1:] {
		if d != body[0] {
			return false
		}
	}
	return true
}
