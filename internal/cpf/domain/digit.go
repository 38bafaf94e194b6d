package domain

import (
	"strings"
)

// Digit is a single decimal digit in [0,9].
type Digit uint8

// NewDigit converts n to a Digit, rejecting values outside [0,9].
func NewDigit(n int) (Digit, error) {
	if n < 0 || n > 9 {
		return 0, ErrInvalidDigit
	}
	return Digit(n), nil
}

// ParseDigit converts a character '0'..'9' to a Digit.
func ParseDigit(r rune) (Digit, error) {
	if r < '0' || r > '9' {
		return 0, ErrInvalidDigit
	}
	return Digit(r - '0'), nil
}

// Byte returns the ASCII character for the digit.
func (d Digit) Byte() byte {
	return '0' + byte(d)
}

// OptionalDigit is a body slot that may be left for the generator to fill.
type OptionalDigit struct {
	Value Digit
	Valid bool
}

// Some returns a present slot holding d.
func Some(d Digit) OptionalDigit {
	return OptionalDigit{Value: d, Valid: true}
}

// None returns an absent slot.
func None() OptionalDigit {
	return OptionalDigit{}
}

// Body holds the nine positional body slots; index 0 is the most significant position.
type Body [BodyLength]OptionalDigit

// EmptyBody returns a body with every slot absent.
func EmptyBody() Body {
	return Body{}
}

// BodyFromDigits returns a body with every slot present.
func BodyFromDigits(digits [BodyLength]Digit) Body {
	var b Body
	for i, d := range digits {
		b[i] = Some(d)
	}
	return b
}

// ParseBody parses a body mask such as "111.444.47_" or "1?3??????".
// Digits fill a slot, '_' and '?' mark an absent slot, and '.', '-' and spaces are ignored.
// An empty mask means every slot is absent.
func ParseBody(mask string) (Body, error) {
	var b Body
	if strings.TrimSpace(mask) == "" {
		return b, nil
	}

	pos := 0
	for _, r := range mask {
		switch {
		case isPunctuation(r):
			continue
		case r == '_' || r == '?':
			if pos >= BodyLength {
				return Body{}, ErrInvalidBody
			}
			b[pos] = None()
			pos++
		case r >= '0' && r <= '9':
			if pos >= BodyLength {
				return Body{}, ErrInvalidBody
			}
			b[pos] = Some(Digit(r - '0'))
			pos++
		default:
			return Body{}, ErrInvalidBody
		}
	}

	if pos != BodyLength {
		return Body{}, ErrInvalidBody
	}
	return b, nil
}

// Mask renders the body in the form accepted by ParseBody, with '_' for absent slots.
func (b Body) Mask() string {
	out := make([]byte, BodyLength)
	for i, slot := range b {
		if slot.Valid {
			out[i] = slot.Value.Byte()
		} else {
			out[i] = '_'
		}
	}
	return string(out)
}

// Missing returns how many slots are absent.
func (b Body) Missing() int {
	n := 0
	for _, slot := range b {
		if !slot.Valid {
			n++
		}
	}
	return n
}

func isPunctuation(r rune) bool {
	return r == '.' || r == '-' || r == ' '
}
