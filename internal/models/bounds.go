package models

import "github.com/shopspring/decimal"

// Input decimals outside these bounds are rejected before any arithmetic.
// Comparing or rounding a value like 1e200000000 expands it to a huge big.Int.
const (
	maxExponent = 15
	minExponent = -20
	maxDigits   = 30
)

// CheckMagnitude rejects values whose exponent or digit count is out of range
func CheckMagnitude(field string, d decimal.Decimal) error {
	if exp := d.Exponent(); exp > maxExponent || exp < minExponent {
		return NewInvalidInput(field, "is out of range")
	}
	if d.NumDigits() > maxDigits {
		return NewInvalidInput(field, "has too many digits")
	}
	return nil
}
