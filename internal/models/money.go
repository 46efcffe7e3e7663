package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount tagged with its currency code
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney builds a Money value
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Sub subtracts other, keeping the receiver's currency
func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

// Fixed returns the amount rounded half-up to 2 places, without grouping
func (m Money) Fixed() string {
	return m.Amount.StringFixed(2)
}

// String formats as "USD 1,234.56"
func (m Money) String() string {
	return m.Currency + " " + GroupThousands(m.Fixed())
}

// GroupThousands inserts comma separators into the integer part of a plain decimal string.
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
