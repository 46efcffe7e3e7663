package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TenorUnit is the unit a tenor is quoted in
type TenorUnit int

const (
	Years TenorUnit = iota
	Months
	Days
)

func (u TenorUnit) String() string {
	return [...]string{"years", "months", "days"}[u]
}

// Tenor is the duration of an investment
type Tenor struct {
	Value decimal.Decimal
	Unit  TenorUnit
}

var monthsPerYear = decimal.NewFromInt(12)

// InYears converts the tenor to years. daysPerYear is the day-count basis used for day tenors.
func (t Tenor) InYears(daysPerYear int64) decimal.Decimal {
	switch t.Unit {
	case Months:
		return t.Value.Div(monthsPerYear)
	case Days:
		return t.Value.Div(decimal.NewFromInt(daysPerYear))
	default:
		return t.Value
	}
}

func (t Tenor) String() string {
	unit := t.Unit.String()
	if t.Value.Equal(decimal.NewFromInt(1)) {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%s %s", t.Value.String(), unit)
}

var tenorSuffixes = []struct {
	suffix string
	unit   TenorUnit
}{
	// longest first: "day" must win over "y"
	{"years", Years}, {"year", Years}, {"months", Months}, {"month", Months},
	{"days", Days}, {"day", Days}, {"yrs", Years}, {"yr", Years},
	{"mos", Months}, {"mo", Months}, {"y", Years}, {"m", Months}, {"d", Days},
}

// ParseTenor parses "1", "1y", "1.5 years", "18m" or "90d". A bare number is read as years.
func ParseTenor(s string) (Tenor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Tenor{}, NewInvalidInput("tenor", "is empty")
	}

	unit := Years
	for _, ts := range tenorSuffixes {
		if strings.HasSuffix(s, ts.suffix) {
			unit = ts.unit
			s = strings.TrimSpace(strings.TrimSuffix(s, ts.suffix))
			break
		}
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return Tenor{}, NewInvalidInput("tenor", fmt.Sprintf("%q is not a valid duration", s))
	}
	if err := CheckMagnitude("tenor", value); err != nil {
		return Tenor{}, err
	}
	if value.IsNegative() {
		return Tenor{}, NewInvalidInput("tenor", "must not be negative")
	}
	return Tenor{Value: value, Unit: unit}, nil
}
