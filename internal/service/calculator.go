package service

import (
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/shopspring/decimal"
)

// WithholdingRate is the levy applied to the interest portion of the maturity value
var WithholdingRate = decimal.RequireFromString("0.10")

const currencyPlaces = 2

var one = decimal.NewFromInt(1)

// Compute returns the simple-interest maturity value principal + principal*rate*tenorYears,
// rounded half-up to 2 places. rate is an annual fraction.
func Compute(principal, rate, tenorYears decimal.Decimal) (decimal.Decimal, error) {
	if err := checkMagnitudes(principal, rate, tenorYears); err != nil {
		return decimal.Zero, err
	}
	if !principal.IsPositive() {
		return decimal.Zero, models.NewInvalidInput("principal", "must be greater than zero")
	}
	if rate.IsNegative() {
		return decimal.Zero, models.NewInvalidInput("effective_rate", "must not be negative")
	}
	if rate.GreaterThanOrEqual(one) {
		return decimal.Zero, models.NewInvalidInput("effective_rate", "must be below 1 (use 0.10 or 10% for ten percent)")
	}
	if !tenorYears.IsPositive() {
		return decimal.Zero, models.NewInvalidInput("tenor", "must be greater than zero")
	}

	interest := principal.Mul(rate).Mul(tenorYears)
	return principal.Add(interest).Round(currencyPlaces), nil
}

func checkMagnitudes(principal, rate, tenorYears decimal.Decimal) error {
	if err := models.CheckMagnitude("principal", principal); err != nil {
		return err
	}
	if err := models.CheckMagnitude("effective_rate", rate); err != nil {
		return err
	}
	return models.CheckMagnitude("tenor", tenorYears)
}

// ComputeWithholdingTax returns round(0.10 * (maturityValue - principal), 2)
func ComputeWithholdingTax(principal, maturityValue decimal.Decimal) decimal.Decimal {
	return WithholdingRate.Mul(maturityValue.Sub(principal)).Round(currencyPlaces)
}
