package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/investment-calculator/internal/utils"
	"github.com/shopspring/decimal"
)

// InvestmentInput holds the commercial terms of an investment before computation
type InvestmentInput struct {
	Principal     decimal.Decimal
	Currency      string
	IssuerName    string
	LenderName    string
	GuarantorName string
	AdvisorName   string
	Tenor         *Tenor // nil means derive from the dates
	EffectiveDate time.Time
	MaturityDate  time.Time
	EffectiveRate decimal.Decimal // fraction, 0.10 for 10%
}

// Investment is the computed investment record. Values are built once by the
// calculator service and not modified afterwards.
type Investment struct {
	Principal      Money
	IssuerName     string
	LenderName     string
	GuarantorName  string
	AdvisorName    string
	Tenor          Tenor
	TenorYears     decimal.Decimal
	EffectiveDate  time.Time
	MaturityDate   time.Time
	EffectiveRate  decimal.Decimal
	MaturityValue  Money
	AmountDue      Money
	WithholdingTax Money
	NetProceeds    Money
}

// RawInput carries the listed fields as captured text, in capture order
type RawInput struct {
	Principal     string `json:"principal"`
	IssuerName    string `json:"issuer_name"`
	LenderName    string `json:"lender_name"`
	GuarantorName string `json:"guarantor_name"`
	AdvisorName   string `json:"advisor_name"`
	Tenor         string `json:"tenor"`
	EffectiveDate string `json:"effective_date"`
	MaturityDate  string `json:"maturity_date"`
	EffectiveRate string `json:"effective_rate"`
	Currency      string `json:"currency,omitempty"`
}

// Parse converts captured text into typed input. Parse failures are *InvalidInputError.
// An empty tenor is left nil so the service derives it from the dates.
func (r RawInput) Parse() (InvestmentInput, error) {
	in := InvestmentInput{
		Currency:      strings.ToUpper(strings.TrimSpace(r.Currency)),
		IssuerName:    strings.TrimSpace(r.IssuerName),
		LenderName:    strings.TrimSpace(r.LenderName),
		GuarantorName: strings.TrimSpace(r.GuarantorName),
		AdvisorName:   strings.TrimSpace(r.AdvisorName),
	}

	principal, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(r.Principal), ",", ""))
	if err != nil {
		return InvestmentInput{}, NewInvalidInput("principal", fmt.Sprintf("%q is not a valid amount", r.Principal))
	}
	if err := CheckMagnitude("principal", principal); err != nil {
		return InvestmentInput{}, err
	}
	in.Principal = principal

	if strings.TrimSpace(r.Tenor) != "" {
		tenor, err := ParseTenor(r.Tenor)
		if err != nil {
			return InvestmentInput{}, err
		}
		in.Tenor = &tenor
	}

	if in.EffectiveDate, err = utils.ParseDate(r.EffectiveDate); err != nil {
		return InvestmentInput{}, NewInvalidInput("effective_date", err.Error())
	}
	if in.MaturityDate, err = utils.ParseDate(r.MaturityDate); err != nil {
		return InvestmentInput{}, NewInvalidInput("maturity_date", err.Error())
	}

	if in.EffectiveRate, err = ParseRate(r.EffectiveRate); err != nil {
		return InvestmentInput{}, err
	}
	return in, nil
}

var hundred = decimal.NewFromInt(100)

// ParseRate reads "0.10" as a fraction and "10%" as a percentage of 100
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	if pct {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewInvalidInput("effective_rate", fmt.Sprintf("%q is not a valid rate", s))
	}
	if err := CheckMagnitude("effective_rate", rate); err != nil {
		return decimal.Zero, err
	}
	if pct {
		rate = rate.Div(hundred)
	}
	return rate, nil
}
