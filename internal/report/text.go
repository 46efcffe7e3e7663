package report

import (
	"fmt"
	"strings"

	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/Dan9191/investment-calculator/internal/utils"
	"github.com/shopspring/decimal"
)

const disclosureTemplate = "10%% Withholding tax in the sum of %s which shall be deducted from the Maturity Value"

var separator = strings.Repeat("-", 30)

// Disclosure returns the withholding-tax disclosure sentence for the record
func Disclosure(inv *models.Investment) string {
	return fmt.Sprintf(disclosureTemplate, inv.WithholdingTax)
}

// FormatRate renders a fractional rate as a percentage with 2 places
func FormatRate(rate decimal.Decimal) string {
	return rate.Shift(2).StringFixed(2) + "%"
}

// FormatSummary renders the human-readable investment summary
func FormatSummary(inv *models.Investment) string {
	var b strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s: %v\n", label, value)
	}

	b.WriteString("--- Investment Details Summary ---\n")
	line("Principal Amount", inv.Principal)
	line("Issuer Name", inv.IssuerName)
	line("Lender Name", inv.LenderName)
	line("Guarantor Name", inv.GuarantorName)
	line("Advisor Name", inv.AdvisorName)
	line("Investment Tenor", inv.Tenor)
	line("Effective Date", utils.FormatDate(inv.EffectiveDate))
	line("Maturity Date", utils.FormatDate(inv.MaturityDate))
	line("Effective Rate", FormatRate(inv.EffectiveRate))
	b.WriteString(separator + "\n")
	line("Calculated Maturity Value", inv.MaturityValue)
	line("Amount Due", inv.AmountDue)
	b.WriteString(Disclosure(inv) + "\n")
	line("Net Amount Payable", inv.NetProceeds)
	b.WriteString(separator + "\n")
	return b.String()
}
