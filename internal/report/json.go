package report

import (
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/Dan9191/investment-calculator/internal/utils"
)

type summaryView struct {
	Currency       string `json:"currency"`
	Principal      string `json:"principal"`
	IssuerName     string `json:"issuer_name"`
	LenderName     string `json:"lender_name"`
	GuarantorName  string `json:"guarantor_name"`
	AdvisorName    string `json:"advisor_name"`
	Tenor          string `json:"tenor"`
	TenorYears     string `json:"tenor_years"`
	EffectiveDate  string `json:"effective_date"`
	MaturityDate   string `json:"maturity_date"`
	EffectiveRate  string `json:"effective_rate"`
	MaturityValue  string `json:"maturity_value"`
	AmountDue      string `json:"amount_due"`
	WithholdingTax string `json:"withholding_tax"`
	NetProceeds    string `json:"net_proceeds"`
	Disclosure     string `json:"disclosure"`
}

func newSummaryView(inv *models.Investment) summaryView {
	return summaryView{
		Currency:       inv.Principal.Currency,
		Principal:      inv.Principal.Fixed(),
		IssuerName:     inv.IssuerName,
		LenderName:     inv.LenderName,
		GuarantorName:  inv.GuarantorName,
		AdvisorName:    inv.AdvisorName,
		Tenor:          inv.Tenor.String(),
		TenorYears:     inv.TenorYears.StringFixed(6),
		EffectiveDate:  utils.FormatDate(inv.EffectiveDate),
		MaturityDate:   utils.FormatDate(inv.MaturityDate),
		EffectiveRate:  inv.EffectiveRate.String(),
		MaturityValue:  inv.MaturityValue.Fixed(),
		AmountDue:      inv.AmountDue.Fixed(),
		WithholdingTax: inv.WithholdingTax.Fixed(),
		NetProceeds:    inv.NetProceeds.Fixed(),
		Disclosure:     Disclosure(inv),
	}
}
