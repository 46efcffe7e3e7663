package report

import (
	"fmt"

	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/Dan9191/investment-calculator/internal/utils"
	"github.com/beevik/etree"
)

// XML builds an <investment> document with one child element per summary field
func XML(inv *models.Investment) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("investment")
	root.CreateAttr("currency", inv.Principal.Currency)

	add := func(tag, text string) {
		root.CreateElement(tag).SetText(text)
	}
	add("principal", inv.Principal.Fixed())
	add("issuer_name", inv.IssuerName)
	add("lender_name", inv.LenderName)
	add("guarantor_name", inv.GuarantorName)
	add("advisor_name", inv.AdvisorName)

	tenor := root.CreateElement("tenor")
	tenor.CreateAttr("unit", inv.Tenor.Unit.String())
	tenor.CreateAttr("years", inv.TenorYears.StringFixed(6))
	tenor.SetText(inv.Tenor.Value.String())

	add("effective_date", utils.FormatDate(inv.EffectiveDate))
	add("maturity_date", utils.FormatDate(inv.MaturityDate))
	add("effective_rate", inv.EffectiveRate.String())
	add("maturity_value", inv.MaturityValue.Fixed())
	add("amount_due", inv.AmountDue.Fixed())
	add("withholding_tax", inv.WithholdingTax.Fixed())
	add("net_proceeds", inv.NetProceeds.Fixed())
	add("disclosure", Disclosure(inv))

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to encode XML summary: %w", err)
	}
	return out, nil
}
