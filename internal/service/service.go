package service

import (
	"errors"

	"github.com/Dan9191/investment-calculator/internal/config"
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/Dan9191/investment-calculator/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service handles business logic
type Service struct {
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{log: log, config: cfg}
}

// CreateInvestment validates the terms and builds the computed investment record
func (s *Service) CreateInvestment(input models.InvestmentInput) (*models.Investment, error) {
	inv, err := s.build(input)
	if err != nil {
		var invalid *models.InvalidInputError
		if errors.As(err, &invalid) {
			s.log.WithFields(logrus.Fields{"field": invalid.Field, "reason": invalid.Reason}).Warn("Rejected investment input")
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"issuer":         inv.IssuerName,
		"principal":      inv.Principal.Fixed(),
		"tenor_years":    inv.TenorYears.StringFixed(6),
		"maturity_value": inv.MaturityValue.Fixed(),
		"currency":       inv.Principal.Currency,
	}).Info("Investment computed")
	return inv, nil
}

func (s *Service) build(input models.InvestmentInput) (*models.Investment, error) {
	if err := models.CheckMagnitude("principal", input.Principal); err != nil {
		return nil, err
	}
	if err := models.CheckMagnitude("effective_rate", input.EffectiveRate); err != nil {
		return nil, err
	}
	if input.Tenor != nil {
		if err := models.CheckMagnitude("tenor", input.Tenor.Value); err != nil {
			return nil, err
		}
	}
	if !input.Principal.IsPositive() {
		return nil, models.NewInvalidInput("principal", "must be greater than zero")
	}
	if input.EffectiveRate.IsNegative() {
		return nil, models.NewInvalidInput("effective_rate", "must not be negative")
	}
	if !input.MaturityDate.After(input.EffectiveDate) {
		return nil, models.NewInvalidInput("maturity_date", "must be after the effective date")
	}
	if input.Tenor != nil && !input.Tenor.Value.IsPositive() {
		return nil, models.NewInvalidInput("tenor", "must be greater than zero")
	}

	currency := input.Currency
	if currency == "" {
		currency = s.config.Currency
	}

	var tenor models.Tenor
	if input.Tenor != nil {
		tenor = *input.Tenor
	} else {
		tenor = s.deriveTenor(input)
	}
	years := tenor.InYears(utils.YearBasis(s.config.DayCount))

	maturityValue, err := Compute(input.Principal, input.EffectiveRate, years)
	if err != nil {
		return nil, err
	}
	tax := ComputeWithholdingTax(input.Principal, maturityValue)

	mv := models.NewMoney(maturityValue, currency)
	wht := models.NewMoney(tax, currency)
	return &models.Investment{
		Principal:      models.NewMoney(input.Principal, currency),
		IssuerName:     input.IssuerName,
		LenderName:     input.LenderName,
		GuarantorName:  input.GuarantorName,
		AdvisorName:    input.AdvisorName,
		Tenor:          tenor,
		TenorYears:     years,
		EffectiveDate:  input.EffectiveDate,
		MaturityDate:   input.MaturityDate,
		EffectiveRate:  input.EffectiveRate,
		MaturityValue:  mv,
		AmountDue:      mv,
		WithholdingTax: wht,
		NetProceeds:    mv.Sub(wht),
	}, nil
}

// deriveTenor counts the days between the dates under the configured convention.
// 30E/360 caps day 31 at 30, so dates one day apart can count as zero; those fall
// back to actual days.
func (s *Service) deriveTenor(input models.InvestmentInput) models.Tenor {
	days := utils.DayCount(input.EffectiveDate, input.MaturityDate, s.config.DayCount)
	if days <= 0 {
		days = utils.DayCount(input.EffectiveDate, input.MaturityDate, utils.ACT365F)
		s.log.Debugf("%s counts no days between %s and %s, using actual days",
			s.config.DayCount, utils.FormatDate(input.EffectiveDate), utils.FormatDate(input.MaturityDate))
	}
	tenor := models.Tenor{Value: decimal.NewFromInt(days), Unit: models.Days}
	s.log.Debugf("Tenor derived from dates: %s (%s)", tenor, s.config.DayCount)
	return tenor
}
