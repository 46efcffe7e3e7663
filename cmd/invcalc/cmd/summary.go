package cmd

import (
	"fmt"
	"strings"

	"github.com/Dan9191/investment-calculator/internal/config"
	"github.com/Dan9191/investment-calculator/internal/logging"
	"github.com/Dan9191/investment-calculator/internal/models"
	"github.com/Dan9191/investment-calculator/internal/prompt"
	"github.com/Dan9191/investment-calculator/internal/report"
	"github.com/Dan9191/investment-calculator/internal/service"
	"github.com/Dan9191/investment-calculator/internal/utils"
	"github.com/Dan9191/investment-calculator/internal/utils/email"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	raw         models.RawInput
	format      string
	emailTo     []string
	interactive bool
}

func newSummaryCmd(verbose *bool) *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute an investment and print its summary",
		Example: `  invcalc summary --principal 100000 --issuer "Acme Bank" --lender "Jane Doe" \
    --guarantor "Acme Holdings" --advisor "Rex Advisory" --tenor 1y \
    --effective-date 2025-01-01 --maturity-date 2026-01-01 --rate 10%
  invcalc summary -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts, *verbose)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.raw.Principal, "principal", "", "Principal amount")
	f.StringVar(&opts.raw.IssuerName, "issuer", "", "Issuer name")
	f.StringVar(&opts.raw.LenderName, "lender", "", "Lender name")
	f.StringVar(&opts.raw.GuarantorName, "guarantor", "", "Guarantor name")
	f.StringVar(&opts.raw.AdvisorName, "advisor", "", "Advisor name")
	f.StringVar(&opts.raw.Tenor, "tenor", "", "Tenor: 1y, 18m, 90d (bare numbers are years; empty derives from dates)")
	f.StringVar(&opts.raw.EffectiveDate, "effective-date", "", "Effective date (YYYY-MM-DD)")
	f.StringVar(&opts.raw.MaturityDate, "maturity-date", "", "Maturity date (YYYY-MM-DD)")
	f.StringVar(&opts.raw.EffectiveRate, "rate", "", "Annual effective rate: 0.10 or 10%")
	f.StringVar(&opts.raw.Currency, "currency", "", "Currency code (default from CURRENCY)")
	f.StringVarP(&opts.format, "format", "f", string(report.FormatText), "Output format: text, json or xml")
	f.StringSliceVar(&opts.emailTo, "email-to", nil, "Also mail the text summary to these addresses")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for fields not given as flags")
	return cmd
}

func runSummary(cmd *cobra.Command, opts *summaryOptions, verbose bool) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if len(opts.emailTo) > 0 && !cfg.EmailEnabled() {
		return fmt.Errorf("--email-to requires SMTP_HOST to be set")
	}

	if opts.interactive {
		p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err := capture(p, &opts.raw); err != nil {
			return err
		}
	}

	input, err := opts.raw.Parse()
	if err != nil {
		return err
	}
	inv, err := service.NewService(logger, cfg).CreateInvestment(input)
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), inv, format); err != nil {
		return err
	}

	if len(opts.emailTo) > 0 {
		sender := email.NewSender(cfg, logger)
		if err := sender.SendSummary(opts.emailTo, inv, report.FormatSummary(inv)); err != nil {
			return err
		}
	}
	return nil
}

// capture prompts for every listed field that is still empty, in capture order
func capture(p *prompt.Prompter, raw *models.RawInput) error {
	fields := []struct {
		label    string
		dst      *string
		validate func(string) error
	}{
		{"Principal amount", &raw.Principal, validateAmount},
		{"Issuer Name", &raw.IssuerName, nil},
		{"Lender Name", &raw.LenderName, nil},
		{"Guarantor Name", &raw.GuarantorName, nil},
		{"Advisor Name", &raw.AdvisorName, nil},
		{"Investment Tenor (e.g. 1y, 18m, 90d)", &raw.Tenor, func(s string) error {
			_, err := models.ParseTenor(s)
			return err
		}},
		{"Effective Date (YYYY-MM-DD)", &raw.EffectiveDate, func(s string) error {
			_, err := utils.ParseDate(s)
			return err
		}},
		{"Maturity Date (YYYY-MM-DD)", &raw.MaturityDate, func(s string) error {
			_, err := utils.ParseDate(s)
			return err
		}},
		{"Effective Rate (e.g. 0.10 or 10%)", &raw.EffectiveRate, func(s string) error {
			_, err := models.ParseRate(s)
			return err
		}},
	}

	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		answer, err := p.Ask(f.label, f.validate)
		if err != nil {
			return err
		}
		*f.dst = answer
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "")); err != nil {
		return fmt.Errorf("%q is not a valid number", s)
	}
	return nil
}
