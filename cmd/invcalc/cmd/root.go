package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the invcalc command tree
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "invcalc",
		Short: "Simple-interest investment maturity calculator",
		Long: `invcalc computes the maturity value of a simple-interest investment and
prints a summary with the 10% withholding-tax disclosure.

Configuration is read from the environment:
  CURRENCY   default currency code (USD)
  DAY_COUNT  ACT/365F, ACT/360 or 30E/360 (ACT/365F)
  LOG_LEVEL  logrus level for stderr logs (info)
  SMTP_*     mail settings used by --email-to`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(newSummaryCmd(&verbose))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
