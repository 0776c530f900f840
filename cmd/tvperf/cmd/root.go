package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tvperf",
	Short: "Trade performance analytics for TradingView exports",
	Long: `Tvperf turns a list of buy/sell transactions for one instrument into
performance reports.

It provides tools for:
  - Pairing raw fills into trades and reconstructing the equity curve
  - Computing the full performance summary (profit, drawdown, run-up,
    win/loss statistics, durations)
  - Splitting results by direction and by calendar month
  - Journaling analysis runs to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
