package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
	"github.com/ali-ardakani/TradingViewDataFeed/report"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly <file>",
	Short: "Print the monthly performance table",
	Long: `Group closed trades by the calendar month they closed in and print one
performance row per month. Open trades are excluded.

Examples:
  tvperf monthly export.csv
  tvperf monthly --separate export.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runMonthly,
}

var separateLongShort bool

func init() {
	rootCmd.AddCommand(monthlyCmd)

	monthlyCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to YAML/JSON config")
	monthlyCmd.Flags().StringVarP(&inputFormat, "format", "f", "tradingview", "input format: tradingview or csv")
	monthlyCmd.Flags().BoolVar(&separateLongShort, "separate", false, "add per-month long and short rows")
}

func runMonthly(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trades, err := loadTrades(args[0])
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if separateLongShort {
		opts.SeparateLongShort = true
	}

	report.PrintMonthly(cmd.OutOrStdout(), analytics.MonthlyTable(trades, opts))
	return nil
}
