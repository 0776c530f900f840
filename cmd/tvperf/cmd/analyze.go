package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
	"github.com/ali-ardakani/TradingViewDataFeed/config"
	"github.com/ali-ardakani/TradingViewDataFeed/journal"
	"github.com/ali-ardakani/TradingViewDataFeed/market"
	"github.com/ali-ardakani/TradingViewDataFeed/pkg/id"
	"github.com/ali-ardakani/TradingViewDataFeed/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Compute the performance summary for a transaction file",
	Long: `Read a transaction file, pair fills into trades and print the overall,
long-only and short-only performance summaries.

Input formats:
  tradingview - a TradingView "List of Trades" CSV export
  csv         - rows of time,side,quantity,price[,signal]

Examples:
  tvperf analyze trades.csv
  tvperf analyze --format tradingview export.csv
  tvperf analyze --config tvperf.yaml --org perf.org export.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	cfgPath     string
	inputFormat string
	orgPath     string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to YAML/JSON config")
	analyzeCmd.Flags().StringVarP(&inputFormat, "format", "f", "tradingview", "input format: tradingview or csv")
	analyzeCmd.Flags().StringVar(&orgPath, "org", "", "also write an Org-mode report to this path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trades, err := loadTrades(args[0])
	if err != nil {
		return err
	}

	opts := cfg.Options()
	rep := analytics.Analyze(trades, opts)
	report.PrintReport(cmd.OutOrStdout(), rep)

	runID := id.New()
	if err := record(cfg, runID, args[0], trades, rep); err != nil {
		return err
	}

	if orgPath != "" {
		org := &report.OrgReport{
			RunID:   runID,
			Created: time.Now(),
			Source:  args[0],
			Report:  rep,
			Monthly: analytics.MonthlyTable(trades, opts),
		}
		if err := org.WriteOrg(orgPath); err != nil {
			return fmt.Errorf("write org report: %w", err)
		}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}

func loadTrades(path string) ([]analytics.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var txs []market.Transaction
	switch inputFormat {
	case "tradingview":
		txs, err = journal.ReadTradingView(f)
	case "csv":
		txs, err = journal.ReadTransactions(f)
	default:
		return nil, fmt.Errorf("unknown format %q", inputFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	trades, err := analytics.Normalize(txs)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}
	return trades, nil
}

// record persists the run when the config asks for a journal.
func record(cfg *config.Config, runID, source string, trades []analytics.Trade, rep analytics.Report) error {
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	if err := j.RecordRun(journal.NewRunRecord(runID, source, time.Now(), rep.All)); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	for _, t := range trades {
		if err := j.RecordTrade(journal.NewTradeRecord(runID, t)); err != nil {
			return fmt.Errorf("record trade: %w", err)
		}
	}
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "", "none":
		return nil, nil
	case "csv":
		return journal.NewCSV(cfg.Journal.RunsFile, cfg.Journal.TradesFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	}
	return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
}
