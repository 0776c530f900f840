// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs   *csv.Writer
	trades *csv.Writer
	rf, tf *os.File
}

func NewCSV(runsPath, tradesPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	tw := csv.NewWriter(tf)

	if err := rw.Write([]string{"run_id", "created", "source", "net_profit", "net_profit_pct", "profit_factor", "max_draw_down", "closed_trades", "open_trades"}); err != nil {
		return nil, err
	}
	if err := tw.Write([]string{"run_id", "direction", "entry_time", "exit_time", "entry_price", "exit_price", "contracts", "profit", "entry_signal", "exit_signal", "open"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, tw, rf, tf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.Source,
		f(r.NetProfit),
		f(r.NetProfitPct),
		f(r.ProfitFactor),
		f(r.MaxDrawDown),
		strconv.Itoa(r.ClosedTrades),
		strconv.Itoa(r.OpenTrades),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	exitTime := ""
	if !t.Open {
		exitTime = t.ExitTime.Format(time.RFC3339)
	}
	err := j.trades.Write([]string{
		t.RunID,
		t.Direction,
		t.EntryTime.Format(time.RFC3339),
		exitTime,
		f(t.EntryPrice),
		f(t.ExitPrice),
		f(t.Contracts),
		f(t.Profit),
		t.EntrySignal,
		t.ExitSignal,
		strconv.FormatBool(t.Open),
	})
	if err != nil {
		return err
	}

	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.tf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
