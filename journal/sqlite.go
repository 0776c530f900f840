package journal

import (
	"database/sql"
	"math"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, source, net_profit, net_profit_pct, profit_factor, max_draw_down, closed_trades, open_trades)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Source, r.NetProfit, r.NetProfitPct,
		nullable(r.ProfitFactor), r.MaxDrawDown, r.ClosedTrades, r.OpenTrades,
	)
	return err
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(run_id, direction, entry_time, exit_time, entry_price, exit_price, contracts, profit, entry_signal, exit_signal, open)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Direction, t.EntryTime, t.ExitTime, t.EntryPrice,
		t.ExitPrice, t.Contracts, t.Profit, t.EntrySignal, t.ExitSignal, t.Open,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// nullable maps NaN/Inf sentinels to SQL NULL; they are legitimate summary
// values but have no REAL representation.
func nullable(x float64) sql.NullFloat64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: x, Valid: true}
}
