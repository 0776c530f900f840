package journal

import (
	"database/sql"
	"fmt"
	"math"
	"time"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var (
		rec RunRecord
		pf  sql.NullFloat64
	)

	row := j.db.QueryRow(`
		SELECT run_id, created, source, net_profit, net_profit_pct, profit_factor, max_draw_down, closed_trades, open_trades
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.Source,
		&rec.NetProfit,
		&rec.NetProfitPct,
		&pf,
		&rec.MaxDrawDown,
		&rec.ClosedTrades,
		&rec.OpenTrades,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}

	rec.ProfitFactor = math.NaN()
	if pf.Valid {
		rec.ProfitFactor = pf.Float64
	}
	return rec, nil
}

// ListTradesByRun returns the trades recorded for a run, entry order.
func (j *SQLite) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, direction, entry_time, exit_time, entry_price, exit_price, contracts, profit, entry_signal, exit_signal, open
		FROM trades
		WHERE run_id = ?
		ORDER BY entry_time ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

// ListTradesClosedBetween returns closed trades whose exit_time is within
// [start, end), across all runs.
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, direction, entry_time, exit_time, entry_price, exit_price, contracts, profit, entry_signal, exit_signal, open
		FROM trades
		WHERE open = 0 AND exit_time >= ? AND exit_time < ?
		ORDER BY exit_time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

func scanTrades(rows *sql.Rows) ([]TradeRecord, error) {
	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Direction,
			&rec.EntryTime,
			&rec.ExitTime,
			&rec.EntryPrice,
			&rec.ExitPrice,
			&rec.Contracts,
			&rec.Profit,
			&rec.EntrySignal,
			&rec.ExitSignal,
			&rec.Open,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
