package analytics

import (
	"sort"
	"time"
)

// Checkpoint is one point on the realized equity curve: cumulative closed
// P&L up to and including Time.
type Checkpoint struct {
	Time   time.Time
	Equity float64
}

// BuildEquityCurve reconstructs the realized equity curve for a trade set:
// a zero checkpoint at the first entry, then one checkpoint per trade close
// in exit-time order. Open trades never contribute; with zero closed trades
// the curve is just the initial checkpoint. No trades at all yields nil.
func BuildEquityCurve(trades []Trade) []Checkpoint {
	if len(trades) == 0 {
		return nil
	}

	closed := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if !t.Open {
			closed = append(closed, t)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].ExitTime.Before(closed[j].ExitTime)
	})

	first := trades[0].EntryTime
	for _, t := range trades[1:] {
		if t.EntryTime.Before(first) {
			first = t.EntryTime
		}
	}

	curve := make([]Checkpoint, 0, len(closed)+1)
	curve = append(curve, Checkpoint{Time: first})

	cum := 0.0
	for _, t := range closed {
		cum += t.Profit
		curve = append(curve, Checkpoint{Time: t.ExitTime, Equity: cum})
	}
	return curve
}
