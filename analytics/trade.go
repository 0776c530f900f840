package analytics

import "time"

// Direction is the side of a position, fixed at trade creation.
type Direction int

const (
	Long Direction = iota + 1
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return "unknown"
}

// Trade is one complete directional position, from flat-to-nonzero through
// nonzero-to-flat. A trade whose position never returned to flat stays Open;
// its exit fields are zero and its Profit is excluded from aggregation.
type Trade struct {
	Direction  Direction
	EntryTime  time.Time
	EntryPrice float64 // volume-weighted over the opening fills
	ExitTime   time.Time
	ExitPrice  float64 // volume-weighted over the closing fills
	Contracts  float64 // maximum absolute size held during the trade
	Profit     float64 // realized P&L, zero while open

	EntrySignal string
	ExitSignal  string

	Open bool
}

// Duration is exit minus entry. Zero for open trades.
func (t Trade) Duration() time.Duration {
	if t.Open {
		return 0
	}
	return t.ExitTime.Sub(t.EntryTime)
}
