package journal

import (
	"time"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
)

// RunRecord is the headline row persisted for one analysis run.
type RunRecord struct {
	RunID   string
	Created time.Time
	Source  string // input file or table the transactions came from

	NetProfit    float64
	NetProfitPct float64
	ProfitFactor float64
	MaxDrawDown  float64
	ClosedTrades int
	OpenTrades   int
}

// TradeRecord is one normalized trade tagged with the run it belongs to.
type TradeRecord struct {
	RunID       string
	Direction   string
	EntryTime   time.Time
	ExitTime    time.Time
	EntryPrice  float64
	ExitPrice   float64
	Contracts   float64
	Profit      float64
	EntrySignal string
	ExitSignal  string
	Open        bool
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}

// NewRunRecord flattens the overall summary into a persistable run row.
func NewRunRecord(runID, source string, created time.Time, s analytics.Summary) RunRecord {
	return RunRecord{
		RunID:        runID,
		Created:      created,
		Source:       source,
		NetProfit:    s.NetProfit,
		NetProfitPct: s.NetProfitPct,
		ProfitFactor: s.ProfitFactor,
		MaxDrawDown:  s.MaxDrawDown,
		ClosedTrades: s.TotalClosedTrades,
		OpenTrades:   s.TotalOpenTrades,
	}
}

func NewTradeRecord(runID string, t analytics.Trade) TradeRecord {
	return TradeRecord{
		RunID:       runID,
		Direction:   t.Direction.String(),
		EntryTime:   t.EntryTime,
		ExitTime:    t.ExitTime,
		EntryPrice:  t.EntryPrice,
		ExitPrice:   t.ExitPrice,
		Contracts:   t.Contracts,
		Profit:      t.Profit,
		EntrySignal: t.EntrySignal,
		ExitSignal:  t.ExitSignal,
		Open:        t.Open,
	}
}
