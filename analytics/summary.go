package analytics

import "time"

// Summary is the fixed-schema performance record for one trade set. It is
// derived data: regenerate it whenever the underlying trades change rather
// than mutating it.
//
// Every "%"-suffixed field is its absolute counterpart divided by the
// percentage basis (see Options.Basis), never an independent computation.
// Ratio and average fields over empty subsets are NaN; Profit Factor is
// +Inf when there are gains but no losses and NaN when there is neither.
type Summary struct {
	NetProfit      float64
	NetProfitPct   float64
	GrossProfit    float64
	GrossProfitPct float64
	GrossLoss      float64 // kept negative
	GrossLossPct   float64

	MaxRunUp       float64
	MaxRunUpPct    float64
	MaxDrawDown    float64
	MaxDrawDownPct float64

	BuyAndHold    float64
	BuyAndHoldPct float64

	ProfitFactor    float64
	MaxContractHeld float64

	TotalClosedTrades   int
	TotalOpenTrades     int
	NumberWinningTrades int
	NumberLosingTrades  int // zero-P&L trades count in neither
	PercentProfitable   float64

	AvgTrade           float64
	AvgTradePct        float64
	AvgWinningTrade    float64
	AvgWinningTradePct float64
	AvgLosingTrade     float64
	AvgLosingTradePct  float64
	RatioAvgWinAvgLoss float64

	LargestWinningTrade    float64
	LargestWinningTradePct float64
	LargestLosingTrade     float64
	LargestLosingTradePct  float64

	AvgBarsInTrades        time.Duration
	AvgBarsInWinningTrades time.Duration
	AvgBarsInLosingTrades  time.Duration
}

// Field is one (metric name, value) pair of a flattened Summary. Value is a
// float64, an int, or a time.Duration depending on the metric.
type Field struct {
	Name  string
	Value any
}

// Fields flattens the summary into its canonical ordered form. The names
// are a stable output contract; downstream consumers key on them.
func (s Summary) Fields() []Field {
	return []Field{
		{"Net Profit", s.NetProfit},
		{"Net Profit %", s.NetProfitPct},
		{"Gross Profit", s.GrossProfit},
		{"Gross Profit %", s.GrossProfitPct},
		{"Gross Loss", s.GrossLoss},
		{"Gross Loss %", s.GrossLossPct},
		{"Max Run Up", s.MaxRunUp},
		{"Max Run Up %", s.MaxRunUpPct},
		{"Max Draw Down", s.MaxDrawDown},
		{"Max Draw Down %", s.MaxDrawDownPct},
		{"Buy and Hold", s.BuyAndHold},
		{"Buy and Hold %", s.BuyAndHoldPct},
		{"Profit Factor", s.ProfitFactor},
		{"Max Contract Held", s.MaxContractHeld},
		{"Total Closed Trades", s.TotalClosedTrades},
		{"Total Open Trades", s.TotalOpenTrades},
		{"Number Winning Trades", s.NumberWinningTrades},
		{"Number Losing Trades", s.NumberLosingTrades},
		{"Percent Profitable", s.PercentProfitable},
		{"Avg Trade", s.AvgTrade},
		{"Avg Trade %", s.AvgTradePct},
		{"Avg Winning Trade", s.AvgWinningTrade},
		{"Avg Winning Trade %", s.AvgWinningTradePct},
		{"Avg Losing Trade", s.AvgLosingTrade},
		{"Avg Losing Trade %", s.AvgLosingTradePct},
		{"Ratio Avg Win Avg Loss", s.RatioAvgWinAvgLoss},
		{"Largest Winning Trade", s.LargestWinningTrade},
		{"Largest Winning Trade %", s.LargestWinningTradePct},
		{"Largest Losing Trade", s.LargestLosingTrade},
		{"Largest Losing Trade %", s.LargestLosingTradePct},
		{"Avg Bars in Trades", s.AvgBarsInTrades},
		{"Avg Bars in Winning Trades", s.AvgBarsInWinningTrades},
		{"Avg Bars in Losing Trades", s.AvgBarsInLosingTrades},
	}
}

// AsMap returns the flat metric-name-to-value mapping.
func (s Summary) AsMap() map[string]any {
	fields := s.Fields()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return m
}
