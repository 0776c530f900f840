package analytics

import (
	"math"
	"time"
)

// MonthAnchor selects which day keys a month bucket in the monthly table.
type MonthAnchor int

const (
	// MonthEnd keys each bucket by the last calendar day of the month.
	MonthEnd MonthAnchor = iota
	// MonthStart keys each bucket by the first day of the month.
	MonthStart
)

// Options configures the calculator.
//
// Basis is the starting-capital reference for every "%"-suffixed field.
// When zero, the basis is derived per trade set as the first trade's entry
// price times its contracts ("initial capital"). Whatever the source, one
// basis value is applied uniformly across a summary.
type Options struct {
	Basis             float64
	SeparateLongShort bool
	MonthAnchor       MonthAnchor
}

// Summarize computes the full performance summary for one trade subset,
// rebuilding the subset's own equity curve for the excursion metrics.
// An empty subset is not an error: counts are zero and every ratio or
// average is NaN.
func Summarize(trades []Trade, opts Options) Summary {
	var (
		closed  []Trade
		winners []Trade
		losers  []Trade
	)
	for _, t := range trades {
		if t.Open {
			continue
		}
		closed = append(closed, t)
		switch {
		case t.Profit > 0:
			winners = append(winners, t)
		case t.Profit < 0:
			losers = append(losers, t)
		}
	}

	basis := resolveBasis(trades, opts)

	s := Summary{
		NetProfit:   sumProfit(closed),
		GrossProfit: sumProfit(winners),
		GrossLoss:   sumProfit(losers),

		MaxContractHeld: maxContract(trades),

		TotalClosedTrades:   len(closed),
		TotalOpenTrades:     len(trades) - len(closed),
		NumberWinningTrades: len(winners),
		NumberLosingTrades:  len(losers),

		AvgTrade:        meanProfit(closed),
		AvgWinningTrade: meanProfit(winners),
		AvgLosingTrade:  meanProfit(losers),

		LargestWinningTrade: extremeProfit(winners, false),
		LargestLosingTrade:  extremeProfit(losers, true),

		AvgBarsInTrades:        meanDuration(closed),
		AvgBarsInWinningTrades: meanDuration(winners),
		AvgBarsInLosingTrades:  meanDuration(losers),
	}

	s.NetProfitPct = percentOf(s.NetProfit, basis)
	s.GrossProfitPct = percentOf(s.GrossProfit, basis)
	s.GrossLossPct = percentOf(s.GrossLoss, basis)
	s.AvgTradePct = percentOf(s.AvgTrade, basis)
	s.AvgWinningTradePct = percentOf(s.AvgWinningTrade, basis)
	s.AvgLosingTradePct = percentOf(s.AvgLosingTrade, basis)
	s.LargestWinningTradePct = percentOf(s.LargestWinningTrade, basis)
	s.LargestLosingTradePct = percentOf(s.LargestLosingTrade, basis)

	s.ProfitFactor = profitFactor(s.GrossProfit, s.GrossLoss)
	s.RatioAvgWinAvgLoss = s.AvgWinningTrade / math.Abs(s.AvgLosingTrade)

	if len(closed) > 0 {
		s.PercentProfitable = float64(len(winners)) / float64(len(closed)) * 100
	} else {
		s.PercentProfitable = math.NaN()
	}

	ex := TrackExcursions(BuildEquityCurve(trades), basis)
	s.MaxRunUp = ex.MaxRunUp
	s.MaxRunUpPct = ex.MaxRunUpPct
	s.MaxDrawDown = ex.MaxDrawDown
	s.MaxDrawDownPct = ex.MaxDrawDownPct

	s.BuyAndHold, s.BuyAndHoldPct = holdBenchmark(trades)

	return s
}

// resolveBasis picks the percentage basis: the configured starting capital
// when set, otherwise the first trade's entry notional. NaN when the subset
// is empty, which propagates NaN into every percent field.
func resolveBasis(trades []Trade, opts Options) float64 {
	if opts.Basis > 0 {
		return opts.Basis
	}
	if len(trades) == 0 {
		return math.NaN()
	}
	return trades[0].EntryPrice * trades[0].Contracts
}

// percentOf is the single place absolute values turn into "%" fields, so the
// two can never drift apart.
func percentOf(abs, basis float64) float64 {
	return abs / basis * 100
}

// profitFactor is gross profit per unit of gross loss. No losses but some
// profit is +Inf; no profit is 0 when losses exist and NaN when the subset
// had no closed P&L at all.
func profitFactor(grossProfit, grossLoss float64) float64 {
	switch {
	case grossProfit == 0 && grossLoss == 0:
		return math.NaN()
	case grossLoss == 0:
		return math.Inf(1)
	default:
		return grossProfit / math.Abs(grossLoss)
	}
}

func sumProfit(trades []Trade) float64 {
	sum := 0.0
	for _, t := range trades {
		sum += t.Profit
	}
	return sum
}

func meanProfit(trades []Trade) float64 {
	if len(trades) == 0 {
		return math.NaN()
	}
	return sumProfit(trades) / float64(len(trades))
}

// extremeProfit returns the max (or min) realized P&L, NaN for an empty set.
func extremeProfit(trades []Trade, min bool) float64 {
	if len(trades) == 0 {
		return math.NaN()
	}
	best := trades[0].Profit
	for _, t := range trades[1:] {
		if (min && t.Profit < best) || (!min && t.Profit > best) {
			best = t.Profit
		}
	}
	return best
}

// meanDuration averages trade durations, rounded to the second. Zero for an
// empty set: durations have no NaN, and a zero average reads naturally in
// the rendered tables.
func meanDuration(trades []Trade) time.Duration {
	if len(trades) == 0 {
		return 0
	}
	var total time.Duration
	for _, t := range trades {
		total += t.Duration()
	}
	return (total / time.Duration(len(trades))).Round(time.Second)
}

func maxContract(trades []Trade) float64 {
	if len(trades) == 0 {
		return math.NaN()
	}
	best := trades[0].Contracts
	for _, t := range trades[1:] {
		if t.Contracts > best {
			best = t.Contracts
		}
	}
	return best
}
