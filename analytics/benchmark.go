package analytics

import "math"

// BuyAndHold is the passive comparison between two price observations:
// the absolute move from first to last, and that move as a percentage of
// the first price. Always computed as if long from start to end, whatever
// the trades actually did.
func BuyAndHold(first, last float64) (abs, pct float64) {
	abs = last - first
	pct = abs / first * 100
	return abs, pct
}

// holdBenchmark anchors the benchmark on the trade set itself: first price
// is the first entry, last price is the final exit, falling back to the
// final entry when the last trade is still open.
func holdBenchmark(trades []Trade) (abs, pct float64) {
	if len(trades) == 0 {
		return math.NaN(), math.NaN()
	}
	last := trades[len(trades)-1]
	lastPrice := last.ExitPrice
	if last.Open {
		lastPrice = last.EntryPrice
	}
	return BuyAndHold(trades[0].EntryPrice, lastPrice)
}
