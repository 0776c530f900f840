package analytics

import (
	"fmt"

	"github.com/ali-ardakani/TradingViewDataFeed/market"
)

// InvalidSequenceError reports a transaction sequence the normalizer cannot
// trust: out-of-order timestamps, a position sign flip without a flat
// crossing, or a malformed fill. The whole computation aborts because
// position state after the offending fill is meaningless.
type InvalidSequenceError struct {
	Index  int
	Reason string
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid transaction sequence at index %d: %s", e.Index, e.Reason)
}

// position is the normalizer's accumulator for the single open trade.
// Keeping it explicit (rather than package state) makes Normalize reentrant.
type position struct {
	net        float64 // signed contracts currently held
	maxAbs     float64
	entryQty   float64 // total contracts that opened or added to the position
	entryValue float64 // price-weighted sum over those fills
	exitQty    float64
	exitValue  float64
	trade      Trade
}

func (p *position) open() bool { return p.net != 0 }

// Normalize pairs raw fills into trades. A fill that takes the position from
// flat to nonzero starts a trade; the fill that brings it back to flat closes
// it. Same-direction fills in between adjust size, tracking the maximum
// absolute exposure as the trade's Contracts. Realized P&L is the signed
// notional difference between the weighted exit and weighted entry, so
// partial adds and partial reductions settle exactly at the flat crossing.
func Normalize(txs []market.Transaction) ([]Trade, error) {
	var (
		trades []Trade
		pos    position
	)

	for i, tx := range txs {
		if tx.Quantity <= 0 {
			return nil, &InvalidSequenceError{Index: i, Reason: fmt.Sprintf("non-positive quantity %v", tx.Quantity)}
		}
		if i > 0 && tx.Time.Before(txs[i-1].Time) {
			return nil, &InvalidSequenceError{Index: i, Reason: "timestamp earlier than previous transaction"}
		}

		signed := tx.Signed()
		next := pos.net + signed

		switch {
		case !pos.open():
			dir := Long
			if signed < 0 {
				dir = Short
			}
			pos = position{
				net:        signed,
				maxAbs:     abs(signed),
				entryQty:   tx.Quantity,
				entryValue: tx.Price * tx.Quantity,
				trade: Trade{
					Direction:   dir,
					EntryTime:   tx.Time,
					EntrySignal: tx.Signal,
					Open:        true,
				},
			}

		case sameSign(pos.net, next) || next == 0:
			if abs(next) > abs(pos.net) {
				// adding exposure
				pos.entryQty += tx.Quantity
				pos.entryValue += tx.Price * tx.Quantity
			} else {
				// reducing exposure
				pos.exitQty += tx.Quantity
				pos.exitValue += tx.Price * tx.Quantity
			}
			pos.net = next
			if abs(next) > pos.maxAbs {
				pos.maxAbs = abs(next)
			}
			if next == 0 {
				trades = append(trades, pos.close(tx))
				pos = position{}
			}

		default:
			// sign flip without a flat crossing
			return nil, &InvalidSequenceError{Index: i, Reason: "position reversed direction without crossing zero"}
		}
	}

	if pos.open() {
		trades = append(trades, pos.settleOpen())
	}
	return trades, nil
}

// close finalizes a flat position into a closed trade. tx is the fill that
// brought the position to zero.
func (p *position) close(tx market.Transaction) Trade {
	t := p.trade
	t.Open = false
	t.Contracts = p.maxAbs
	t.EntryPrice = p.entryValue / p.entryQty
	t.ExitPrice = p.exitValue / p.exitQty
	t.ExitTime = tx.Time
	t.ExitSignal = tx.Signal

	// long gains when exit > entry, short when exit < entry
	t.Profit = p.exitValue - p.entryValue
	if t.Direction == Short {
		t.Profit = -t.Profit
	}
	return t
}

// settleOpen emits the trailing open trade when the sequence ends nonflat.
func (p *position) settleOpen() Trade {
	t := p.trade
	t.Contracts = p.maxAbs
	t.EntryPrice = p.entryValue / p.entryQty
	return t
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
