package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuyAndHold(t *testing.T) {
	t.Parallel()

	abs, pct := BuyAndHold(100, 120)
	assert.InDelta(t, 20.0, abs, 1e-9)
	assert.InDelta(t, 20.0, pct, 1e-9)

	abs, pct = BuyAndHold(50, 40)
	assert.InDelta(t, -10.0, abs, 1e-9)
	assert.InDelta(t, -20.0, pct, 1e-9)
}

func TestHoldBenchmarkDirectionAgnostic(t *testing.T) {
	t.Parallel()

	// a short trade set still benchmarks as if held long
	tr := closedTrade(t, Short, 0, time.Hour, -25)
	tr.EntryPrice = 50
	tr.ExitPrice = 55

	abs, pct := holdBenchmark([]Trade{tr})
	assert.InDelta(t, 5.0, abs, 1e-9)
	assert.InDelta(t, 10.0, pct, 1e-9)
}

func TestHoldBenchmarkFallsBackToEntryWhenOpen(t *testing.T) {
	t.Parallel()

	tr := closedTrade(t, Long, 0, time.Hour, 10)
	tr.EntryPrice = 100
	tr.ExitPrice = 110

	open := openTrade(t, Long, 2*time.Hour)
	open.EntryPrice = 130

	abs, pct := holdBenchmark([]Trade{tr, open})
	assert.InDelta(t, 30.0, abs, 1e-9)
	assert.InDelta(t, 30.0, pct, 1e-9)
}

func TestHoldBenchmarkEmpty(t *testing.T) {
	t.Parallel()

	abs, pct := holdBenchmark(nil)
	assert.True(t, math.IsNaN(abs))
	assert.True(t, math.IsNaN(pct))
}
