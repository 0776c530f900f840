package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spanningTrades covers three calendar months, including a trade that opens
// in June and closes in July, plus a trailing open trade.
func spanningTrades(t *testing.T) []Trade {
	t.Helper()
	day := 24 * time.Hour
	return []Trade{
		closedTrade(t, Long, 0, day, 150),                 // June
		closedTrade(t, Short, 2*day, 3*day, -50),          // June
		closedTrade(t, Long, 28*day, 31*day, 200),         // opens June 29, closes July 2
		closedTrade(t, Short, 35*day, 36*day, -80),        // July
		closedTrade(t, Long, 62*day, 63*day, 90),          // August
		openTrade(t, Long, 64*day),
	}
}

func TestAnalyzeDirectionSegments(t *testing.T) {
	t.Parallel()

	trades := spanningTrades(t)
	r := Analyze(trades, Options{Basis: 1000})

	assert.Equal(t, 5, r.All.TotalClosedTrades)
	assert.Equal(t, 1, r.All.TotalOpenTrades)

	assert.Equal(t, 3, r.Long.TotalClosedTrades)
	assert.Equal(t, 1, r.Long.TotalOpenTrades)
	assert.InDelta(t, 440.0, r.Long.NetProfit, 1e-9)

	assert.Equal(t, 2, r.Short.TotalClosedTrades)
	assert.Equal(t, 0, r.Short.TotalOpenTrades)
	assert.InDelta(t, -130.0, r.Short.NetProfit, 1e-9)

	// direction subsets partition the closed trades
	assert.Equal(t, r.All.TotalClosedTrades, r.Long.TotalClosedTrades+r.Short.TotalClosedTrades)
	assert.InDelta(t, r.All.NetProfit, r.Long.NetProfit+r.Short.NetProfit, 1e-9)
}

func TestMonthlyTableGroupsByExitMonth(t *testing.T) {
	t.Parallel()

	rows := MonthlyTable(spanningTrades(t), Options{Basis: 1000})
	require.Len(t, rows, 3)

	assert.Equal(t, "2022-06-30", rows[0].Label)
	assert.Equal(t, "2022-07-31", rows[1].Label)
	assert.Equal(t, "2022-08-31", rows[2].Label)

	// June holds only the trades that closed in June
	assert.Equal(t, 2, rows[0].Summary.TotalClosedTrades)
	assert.InDelta(t, 100.0, rows[0].Summary.NetProfit, 1e-9)

	// the June-to-July spanning trade counts in July, its close month
	assert.Equal(t, 2, rows[1].Summary.TotalClosedTrades)
	assert.InDelta(t, 120.0, rows[1].Summary.NetProfit, 1e-9)

	assert.Equal(t, 1, rows[2].Summary.TotalClosedTrades)
}

func TestMonthlyNetProfitSumsToOverall(t *testing.T) {
	t.Parallel()

	trades := spanningTrades(t)
	rows := MonthlyTable(trades, Options{Basis: 1000})

	var monthly float64
	for _, row := range rows {
		monthly += row.Summary.NetProfit
	}

	overall := Summarize(trades, Options{Basis: 1000})
	assert.InDelta(t, overall.NetProfit, monthly, 1e-9)
}

func TestMonthlyTableSeparateLongShort(t *testing.T) {
	t.Parallel()

	rows := MonthlyTable(spanningTrades(t), Options{Basis: 1000, SeparateLongShort: true})
	require.Len(t, rows, 9)

	assert.Equal(t, "2022-06-30", rows[0].Label)
	assert.Equal(t, "2022-06-30 Long", rows[1].Label)
	assert.Equal(t, "2022-06-30 Short", rows[2].Label)

	assert.Equal(t, 1, rows[1].Summary.TotalClosedTrades)
	assert.InDelta(t, 150.0, rows[1].Summary.NetProfit, 1e-9)
	assert.Equal(t, 1, rows[2].Summary.TotalClosedTrades)
	assert.InDelta(t, -50.0, rows[2].Summary.NetProfit, 1e-9)
}

func TestMonthlyTableMonthStartAnchor(t *testing.T) {
	t.Parallel()

	rows := MonthlyTable(spanningTrades(t), Options{Basis: 1000, MonthAnchor: MonthStart})
	require.Len(t, rows, 3)
	assert.Equal(t, "2022-06-01", rows[0].Label)
	assert.Equal(t, "2022-07-01", rows[1].Label)
	assert.Equal(t, "2022-08-01", rows[2].Label)
}

func TestMonthlyTableExcludesOpenTrades(t *testing.T) {
	t.Parallel()

	rows := MonthlyTable([]Trade{openTrade(t, Long, 0)}, Options{})
	assert.Empty(t, rows)
}
