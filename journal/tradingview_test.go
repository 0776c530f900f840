package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
	"github.com/ali-ardakani/TradingViewDataFeed/market"
)

// tvExport mirrors a TradingView "List of Trades" export: two rows per
// trade, newest trade first, exit row above its entry row.
const tvExport = `Trade #,Type,Signal,Date/Time,Price,Contracts,Profit USDT
2,Exit Short,Cover,2022-06-02 15:00,95,5,25
2,Entry Short,Short,2022-06-02 12:00,100,5,
1,Exit Long,Sell,2022-06-01 11:00,120,10,200
1,Entry Long,Buy,2022-06-01 10:00,100,10,
`

func TestReadTradingView(t *testing.T) {
	t.Parallel()

	txs, err := ReadTradingView(strings.NewReader(tvExport))
	require.NoError(t, err)
	require.Len(t, txs, 4)

	// rows come back in time order regardless of export order
	assert.Equal(t, market.Buy, txs[0].Side)
	assert.Equal(t, "Buy", txs[0].Signal)
	assert.Equal(t, market.Sell, txs[1].Side)
	assert.Equal(t, market.Sell, txs[2].Side) // Entry Short
	assert.Equal(t, market.Buy, txs[3].Side)  // Exit Short
}

func TestReadTradingViewFeedsNormalizer(t *testing.T) {
	t.Parallel()

	txs, err := ReadTradingView(strings.NewReader(tvExport))
	require.NoError(t, err)

	trades, err := analytics.Normalize(txs)
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, analytics.Long, trades[0].Direction)
	assert.InDelta(t, 200.0, trades[0].Profit, 1e-9)
	assert.Equal(t, analytics.Short, trades[1].Direction)
	assert.InDelta(t, 25.0, trades[1].Profit, 1e-9)
}

func TestReadTradingViewMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := ReadTradingView(strings.NewReader("Trade #,Type,Date/Time,Price\n"))
	assert.ErrorContains(t, err, "Contracts")
}

func TestReadTradingViewUnknownType(t *testing.T) {
	t.Parallel()

	in := "Type,Date/Time,Price,Contracts\nHedge,2022-06-01 10:00,100,1\n"
	_, err := ReadTradingView(strings.NewReader(in))
	assert.ErrorContains(t, err, "unknown trade type")
}
