package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali-ardakani/TradingViewDataFeed/market"
)

func TestReadTransactions(t *testing.T) {
	t.Parallel()

	in := `time,side,quantity,price,signal
2022-06-01 10:00:00,buy,10,100.5,Long Entry
2022-06-01 11:00:00,sell,10,120,Long Exit
`
	txs, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, market.Buy, txs[0].Side)
	assert.Equal(t, 10.0, txs[0].Quantity)
	assert.InDelta(t, 100.5, txs[0].Price, 1e-9)
	assert.Equal(t, "Long Entry", txs[0].Signal)
	assert.Equal(t, time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC), txs[0].Time)

	assert.Equal(t, market.Sell, txs[1].Side)
}

func TestReadTransactionsNoHeader(t *testing.T) {
	t.Parallel()

	in := "2022-06-01T10:00:00Z,buy,1,50\n"
	txs, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "", txs[0].Signal)
}

func TestReadTransactionsThousandsSeparators(t *testing.T) {
	t.Parallel()

	in := "2022-06-01 10:00,buy,2,\"1,250.75\"\n"
	txs, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.InDelta(t, 1250.75, txs[0].Price, 1e-9)
}

func TestReadTransactionsBadRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"bad_time", "not-a-time,buy,1,100\n"},
		{"bad_side", "2022-06-01 10:00,hold,1,100\n"},
		{"bad_quantity", "2022-06-01 10:00,buy,x,100\n"},
		{"too_few_fields", "2022-06-01 10:00,buy\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadTransactions(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}
