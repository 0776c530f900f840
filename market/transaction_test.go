package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"buy", Buy, false},
		{"Buy", Buy, false},
		{" SELL ", Sell, false},
		{"sell", Sell, false},
		{"hold", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSide(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestTransactionSigned(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.0, Transaction{Side: Buy, Quantity: 10}.Signed())
	assert.Equal(t, -10.0, Transaction{Side: Sell, Quantity: 10}.Signed())
}
