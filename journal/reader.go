package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ali-ardakani/TradingViewDataFeed/market"
)

// timeLayouts are tried in order when parsing timestamps from exports.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ReadTransactions reads canonical transaction CSV rows:
//
//	time,side,quantity,price[,signal]
//
// where time is RFC3339 or a plain "2006-01-02 15:04[:05]" stamp.
// A header row ("time,...") is allowed; empty rows are skipped.
func ReadTransactions(r io.Reader) ([]market.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var (
		txs []market.Transaction
		n   int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return txs, nil
		}
		if err != nil {
			return nil, err
		}
		n++

		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		if n == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "time") {
			continue
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("row %d: want at least 4 fields, got %d", n, len(row))
		}

		ts, err := parseTime(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		side, err := market.ParseSide(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		qty, err := parseFloat(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity: %w", n, err)
		}
		price, err := parseFloat(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", n, err)
		}

		tx := market.Transaction{Time: ts, Side: side, Quantity: qty, Price: price}
		if len(row) > 4 {
			tx.Signal = strings.TrimSpace(row[4])
		}
		txs = append(txs, tx)
	}
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func parseFloat(s string) (float64, error) {
	// exports sometimes format large numbers with thousands separators
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}
