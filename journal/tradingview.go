package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ali-ardakani/TradingViewDataFeed/market"
)

// ReadTradingView converts a TradingView "List of Trades" export into an
// ordered transaction sequence. The export carries two rows per trade
// (an entry row and an exit row, newest first) with a Type column such as
// "Entry Long" or "Exit Short"; each row becomes one fill, sides mapped so
// that the normalizer reconstructs the same trades:
//
//	Entry Long -> buy    Exit Long  -> sell
//	Entry Short -> sell  Exit Short -> buy
//
// Derived columns in the export (Profit, Drawdown, Run-up, Cum. Profit) are
// ignored; the engine recomputes them.
func ReadTradingView(r io.Reader) ([]market.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, need := range []string{"Type", "Date/Time", "Price", "Contracts"} {
		if _, ok := col[need]; !ok {
			return nil, fmt.Errorf("missing column %q", need)
		}
	}
	signalCol, hasSignal := col["Signal"]

	maxCol := 0
	for _, need := range []string{"Type", "Date/Time", "Price", "Contracts"} {
		if col[need] > maxCol {
			maxCol = col[need]
		}
	}

	var txs []market.Transaction
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if len(row) <= maxCol {
			return nil, fmt.Errorf("line %d: truncated row", line)
		}

		side, err := sideFromType(row[col["Type"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ts, err := parseTime(row[col["Date/Time"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := parseFloat(row[col["Price"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: price: %w", line, err)
		}
		qty, err := parseFloat(row[col["Contracts"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: contracts: %w", line, err)
		}

		tx := market.Transaction{Time: ts, Side: side, Quantity: qty, Price: price}
		if hasSignal && signalCol < len(row) {
			tx.Signal = strings.TrimSpace(row[signalCol])
		}
		txs = append(txs, tx)
	}

	// export lists newest trades first; the engine wants time order
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Time.Before(txs[j].Time) })
	return txs, nil
}

func sideFromType(s string) (market.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry long", "exit short":
		return market.Buy, nil
	case "exit long", "entry short":
		return market.Sell, nil
	}
	return 0, fmt.Errorf("unknown trade type %q", s)
}
