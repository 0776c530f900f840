package market

import (
	"fmt"
	"strings"
	"time"
)

// Side is the direction of a single fill.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return "unknown"
}

// ParseSide accepts "buy"/"sell" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// Transaction is one fill for a single instrument: the raw input unit of the
// analytics pipeline. Transactions are immutable and must arrive in
// non-decreasing time order, ties broken by input order.
type Transaction struct {
	Time     time.Time
	Side     Side
	Quantity float64 // always positive; Side carries the direction
	Price    float64
	Signal   string // optional strategy annotation, e.g. "Long Entry"
}

// Signed returns the quantity with Buy positive and Sell negative.
func (tx Transaction) Signed() float64 {
	if tx.Side == Sell {
		return -tx.Quantity
	}
	return tx.Quantity
}
