package analytics

import (
	"sort"
	"sync"
	"time"
)

// Report bundles the overall summary with the per-direction breakdown.
type Report struct {
	All   Summary
	Long  Summary
	Short Summary
}

// Analyze runs the full pipeline over the trade set and over each direction
// subset. The input is never mutated; the direction subsets are views of the
// same immutable trades.
func Analyze(trades []Trade, opts Options) Report {
	return Report{
		All:   Summarize(trades, opts),
		Long:  Summarize(filterDirection(trades, Long), opts),
		Short: Summarize(filterDirection(trades, Short), opts),
	}
}

// MonthlyRow is one row of the monthly performance table.
type MonthlyRow struct {
	Month   time.Time // bucket anchor day per Options.MonthAnchor
	Label   string    // "2006-01-02", plus " Long"/" Short" for split rows
	Summary Summary
}

// MonthlyTable buckets closed trades by the calendar month of their exit and
// re-runs the pipeline per bucket, rows sorted by month ascending. Open
// trades have no exit and are excluded. A trade spanning a month boundary
// belongs entirely to the month it closed in, so month rows do not restate
// multi-month aggregates when trades straddle boundaries.
//
// With Options.SeparateLongShort each month also gets a long-only and a
// short-only row, labels suffixed " Long" and " Short".
func MonthlyTable(trades []Trade, opts Options) []MonthlyRow {
	groups := make(map[time.Time][]Trade)
	for _, t := range trades {
		if t.Open {
			continue
		}
		key := monthKey(t.ExitTime, opts.MonthAnchor)
		groups[key] = append(groups[key], t)
	}

	months := make([]time.Time, 0, len(groups))
	for m := range groups {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	perMonth := 1
	if opts.SeparateLongShort {
		perMonth = 3
	}
	rows := make([]MonthlyRow, len(months)*perMonth)

	// Buckets are disjoint and immutable, so each one is summarized on its
	// own goroutine writing only its own row slots.
	var wg sync.WaitGroup
	for i, m := range months {
		wg.Add(1)
		go func(i int, month time.Time, group []Trade) {
			defer wg.Done()
			label := month.Format("2006-01-02")
			rows[i*perMonth] = MonthlyRow{Month: month, Label: label, Summary: Summarize(group, opts)}
			if opts.SeparateLongShort {
				rows[i*perMonth+1] = MonthlyRow{
					Month:   month,
					Label:   label + " Long",
					Summary: Summarize(filterDirection(group, Long), opts),
				}
				rows[i*perMonth+2] = MonthlyRow{
					Month:   month,
					Label:   label + " Short",
					Summary: Summarize(filterDirection(group, Short), opts),
				}
			}
		}(i, m, groups[m])
	}
	wg.Wait()

	return rows
}

func filterDirection(trades []Trade, d Direction) []Trade {
	var out []Trade
	for _, t := range trades {
		if t.Direction == d {
			out = append(out, t)
		}
	}
	return out
}

// monthKey maps a timestamp to its bucket's anchor day in UTC terms of the
// timestamp's own location.
func monthKey(t time.Time, anchor MonthAnchor) time.Time {
	if anchor == MonthStart {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
	// day 0 of the following month is the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
