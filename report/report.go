package report

import (
	"fmt"
	"io"
	"time"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
)

// PrintSummary writes one performance summary as an aligned name/value
// block, every metric in its canonical order.
func PrintSummary(w io.Writer, title string, s analytics.Summary) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s\n", title)
	fmt.Fprintln(w, "==================================================")

	for _, f := range s.Fields() {
		fmt.Fprintf(w, "%-28s %s\n", f.Name, formatValue(f.Value))
	}
	fmt.Fprintln(w)
}

// PrintReport writes the overall, long-only and short-only summaries.
func PrintReport(w io.Writer, r analytics.Report) {
	PrintSummary(w, "Performance Summary", r.All)
	PrintSummary(w, "Performance Summary (Long)", r.Long)
	PrintSummary(w, "Performance Summary (Short)", r.Short)
}

// PrintMonthly writes the monthly table with the headline columns. The full
// metric set per month is available through each row's Summary.Fields().
func PrintMonthly(w io.Writer, rows []analytics.MonthlyRow) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Monthly Performance")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "%-18s %12s %10s %8s %8s %8s\n",
		"Month", "Net Profit", "Net %", "Closed", "Won", "PF")

	for _, row := range rows {
		s := row.Summary
		fmt.Fprintf(w, "%-18s %12.2f %10.2f %8d %8d %8s\n",
			row.Label, s.NetProfit, s.NetProfitPct,
			s.TotalClosedTrades, s.NumberWinningTrades,
			formatValue(s.ProfitFactor))
	}
	fmt.Fprintln(w)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case int:
		return fmt.Sprintf("%d", x)
	case time.Duration:
		return x.String()
	}
	return fmt.Sprint(v)
}
