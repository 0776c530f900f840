package report

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
)

// OrgReport renders an analysis run as an Org-mode entry for research notes.
type OrgReport struct {
	RunID   string
	Created time.Time
	Source  string
	Report  analytics.Report
	Monthly []analytics.MonthlyRow
}

var orgFuncs = template.FuncMap{
	"f2": func(x float64) string { return formatValue(x) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// WriteOrg renders the report and writes it to path.
func (r *OrgReport) WriteOrg(path string) error {
	data, err := r.render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (r *OrgReport) render() ([]byte, error) {
	t, err := template.New("perf").Funcs(orgFuncs).Parse(OrgTemplate)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const OrgTemplate = `
* PERFORMANCE: {{if .Source}}{{.Source}}{{else}}(source?){{end}}
:PROPERTIES:
:RUN_ID:      {{if .RunID}}{{.RunID}}{{else}}(run-id?){{end}}
:SOURCE:      {{if .Source}}{{.Source}}{{else}}(source?){{end}}
:NET_PROFIT:  {{f2 .Report.All.NetProfit}}
:NET_PCT:     {{f2 .Report.All.NetProfitPct}}
:PROFIT_FAC:  {{f2 .Report.All.ProfitFactor}}
:MAX_DD:      {{f2 .Report.All.MaxDrawDown}}
:MAX_RUNUP:   {{f2 .Report.All.MaxRunUp}}
:CLOSED:      {{.Report.All.TotalClosedTrades}}
:OPEN:        {{.Report.All.TotalOpenTrades}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Direction Breakdown
| Segment | Net Profit | Net % | Closed | Won | Lost | Profit Factor |
|---------+------------+-------+--------+-----+------+---------------|
| All     | {{f2 .Report.All.NetProfit}} | {{f2 .Report.All.NetProfitPct}} | {{.Report.All.TotalClosedTrades}} | {{.Report.All.NumberWinningTrades}} | {{.Report.All.NumberLosingTrades}} | {{f2 .Report.All.ProfitFactor}} |
| Long    | {{f2 .Report.Long.NetProfit}} | {{f2 .Report.Long.NetProfitPct}} | {{.Report.Long.TotalClosedTrades}} | {{.Report.Long.NumberWinningTrades}} | {{.Report.Long.NumberLosingTrades}} | {{f2 .Report.Long.ProfitFactor}} |
| Short   | {{f2 .Report.Short.NetProfit}} | {{f2 .Report.Short.NetProfitPct}} | {{.Report.Short.TotalClosedTrades}} | {{.Report.Short.NumberWinningTrades}} | {{.Report.Short.NumberLosingTrades}} | {{f2 .Report.Short.ProfitFactor}} |

{{- if .Monthly }}

** Monthly
| Month | Net Profit | Net % | Closed |
|-------+------------+-------+--------|
{{- range .Monthly }}
| {{.Label}} | {{f2 .Summary.NetProfit}} | {{f2 .Summary.NetProfitPct}} | {{.Summary.TotalClosedTrades}} |
{{- end }}
{{- end }}
`
