package metrics

import (
	"bytes"
	"text/template"
	"time"
)

// Report bundles everything the stats command prints.
type Report struct {
	Generated  time.Time
	Stats      TradeStats
	Portfolio  PortfolioStats
	ByStrategy []Rollup
	ByTicker   []Rollup
	ByMonth    []Rollup
}

var reportFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
}

// Render produces the text summary report.
func (r Report) Render() (string, error) {
	t, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const reportTemplate = `TRADE JOURNAL SUMMARY  {{.Generated.Format "2006-01-02 15:04"}}

Performance
  Trades:         {{.Stats.TotalTrades}} ({{.Stats.Wins}} wins / {{.Stats.Losses}} losses)
  Win Rate:       {{printf "%.1f" (mul100 .Stats.WinRate)}}%
  Total P/L:      {{printf "%.2f" .Stats.TotalPL}}
  Avg Win:        {{printf "%.2f" .Stats.AvgWin}}
  Avg Loss:       {{printf "%.2f" .Stats.AvgLoss}}
  Largest Win:    {{printf "%.2f" .Stats.LargestWin}}
  Largest Loss:   {{printf "%.2f" .Stats.LargestLoss}}
  Profit Factor:  {{printf "%.2f" .Stats.ProfitFactor}}
  Total Fees:     {{printf "%.2f" .Stats.TotalFees}}

Portfolio
  Starting Capital: {{printf "%.2f" .Portfolio.StartingCapital}}
  Current Balance:  {{printf "%.2f" .Portfolio.CurrentBalance}}
  Total Return:     {{printf "%.2f" .Portfolio.TotalReturn}} ({{printf "%.2f" (mul100 .Portfolio.ReturnPct)}}%)
  Max Drawdown:     {{printf "%.2f" (mul100 .Portfolio.MaxDrawdown)}}%
  Sharpe (ann.):    {{printf "%.2f" .Portfolio.Sharpe}}
{{- if .ByStrategy}}

By Strategy
{{- range .ByStrategy}}
  {{printf "%-20s" .Key}} trades={{printf "%-4d" .Stats.TotalTrades}} pl={{printf "%10.2f" .Stats.TotalPL}} win%={{printf "%5.1f" (mul100 .Stats.WinRate)}}
{{- end}}
{{- end}}
{{- if .ByTicker}}

By Ticker
{{- range .ByTicker}}
  {{printf "%-20s" .Key}} trades={{printf "%-4d" .Stats.TotalTrades}} pl={{printf "%10.2f" .Stats.TotalPL}} win%={{printf "%5.1f" (mul100 .Stats.WinRate)}}
{{- end}}
{{- end}}
{{- if .ByMonth}}

By Month
{{- range .ByMonth}}
  {{printf "%-20s" .Key}} trades={{printf "%-4d" .Stats.TotalTrades}} pl={{printf "%10.2f" .Stats.TotalPL}} win%={{printf "%5.1f" (mul100 .Stats.WinRate)}}
{{- end}}
{{- end}}
`
