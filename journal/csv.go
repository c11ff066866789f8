package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ExportColumns is the fixed export column order. Import accepts any subset
// of these (plus common aliases) in any order.
var ExportColumns = []string{
	"date", "ticker", "strategy", "option_type", "strike", "expiration",
	"quantity", "entry_price", "exit_price", "premium", "fees", "net_pl",
	"outcome", "delta", "gamma", "theta", "vega", "notes",
	"created_at", "updated_at",
}

const dateLayout = "2006-01-02"

// ExportCSV writes trades in the fixed column order. encoding/csv handles
// RFC4180 quoting for fields containing commas or quotes.
func ExportCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportColumns); err != nil {
		return err
	}

	for _, t := range trades {
		exp := ""
		if !t.Expiration.IsZero() {
			exp = t.Expiration.Format(dateLayout)
		}
		rec := []string{
			t.Date.Format(dateLayout),
			t.Ticker,
			t.Strategy,
			t.OptionType,
			f(t.Strike),
			exp,
			f(t.Quantity),
			f(t.EntryPrice),
			f(t.ExitPrice),
			f(t.Premium),
			f(t.Fees),
			f(t.NetPL),
			t.Outcome,
			f(t.Greeks.Delta),
			f(t.Greeks.Gamma),
			f(t.Greeks.Theta),
			f(t.Greeks.Vega),
			t.Notes,
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ImportOptions tune the CSV normalizer.
type ImportOptions struct {
	// DefaultFeePerContract is applied (times quantity) when a row has no
	// fees value. Brokerage costs are negative.
	DefaultFeePerContract float64
	Logger                *zap.Logger
}

// ImportResult is the outcome of one import batch.
type ImportResult struct {
	Trades  []Trade
	Skipped int
}

// columnAliases maps normalized header names onto canonical field keys.
var columnAliases = map[string]string{
	"symbol":      "ticker",
	"stock":       "ticker",
	"underlying":  "ticker",
	"trade_date":  "date",
	"open_date":   "date",
	"type":        "option_type",
	"call_put":    "option_type",
	"qty":         "quantity",
	"contracts":   "quantity",
	"entry":       "entry_price",
	"open_price":  "entry_price",
	"exit":        "exit_price",
	"close_price": "exit_price",
	"fee":         "fees",
	"commission":  "fees",
	"pl":          "net_pl",
	"pnl":         "net_pl",
	"p&l":         "net_pl",
	"net_p&l":     "net_pl",
	"profit":      "net_pl",
	"profit_loss": "net_pl",
	"result":      "outcome",
	"win_loss":    "outcome",
	"expiry":      "expiration",
	"exp_date":    "expiration",
	"note":        "notes",
	"comment":     "notes",
}

// normalizeHeader case-folds a header cell and collapses whitespace into
// underscores, so "Entry Price", "entry_price" and " ENTRY PRICE " all key
// the same field.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.Join(strings.Fields(h), "_")
	if canon, ok := columnAliases[h]; ok {
		return canon
	}
	return h
}

// ImportCSV normalizes raw CSV text into trade records. Rows lacking a date
// or ticker are skipped, counted, and logged; the batch continues. Assigned
// IDs and timestamps are left for the store.
func ImportCSV(r io.Reader, opts ImportOptions) (ImportResult, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return ImportResult{}, nil
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("read header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = normalizeHeader(h)
	}

	var res ImportResult
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Warn("skipping malformed CSV row", zap.Int("line", line), zap.Error(err))
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("read row: %w", err)
		}

		row := map[string]string{}
		for i, v := range record {
			if i < len(cols) {
				row[cols[i]] = strings.TrimSpace(v)
			}
		}

		t, err := normalizeRow(row, opts)
		if err != nil {
			log.Warn("skipping CSV row", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Trades = append(res.Trades, t)
	}

	return res, nil
}

func normalizeRow(row map[string]string, opts ImportOptions) (Trade, error) {
	if row["ticker"] == "" {
		return Trade{}, fmt.Errorf("missing ticker")
	}
	date, err := parseDate(row["date"])
	if err != nil {
		return Trade{}, fmt.Errorf("missing or bad date: %w", err)
	}

	t := Trade{
		Date:       date,
		Ticker:     strings.ToUpper(row["ticker"]),
		Strategy:   row["strategy"],
		OptionType: row["option_type"],
		Notes:      row["notes"],
	}

	t.Strike = num(row["strike"])
	t.EntryPrice = num(row["entry_price"])
	t.ExitPrice = num(row["exit_price"])
	t.Premium = num(row["premium"])
	t.Greeks = Greeks{
		Delta: num(row["delta"]),
		Gamma: num(row["gamma"]),
		Theta: num(row["theta"]),
		Vega:  num(row["vega"]),
	}

	t.Quantity = num(row["quantity"])
	if t.Quantity == 0 {
		t.Quantity = 1
	}

	if row["fees"] != "" {
		t.Fees = num(row["fees"])
	} else {
		t.Fees = opts.DefaultFeePerContract * t.Quantity
	}

	if exp := row["expiration"]; exp != "" {
		if d, err := parseDate(exp); err == nil {
			t.Expiration = d
		}
	}

	// Recompute P/L when the row carries pricing; fall back to the
	// imported column only when there is nothing to derive it from.
	switch {
	case t.EntryPrice != 0 && t.ExitPrice != 0, t.Premium != 0:
		t.NetPL = ComputeNetPL(t)
	case row["net_pl"] != "":
		t.NetPL = num(row["net_pl"])
	default:
		t.NetPL = ComputeNetPL(t)
	}

	t.Outcome = parseOutcome(row["outcome"], t.NetPL)

	return t, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// num parses a numeric cell tolerantly, stripping currency symbols and
// thousands separators. Unparseable or absent values become 0.
func num(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return x
}

func parseOutcome(s string, netPL float64) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w", "won":
		return Win
	case "loss", "l", "lost", "lose":
		return Loss
	}
	return OutcomeFor(netPL)
}
