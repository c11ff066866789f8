package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new trade",
	Long: `Log a new options trade in the journal.

Net P/L and outcome are computed: (exit-entry)*quantity + premium + fees when
both prices are given, otherwise premium + fees. Fees are signed; enter
brokerage costs as negative numbers.

Example:
  tradelog add --ticker AAPL --date 2026-08-01 --strategy "covered call" \
    --type Call --strike 200 --qty 2 --entry 1.10 --exit 0.35 --fees -1.30`,
	RunE: runAdd,
}

var addFlags struct {
	date       string
	ticker     string
	strategy   string
	optionType string
	strike     float64
	expiration string
	quantity   float64
	entry      float64
	exit       float64
	premium    float64
	fees       float64
	delta      float64
	gamma      float64
	theta      float64
	vega       float64
	notes      string
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFlags.date, "date", "", "trade date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addFlags.ticker, "ticker", "", "ticker symbol (required)")
	addCmd.Flags().StringVar(&addFlags.strategy, "strategy", "", "strategy label")
	addCmd.Flags().StringVar(&addFlags.optionType, "type", "", "option type (Call, Put, ...)")
	addCmd.Flags().Float64Var(&addFlags.strike, "strike", 0, "strike price")
	addCmd.Flags().StringVar(&addFlags.expiration, "expiration", "", "expiration date YYYY-MM-DD")
	addCmd.Flags().Float64Var(&addFlags.quantity, "qty", 1, "number of contracts")
	addCmd.Flags().Float64Var(&addFlags.entry, "entry", 0, "entry price")
	addCmd.Flags().Float64Var(&addFlags.exit, "exit", 0, "exit price")
	addCmd.Flags().Float64Var(&addFlags.premium, "premium", 0, "premium collected or paid")
	addCmd.Flags().Float64Var(&addFlags.fees, "fees", 0, "fees (negative for costs)")
	addCmd.Flags().Float64Var(&addFlags.delta, "delta", 0, "delta at entry")
	addCmd.Flags().Float64Var(&addFlags.gamma, "gamma", 0, "gamma at entry")
	addCmd.Flags().Float64Var(&addFlags.theta, "theta", 0, "theta at entry")
	addCmd.Flags().Float64Var(&addFlags.vega, "vega", 0, "vega at entry")
	addCmd.Flags().StringVar(&addFlags.notes, "notes", "", "free-text notes")
	addCmd.MarkFlagRequired("ticker")
}

func runAdd(cmd *cobra.Command, args []string) error {
	t := journal.Trade{
		Ticker:     addFlags.ticker,
		Strategy:   addFlags.strategy,
		OptionType: addFlags.optionType,
		Strike:     addFlags.strike,
		Quantity:   addFlags.quantity,
		EntryPrice: addFlags.entry,
		ExitPrice:  addFlags.exit,
		Premium:    addFlags.premium,
		Fees:       addFlags.fees,
		Notes:      addFlags.notes,
		Greeks: journal.Greeks{
			Delta: addFlags.delta,
			Gamma: addFlags.gamma,
			Theta: addFlags.theta,
			Vega:  addFlags.vega,
		},
	}

	if addFlags.date == "" {
		t.Date = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		d, err := time.Parse("2006-01-02", addFlags.date)
		if err != nil {
			return fmt.Errorf("bad --date: %w", err)
		}
		t.Date = d
	}
	if addFlags.expiration != "" {
		d, err := time.Parse("2006-01-02", addFlags.expiration)
		if err != nil {
			return fmt.Errorf("bad --expiration: %w", err)
		}
		t.Expiration = d
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	added, err := e.store.AddTrade(t)
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	fmt.Printf("✓ Logged %s %s %s  net P/L %.2f (%s)\n",
		added.Date.Format("2006-01-02"), added.Ticker, added.OptionType, added.NetPL, added.Outcome)
	fmt.Printf("  id: %s\n", added.ID)
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}
