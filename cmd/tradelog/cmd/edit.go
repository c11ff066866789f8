package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Edit an existing trade",
	Long: `Edit fields of an existing trade. Only the flags you pass change;
net P/L, outcome, and the portfolio balance are recomputed.

Example:
  tradelog edit 01J8... --exit 0.20 --fees -1.30`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var editFlags struct {
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
	notes      string
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editFlags.date, "date", "", "trade date YYYY-MM-DD")
	editCmd.Flags().StringVar(&editFlags.ticker, "ticker", "", "ticker symbol")
	editCmd.Flags().StringVar(&editFlags.strategy, "strategy", "", "strategy label")
	editCmd.Flags().StringVar(&editFlags.optionType, "type", "", "option type")
	editCmd.Flags().Float64Var(&editFlags.strike, "strike", 0, "strike price")
	editCmd.Flags().StringVar(&editFlags.expiration, "expiration", "", "expiration date YYYY-MM-DD")
	editCmd.Flags().Float64Var(&editFlags.quantity, "qty", 0, "number of contracts")
	editCmd.Flags().Float64Var(&editFlags.entry, "entry", 0, "entry price")
	editCmd.Flags().Float64Var(&editFlags.exit, "exit", 0, "exit price")
	editCmd.Flags().Float64Var(&editFlags.premium, "premium", 0, "premium collected or paid")
	editCmd.Flags().Float64Var(&editFlags.fees, "fees", 0, "fees (negative for costs)")
	editCmd.Flags().StringVar(&editFlags.notes, "notes", "", "free-text notes")
}

func runEdit(cmd *cobra.Command, args []string) error {
	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := e.store.GetTrade(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("date") {
		d, err := time.Parse("2006-01-02", editFlags.date)
		if err != nil {
			return fmt.Errorf("bad --date: %w", err)
		}
		t.Date = d
	}
	if flags.Changed("ticker") {
		t.Ticker = editFlags.ticker
	}
	if flags.Changed("strategy") {
		t.Strategy = editFlags.strategy
	}
	if flags.Changed("type") {
		t.OptionType = editFlags.optionType
	}
	if flags.Changed("strike") {
		t.Strike = editFlags.strike
	}
	if flags.Changed("expiration") {
		d, err := time.Parse("2006-01-02", editFlags.expiration)
		if err != nil {
			return fmt.Errorf("bad --expiration: %w", err)
		}
		t.Expiration = d
	}
	if flags.Changed("qty") {
		t.Quantity = editFlags.quantity
	}
	if flags.Changed("entry") {
		t.EntryPrice = editFlags.entry
	}
	if flags.Changed("exit") {
		t.ExitPrice = editFlags.exit
	}
	if flags.Changed("premium") {
		t.Premium = editFlags.premium
	}
	if flags.Changed("fees") {
		t.Fees = editFlags.fees
	}
	if flags.Changed("notes") {
		t.Notes = editFlags.notes
	}

	updated, err := e.store.UpdateTrade(t)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}

	fmt.Printf("✓ Updated %s  net P/L %.2f (%s)\n", updated.ID, updated.NetPL, updated.Outcome)
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}
