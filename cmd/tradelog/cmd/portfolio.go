package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show or adjust the portfolio balance",
	Long: `Manage the portfolio balance ledger.

The current balance is always starting capital plus the sum of trade P/L
plus the sum of manual adjustments.

Subcommands:
  show         - Display capital, balance, and adjustments
  set-capital  - Set the starting capital baseline
  adjust       - Record a manual balance adjustment (deposit/withdrawal)

Examples:
  tradelog portfolio show
  tradelog portfolio set-capital 25000
  tradelog portfolio adjust --note "withdrawal" -- -500`,
	RunE: runPortfolioShow,
}

var portfolioShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display capital, balance, and adjustments",
	Args:  cobra.NoArgs,
	RunE:  runPortfolioShow,
}

var portfolioSetCapitalCmd = &cobra.Command{
	Use:   "set-capital <amount>",
	Short: "Set the starting capital baseline",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortfolioSetCapital,
}

var portfolioAdjustCmd = &cobra.Command{
	Use:   "adjust <amount>",
	Short: "Record a manual balance adjustment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortfolioAdjust,
}

var adjustNote string

func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.AddCommand(portfolioShowCmd)
	portfolioCmd.AddCommand(portfolioSetCapitalCmd)
	portfolioCmd.AddCommand(portfolioAdjustCmd)

	portfolioAdjustCmd.Flags().StringVar(&adjustNote, "note", "", "what this adjustment is for")
}

func runPortfolioShow(cmd *cobra.Command, args []string) error {
	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	p := e.store.Portfolio()
	fmt.Printf("Starting Capital: %.2f %s\n", p.StartingCapital, e.cfg.Portfolio.Currency)
	fmt.Printf("Current Balance:  %.2f %s\n", p.CurrentBalance, e.cfg.Portfolio.Currency)

	adjustments := e.store.Adjustments()
	if len(adjustments) > 0 {
		fmt.Println("\nAdjustments:")
		for _, a := range adjustments {
			fmt.Printf("  %s  %+10.2f  %s\n", a.Time.Format("2006-01-02"), a.Amount, a.Note)
		}
	}
	return nil
}

func runPortfolioSetCapital(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bad amount %q: %w", args[0], err)
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := e.store.SetStartingCapital(amount); err != nil {
		return err
	}

	fmt.Printf("✓ Starting capital set to %.2f\n", amount)
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}

func runPortfolioAdjust(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bad amount %q: %w", args[0], err)
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := e.store.AddAdjustment(amount, adjustNote); err != nil {
		return err
	}

	fmt.Printf("✓ Recorded adjustment %+.2f\n", amount)
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}
