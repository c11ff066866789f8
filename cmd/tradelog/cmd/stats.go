package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics",
	Long: `Compute and display summary statistics: win rate, profit factor,
average and largest win/loss, portfolio return, max drawdown, Sharpe, and
per-strategy/ticker/month breakdowns.

Filters restrict the trade statistics and breakdowns; portfolio metrics
always cover the full balance history.

Examples:
  tradelog stats
  tradelog stats --strategy "iron condor" --from 2026-01-01`,
	RunE: runStats,
}

var statsFilter filterFlags

func init() {
	rootCmd.AddCommand(statsCmd)
	statsFilter.register(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	flt, err := statsFilter.filter()
	if err != nil {
		return err
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	trades := flt.Apply(e.store.Trades())
	p := e.store.Portfolio()

	report := metrics.Report{
		Generated:  time.Now(),
		Stats:      metrics.Compute(trades),
		Portfolio:  metrics.ComputePortfolio(p.StartingCapital, p.CurrentBalance, e.store.BalanceHistory()),
		ByStrategy: metrics.RollupByStrategy(trades),
		ByTicker:   metrics.RollupByTicker(trades),
		ByMonth:    metrics.RollupByMonth(trades),
	}

	text, err := report.Render()
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Print(text)
	return nil
}
