package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "An options trading journal",
	Long: `Tradelog is a command-line options trading journal.

It provides tools for:
  - Logging, editing, and deleting option trades
  - Win rate, profit factor, drawdown, and Sharpe statistics
  - Per-strategy, per-ticker, and per-month breakdowns
  - Tolerant CSV import (plain, gzip, xz, or zip broker statements)
  - RFC4180 CSV export and versioned JSON backup/restore
  - Portfolio balance tracking with manual adjustments`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./tradelog.yaml when present)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if _, err := os.Stat("tradelog.yaml"); err == nil {
		return config.LoadFromFile("tradelog.yaml")
	}
	return config.Default(), nil
}

// env is everything a command needs wired together.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *journal.Store
}

// openStore wires config, logger, and journal store for a command. The
// returned cleanup flushes the logger and closes the store.
func openStore() (*env, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := journal.Open(cfg.Journal.DBPath, cfg.Portfolio.StartingCapital, log)
	if err != nil {
		log.Sync()
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	cleanup := func() {
		store.Close()
		log.Sync()
	}
	return &env{cfg: cfg, log: log, store: store}, cleanup, nil
}

// filterFlags holds the shared --ticker/--strategy/--from/--to flag values.
type filterFlags struct {
	ticker   string
	strategy string
	from     string
	to       string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ticker, "ticker", "", "filter by ticker symbol")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "filter by strategy label")
	cmd.Flags().StringVar(&f.from, "from", "", "start of date range (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.to, "to", "", "end of date range (YYYY-MM-DD, inclusive)")
}

func (f *filterFlags) filter() (journal.Filter, error) {
	var flt journal.Filter
	flt.Ticker = f.ticker
	flt.Strategy = f.strategy

	if f.from != "" {
		t, err := time.Parse("2006-01-02", f.from)
		if err != nil {
			return flt, fmt.Errorf("bad --from: %w", err)
		}
		flt.From = t
	}
	if f.to != "" {
		t, err := time.Parse("2006-01-02", f.to)
		if err != nil {
			return flt, fmt.Errorf("bad --to: %w", err)
		}
		// Inclusive through the end of the named day.
		flt.To = t.Add(24*time.Hour - time.Second)
	}
	return flt, nil
}
