package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export trades to CSV",
	Long: `Export trades as CSV in the fixed tradelog column order, with
RFC4180 quoting. Writes to stdout unless --output is given. Filters apply
the same way as in list and stats.

Examples:
  tradelog export --output trades.csv
  tradelog export --ticker SPY > spy.csv`,
	RunE: runExport,
}

var (
	exportFilter filterFlags
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	flt, err := exportFilter.filter()
	if err != nil {
		return err
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	trades := flt.Apply(e.store.Trades())

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := journal.ExportCSV(out, trades); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput != "" {
		fmt.Printf("✓ Exported %d trades to %s\n", len(trades), exportOutput)
	}
	return nil
}
