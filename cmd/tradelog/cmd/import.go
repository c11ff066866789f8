package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import trades from a CSV file",
	Long: `Import trades from a CSV broker statement.

Headers are matched case-insensitively and common aliases are accepted
(Symbol, Qty, P&L, ...). Only date and ticker are required per row; rows
missing either are skipped and counted, the rest of the batch continues.
Missing quantity defaults to 1 and a missing fees column is filled from the
configured per-contract brokerage fee.

Compressed statements work too: .csv.gz, .csv.xz, and .zip.

Example:
  tradelog import statements/2026-q2.zip`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := journal.ImportFile(args[0], journal.ImportOptions{
		DefaultFeePerContract: e.cfg.Import.DefaultFeePerContract,
		Logger:                e.log,
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	added, skipped := e.store.ImportTrades(res.Trades)
	skipped += res.Skipped

	fmt.Printf("✓ Imported %d trades (%d rows skipped)\n", added, skipped)
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}
