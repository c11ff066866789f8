package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Write a JSON backup of the whole journal",
	Long: `Write the full journal (trades, portfolio, adjustments, notes) to a
single versioned JSON document.

Example:
  tradelog backup journal-2026-08.json --note "pre-migration"`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore the journal from a JSON backup",
	Long: `Replace the journal contents with a backup document written by the
backup command. The document's version tag is checked first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

var (
	backupNotes   []string
	backupActions []string
)

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)

	backupCmd.Flags().StringArrayVar(&backupNotes, "note", nil, "free-text note to include (repeatable)")
	backupCmd.Flags().StringArrayVar(&backupActions, "action", nil, "follow-up action item to include (repeatable)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := e.store.WriteBackup(args[0], backupNotes, backupActions); err != nil {
		return err
	}

	fmt.Printf("✓ Backed up %d trades to %s\n", len(e.store.Trades()), args[0])
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	b, err := journal.ReadBackup(args[0])
	if err != nil {
		return err
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := e.store.Restore(b); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	fmt.Printf("✓ Restored %d trades from %s\n", len(b.Trades), args[0])
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}
