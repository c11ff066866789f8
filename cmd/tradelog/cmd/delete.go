package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Long: `Delete a trade from the journal. Its P/L is rolled back out of the
portfolio balance, exactly reversing the add.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := e.store.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("✓ Deleted %s\n", args[0])
	fmt.Printf("  balance: %.2f\n", e.store.Portfolio().CurrentBalance)
	return nil
}
