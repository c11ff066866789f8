package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal trades",
	Long: `List trades in date-descending order, optionally filtered.

The same filter drives both this table and the stats command, so numbers
always line up.

Examples:
  tradelog list
  tradelog list --ticker SPY --from 2026-01-01 --to 2026-06-30`,
	RunE: runList,
}

var listFilter filterFlags

func init() {
	rootCmd.AddCommand(listCmd)
	listFilter.register(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	flt, err := listFilter.filter()
	if err != nil {
		return err
	}

	e, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	trades := flt.Apply(e.store.Trades())
	if len(trades) == 0 {
		fmt.Println("no trades")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTICKER\tSTRATEGY\tTYPE\tQTY\tNET P/L\tOUTCOME\tID")
	for _, t := range trades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%.2f\t%s\t%s\n",
			t.Date.Format("2006-01-02"), t.Ticker, t.Strategy, t.OptionType,
			t.Quantity, t.NetPL, t.Outcome, t.ID)
	}
	return w.Flush()
}
