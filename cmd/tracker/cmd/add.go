package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/econ"
	"github.com/rustyeddy/tradetrack/journal"
)

var addFlags tradeFlags

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Price a position and save it to the ledger",
	Long: `Evaluate the position exactly as "tracker calc" does, then persist the
result as an immutable trade record. The stored derived figures are the ones
printed here; they are frozen at save time.

Example:
  tracker add --instrument XAUUSD --entry 1900 --stop 1895 --target 1910 --lots 1 --notes "london breakout"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addTradeFlags(addCmd, &addFlags)
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	in, spec, err := addFlags.inputs(cmd)
	if err != nil {
		return err
	}
	ev, err := econ.Evaluate(in, spec)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Add(ev, journal.Meta{Notes: in.Notes})
	if err != nil {
		return err
	}

	printEvaluation(ev, spec)
	fmt.Printf("\nSaved trade %d at %s\n", rec.ID, rec.Timestamp.Format("2006-01-02 15:04:05 MST"))
	return nil
}
