package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/journal"
)

var statsFlags struct {
	limit      uint
	instrument string
	direction  string
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate metrics over saved trades",
	Long: `Compute total realized P/L, win rate and average win/loss, plus the
per-instrument breakdown, over a (filtered) slice of the ledger.

Examples:
  tracker stats
  tracker stats --instrument XAUUSD
  tracker stats --limit 50`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	fl := statsCmd.Flags()
	fl.UintVar(&statsFlags.limit, "limit", 0, "max records to aggregate (0 = whole ledger)")
	fl.StringVar(&statsFlags.instrument, "instrument", "", "filter by instrument")
	fl.StringVar(&statsFlags.direction, "direction", "", "filter by direction")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Query(statsFlags.limit, queryFilters(statsFlags.instrument, statsFlags.direction))
	if err != nil {
		return err
	}

	s := journal.Summarize(recs)
	fmt.Printf("Trades: %d (%d closed)\n", len(recs), s.Closed)
	fmt.Printf("Total Profit: $%.2f\n", s.TotalRealizedUSD)
	fmt.Printf("Win Rate: %.1f%% (%d W / %d L)\n", s.WinRate*100, s.Wins, s.Losses)
	fmt.Printf("Avg Win: $%.2f\n", s.AvgWin)
	fmt.Printf("Avg Loss: $%.2f\n", s.AvgLoss)

	slices := journal.ByInstrument(recs)
	if len(slices) == 0 {
		return nil
	}
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INSTRUMENT\tTRADES\tSHARE\tREALIZED (USD)")
	for _, sl := range slices {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t$%.2f\n", sl.Instrument, sl.Trades, sl.Share*100, sl.RealizedUSD)
	}
	return w.Flush()
}
