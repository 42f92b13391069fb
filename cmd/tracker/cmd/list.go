package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listFlags struct {
	limit      uint
	instrument string
	direction  string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved trades, newest first",
	Long: `List trades from the ledger, newest first. Filters are equalities and
combine with AND.

Examples:
  tracker list
  tracker list --limit 20 --instrument XAUUSD
  tracker list --direction Short`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	fl := listCmd.Flags()
	fl.UintVar(&listFlags.limit, "limit", 0, "max records (0 uses the configured default)")
	fl.StringVar(&listFlags.instrument, "instrument", "", "filter by instrument")
	fl.StringVar(&listFlags.direction, "direction", "", "filter by direction")
	rootCmd.AddCommand(listCmd)
}

func queryFilters(instrument, direction string) map[string]string {
	filters := map[string]string{}
	if instrument != "" {
		filters["instrument"] = instrument
	}
	if direction != "" {
		filters["direction"] = direction
	}
	return filters
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	limit := listFlags.limit
	if limit == 0 {
		limit = cfg.QueryLimit
	}
	recs, err := store.Query(limit, queryFilters(listFlags.instrument, listFlags.direction))
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no trades")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tINSTRUMENT\tDIR\tENTRY\tSTOP\tTARGET\tEXIT\tLOTS\tP/L (USD)")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%g\t%s\t%s\t%s\t%g\t%s\n",
			r.ID,
			r.Timestamp.Format("2006-01-02 15:04"),
			r.Instrument,
			r.Direction,
			r.Entry,
			cell(r.Stop, "%g"),
			cell(r.Target, "%g"),
			cell(r.Exit, "%g"),
			r.Lots,
			cell(r.RealizedUSD, "$%.2f"),
		)
	}
	return w.Flush()
}

func cell(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
