package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradetrack/journal"
	"github.com/rustyeddy/tradetrack/pkg/id"
)

var exportFlags struct {
	out        string
	limit      uint
	instrument string
	direction  string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export trades to a CSV file",
	Long: `Write (a filtered slice of) the ledger to CSV in the same column order
the database uses. Absent optional values become empty cells.

Examples:
  tracker export
  tracker export --out gold.csv --instrument XAUUSD`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	fl := exportCmd.Flags()
	fl.StringVar(&exportFlags.out, "out", "", "output path (default trades-<run-id>.csv)")
	fl.UintVar(&exportFlags.limit, "limit", 0, "max records (0 = whole ledger)")
	fl.StringVar(&exportFlags.instrument, "instrument", "", "filter by instrument")
	fl.StringVar(&exportFlags.direction, "direction", "", "filter by direction")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Query(exportFlags.limit, queryFilters(exportFlags.instrument, exportFlags.direction))
	if err != nil {
		return err
	}

	out := exportFlags.out
	if out == "" {
		out = fmt.Sprintf("trades-%s.csv", id.New())
	}
	if err := journal.ExportCSV(out, recs); err != nil {
		return err
	}

	logger.Info().Str("path", out).Int("records", len(recs)).Msg("export written")
	fmt.Printf("Wrote %d trades to %s\n", len(recs), out)
	return nil
}
