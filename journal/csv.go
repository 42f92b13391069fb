// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the export column order, identical to the durable contract.
var csvHeader = []string{
	"timestamp", "instrument", "direction", "entry", "stop", "target", "exit", "lots",
	"contract_size", "pip_size", "quote_to_usd", "pips_to_sl", "usd_to_sl",
	"pips_to_tp", "usd_to_tp", "realized_pips", "realized_usd", "notes",
}

// WriteCSV writes records to w in the durable column order. Absent optional
// values become empty cells, never zeros.
func WriteCSV(w io.Writer, records []TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.UTC().Format(timeLayout),
			rec.Instrument,
			rec.Direction,
			f(rec.Entry),
			fo(rec.Stop),
			fo(rec.Target),
			fo(rec.Exit),
			f(rec.Lots),
			f(rec.ContractSize),
			f(rec.PipSize),
			f(rec.QuoteToUSD),
			fo(rec.PipsToSL),
			fo(rec.USDToSL),
			fo(rec.PipsToTP),
			fo(rec.USDToTP),
			fo(rec.RealizedPips),
			fo(rec.RealizedUSD),
			rec.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes records to a new file at path.
func ExportCSV(path string, records []TradeRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(file, records); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func fo(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
