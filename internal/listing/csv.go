package listing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the display header row, fixed for compatibility with the
// dashboard's download format.
var csvHeader = []string{
	"Name",
	"URL",
	"Description",
	"Rooms",
	"Price (EUR)",
	"Size (m²)",
	"Price per m² (EUR)",
}

// WriteCSV serializes the table as UTF-8 CSV with a header row and the
// default comma delimiter. Missing numeric values become empty cells.
func WriteCSV(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, l := range table {
		row := []string{
			l.Name,
			l.URL,
			l.Description,
			formatRooms(l.NumberOfRooms),
			formatNumber(l.PriceValueEUR),
			formatNumber(l.SizeMq),
			formatNumber(l.PricePerMq),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatRooms(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
