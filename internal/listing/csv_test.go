package listing

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading produced csv: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want header + 3 rows", len(records))
	}

	wantHeader := []string{"Name", "URL", "Description", "Rooms", "Price (EUR)", "Size (m²)", "Price per m² (EUR)"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	// first row fully populated
	if records[1][3] != "3" || records[1][4] != "300000" || records[1][6] != "3000" {
		t.Errorf("row 1 = %v", records[1])
	}

	// missing price and missing price_per_mq render as empty cells
	if records[3][4] != "" || records[3][6] != "" {
		t.Errorf("row 3 missing values not empty: %v", records[3])
	}
}

func TestWriteCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, Table{}); err != nil {
		t.Fatalf("WriteCSV on empty table: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty table should produce only the header, got %d lines", len(lines))
	}
}
