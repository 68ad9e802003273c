package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// ExportCSV serializes the ledger to CSV with a header row. Numeric fields
// are rounded to 2 decimal places.
func ExportCSV(items []LineItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Description", "Quantity", "Unit", "Unit Price", "Total"}); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.Description,
			strconv.FormatFloat(Round2(item.Quantity), 'f', 2, 64),
			item.Unit,
			strconv.FormatFloat(Round2(item.UnitPrice), 'f', 2, 64),
			strconv.FormatFloat(Round2(item.Total), 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
