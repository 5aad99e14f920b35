package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/trafficgen/trafficgen/eval"
)

// writeSummaryCSV exports the per-(policy, scenario) summary table, header
// first, to a CSV file. Pure pass-through of already-computed rows.
func writeSummaryCSV(path string, table *eval.ResultsTable) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary CSV: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(eval.SummaryHeader); err != nil {
		return fmt.Errorf("writing summary CSV header: %w", err)
	}
	for _, row := range eval.SummaryRows(table) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing summary CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing summary CSV: %w", err)
	}
	return nil
}
