// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
)

// WriteReport renders a bus factor report using the configured output format.
func WriteReport(cfg *contract.Config, report *schema.Report) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(cfg, report); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(cfg, report); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquet(cfg, report); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeReportTable(cfg, report)
	}
	return nil
}
