// Package parquet provides data structures and functions for exporting
// bus factor reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/huangsam/busfactor/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributorRow is one ranked contributor in a report, flattened for
// columnar export.
type ContributorRow struct {
	// Rank is the 1-based position in the DOA ranking
	Rank int32 `parquet:"rank,snappy"`

	// Author is the contributor's blame identity
	Author string `parquet:"author,snappy"`

	// DegreeOfAuthorship is the fraction of files owned, 0 to 1
	DegreeOfAuthorship float64 `parquet:"degree_of_authorship,snappy"`

	// FilesOwned is the estimated count of owned files
	FilesOwned int32 `parquet:"files_owned,snappy"`

	// BusFactor and Method repeat per row so each file is self-describing
	BusFactor int32  `parquet:"bus_factor,snappy"`
	Method    string `parquet:"method,snappy"`
	Risk      string `parquet:"risk,snappy"`
}

// FileOwnershipRow is one file-to-owner pair in a report.
type FileOwnershipRow struct {
	// FilePath is the relative path to the file in the repository
	FilePath string `parquet:"file_path,snappy"`

	// Owner is the dominant contributor (nullable for ownerless files)
	Owner *string `parquet:"owner,optional,snappy"`
}

// WriteReportParquet writes the ranked contributors of a report to w.
// Each row carries the headline figures so the file is usable on its own
// in Spark, DuckDB or pandas.
func WriteReportParquet(report *schema.Report, w io.Writer) error {
	rows := BuildContributorRows(report)

	writer := parquet.NewGenericWriter[ContributorRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write contributor rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteOwnershipParquet writes the full file-ownership map to w.
func WriteOwnershipParquet(report *schema.Report, w io.Writer) error {
	rows := make([]FileOwnershipRow, 0, len(report.FileOwnership))
	for path, owner := range report.FileOwnership {
		rows = append(rows, FileOwnershipRow{FilePath: path, Owner: owner})
	}

	writer := parquet.NewGenericWriter[FileOwnershipRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write ownership rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// BuildContributorRows flattens a report's ranking into Parquet rows.
func BuildContributorRows(report *schema.Report) []ContributorRow {
	rows := make([]ContributorRow, len(report.TopContributors))
	for i, c := range report.TopContributors {
		rows[i] = ContributorRow{
			Rank:               int32(i + 1),
			Author:             c.Author,
			DegreeOfAuthorship: parsePercent(c.DegreeOfAuthorship),
			FilesOwned:         int32(c.FilesOwned),
			BusFactor:          int32(report.Summary.BusFactor),
			Method:             report.Analysis.Method,
			Risk:               string(report.Interpretation.Risk),
		}
	}
	return rows
}

// parsePercent converts a "NN.NN%" string back to its 0-1 fraction.
func parsePercent(s string) float64 {
	var pct float64
	if _, err := fmt.Sscanf(s, "%f%%", &pct); err != nil {
		return 0
	}
	return pct / 100
}
