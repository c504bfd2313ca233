package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/internal/parquet"
	"github.com/huangsam/busfactor/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeReportJSON handles opening the file and calling the JSON writer.
func writeReportJSON(cfg *contract.Config, report *schema.Report) error {
	return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSV writes the ranked contributors as CSV rows.
func writeReportCSV(cfg *contract.Config, report *schema.Report) error {
	return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
		header := []string{"Rank", "Author", "DOA", "FilesOwned", "BusFactor", "Risk"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, c := range report.TopContributors {
				record := []string{
					strconv.Itoa(i + 1),
					c.Author,
					c.DegreeOfAuthorship,
					strconv.Itoa(c.FilesOwned),
					strconv.Itoa(report.Summary.BusFactor),
					string(report.Interpretation.Risk),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeReportParquet exports the ranking in columnar form, plus a
// companion file holding the full file-to-owner map so the nullable
// owner column survives into the columnar output.
func writeReportParquet(cfg *contract.Config, report *schema.Report) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
		return parquet.WriteReportParquet(report, w)
	}, "Wrote Parquet"); err != nil {
		return err
	}
	return writeWithFile(OwnershipParquetPath(cfg.OutputFile), cfg.UseEmojis, func(w io.Writer) error {
		return parquet.WriteOwnershipParquet(report, w)
	}, "Wrote ownership Parquet")
}

// OwnershipParquetPath derives the companion ownership file name from
// the main parquet output path, e.g. report.parquet becomes
// report_ownership.parquet.
func OwnershipParquetPath(outputFile string) string {
	ext := filepath.Ext(outputFile)
	return strings.TrimSuffix(outputFile, ext) + "_ownership" + ext
}

// writeReportTable generates and writes the human-readable table plus a
// summary block.
func writeReportTable(cfg *contract.Config, report *schema.Report) error {
	return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
		writeSummaryBlock(w, cfg, report)

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Rank", "Author", "DOA", "Files Owned"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		maxWidth := GetMaxTablePathWidth(cfg)
		var data [][]string
		for i, c := range report.TopContributors {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				contract.TruncatePath(schema.AbbreviateName(c.Author), maxWidth),
				c.DegreeOfAuthorship,
				strconv.Itoa(c.FilesOwned),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		writeOwnerlessBlock(w, report)
		writeErrorsBlock(w, report)
		return nil
	}, "Wrote table")
}

// writeSummaryBlock prints the headline figures above the ranking table.
func writeSummaryBlock(w io.Writer, cfg *contract.Config, report *schema.Report) {
	riskLabel := string(report.Interpretation.Risk)
	if cfg.UseColors {
		riskLabel = contract.GetColorRiskLabel(report.Interpretation.Risk)
	}

	if cfg.UseEmojis {
		fmt.Fprintf(w, "🚌 Bus Factor: %d (%s)\n", report.Summary.BusFactor, riskLabel)
	} else {
		fmt.Fprintf(w, "Bus Factor: %d (%s)\n", report.Summary.BusFactor, riskLabel)
	}
	fmt.Fprintf(w, "Files: %d | Contributors: %d | Method: %s\n",
		report.Summary.TotalFiles, report.Summary.TotalContributors, report.Analysis.Method)
	if len(report.Summary.CriticalContributors) > 0 {
		fmt.Fprintf(w, "Critical: %s\n", strings.Join(report.Summary.CriticalContributors, ", "))
	}
	fmt.Fprintf(w, "%s %s\n\n", report.Interpretation.Message, report.Interpretation.Recommendation)
}

// writeOwnerlessBlock lists ownerless files below the table, capped so a
// large repository does not flood the terminal.
func writeOwnerlessBlock(w io.Writer, report *schema.Report) {
	const maxShown = 10

	var ownerless []string
	for path, owner := range report.FileOwnership {
		if owner == nil {
			ownerless = append(ownerless, path)
		}
	}
	if len(ownerless) == 0 {
		return
	}
	sort.Strings(ownerless)

	fmt.Fprintf(w, "\nOwnerless files (%d):\n", len(ownerless))
	for i, path := range ownerless {
		if i == maxShown {
			fmt.Fprintf(w, "  ... and %d more\n", len(ownerless)-maxShown)
			break
		}
		fmt.Fprintf(w, "  %s\n", path)
	}
}

// writeErrorsBlock prints per-file collection failures.
func writeErrorsBlock(w io.Writer, report *schema.Report) {
	if len(report.Errors) == 0 {
		return
	}
	fmt.Fprintf(w, "\nCollection errors (%d):\n", len(report.Errors))
	for _, e := range report.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
