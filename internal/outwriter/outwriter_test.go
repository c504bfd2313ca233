package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/busfactor/internal/contract"
	busparquet "github.com/huangsam/busfactor/internal/parquet"
	"github.com/huangsam/busfactor/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport returns a small ranked report for writer tests.
func sampleReport() *schema.Report {
	owner := "Alice"
	ratio := 0.75
	return &schema.Report{
		Summary: schema.ReportSummary{
			BusFactor:            2,
			TotalFiles:           4,
			TotalContributors:    3,
			CriticalContributors: []string{"Alice", "Bob"},
		},
		Analysis: schema.ReportAnalysis{
			Method:              string(schema.StandardMethod),
			Description:         "Ownership from current blame line counts.",
			FinalOwnerlessRatio: &ratio,
			Threshold:           0.5,
		},
		TopContributors: []schema.ContributorRank{
			{Author: "Alice", DegreeOfAuthorship: "50.00%", FilesOwned: 2},
			{Author: "Bob", DegreeOfAuthorship: "25.00%", FilesOwned: 1},
		},
		FileOwnership: map[string]*string{
			"core/a.go": &owner,
			"legacy.go": nil,
		},
		Interpretation: schema.RiskInterpretation{
			Risk:           schema.HighRisk,
			Message:        "Two contributors hold most of the knowledge.",
			Recommendation: "Broaden review ownership.",
		},
		Errors: []string{},
	}
}

// textConfig returns a plain-text config writing to the given file.
func textConfig(outputFile string) *contract.Config {
	return &contract.Config{
		Output:     schema.TextOut,
		OutputFile: outputFile,
		Width:      120,
		UseEmojis:  false,
		UseColors:  false,
	}
}

// TestWriteReportJSON tests the JSON output shape.
func TestWriteReportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	cfg := textConfig(path)
	cfg.Output = schema.JSONOut

	require.NoError(t, WriteReport(cfg, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded schema.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Summary.BusFactor)
	assert.Len(t, decoded.TopContributors, 2)
	require.NotNil(t, decoded.Analysis.FinalOwnerlessRatio)
	assert.InDelta(t, 0.75, *decoded.Analysis.FinalOwnerlessRatio, 1e-9)
	assert.Nil(t, decoded.FileOwnership["legacy.go"])
}

// TestWriteReportCSV tests the CSV ranking output.
func TestWriteReportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	cfg := textConfig(path)
	cfg.Output = schema.CSVOut

	require.NoError(t, WriteReport(cfg, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Rank,Author,DOA,FilesOwned,BusFactor,Risk", lines[0])
	assert.Equal(t, "1,Alice,50.00%,2,2,HIGH", lines[1])
	assert.Equal(t, "2,Bob,25.00%,1,2,HIGH", lines[2])
}

// TestWriteReportTable tests the human-readable output blocks.
func TestWriteReportTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	cfg := textConfig(path)

	require.NoError(t, WriteReport(cfg, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Bus Factor: 2 (HIGH)")
	assert.NotContains(t, out, "🚌")
	assert.Contains(t, out, "Files: 4 | Contributors: 3 | Method: standard")
	assert.Contains(t, out, "Critical: Alice, Bob")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Ownerless files (1):")
	assert.Contains(t, out, "legacy.go")
	assert.NotContains(t, out, "Collection errors")
}

// TestWriteReportTableBlocks tests conditional summary blocks.
func TestWriteReportTableBlocks(t *testing.T) {
	t.Run("emojis when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := textConfig("")
		cfg.UseEmojis = true
		writeSummaryBlock(&buf, cfg, sampleReport())
		assert.Contains(t, buf.String(), "🚌 Bus Factor: 2")
	})

	t.Run("errors block lists failures", func(t *testing.T) {
		var buf bytes.Buffer
		report := sampleReport()
		report.Errors = []string{"a.go: blame failed: exit status 128"}
		writeErrorsBlock(&buf, report)
		assert.Contains(t, buf.String(), "Collection errors (1):")
		assert.Contains(t, buf.String(), "a.go: blame failed")
	})

	t.Run("ownerless block caps the listing", func(t *testing.T) {
		var buf bytes.Buffer
		report := sampleReport()
		report.FileOwnership = map[string]*string{}
		for i := range 14 {
			report.FileOwnership[strings.Repeat("f", i+1)+".go"] = nil
		}
		writeOwnerlessBlock(&buf, report)
		assert.Contains(t, buf.String(), "Ownerless files (14):")
		assert.Contains(t, buf.String(), "... and 4 more")
	})

	t.Run("ownerless block absent when all files owned", func(t *testing.T) {
		var buf bytes.Buffer
		owner := "Alice"
		report := sampleReport()
		report.FileOwnership = map[string]*string{"a.go": &owner}
		writeOwnerlessBlock(&buf, report)
		assert.Empty(t, buf.String())
	})
}

// TestWriteReportTableAbbreviatesAuthors tests compact name formatting
// in the author column.
func TestWriteReportTableAbbreviatesAuthors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	cfg := textConfig(path)

	report := sampleReport()
	report.TopContributors = []schema.ContributorRank{
		{Author: "Samuel Huang", DegreeOfAuthorship: "50.00%", FilesOwned: 2},
		{Author: "dependabot[bot]", DegreeOfAuthorship: "25.00%", FilesOwned: 1},
	}

	require.NoError(t, WriteReport(cfg, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Samuel H")
	assert.NotContains(t, out, "Samuel Huang")
	assert.Contains(t, out, "dependabot[bot]")
}

// TestWriteReportParquet tests that parquet output produces the ranking
// file plus the companion ownership file.
func TestWriteReportParquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.parquet")
	cfg := textConfig(path)
	cfg.Output = schema.ParquetOut

	require.NoError(t, WriteReport(cfg, sampleReport()))

	contributors, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := parquet.Read[busparquet.ContributorRow](bytes.NewReader(contributors), int64(len(contributors)))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Author)

	ownershipPath := filepath.Join(dir, "report_ownership.parquet")
	ownership, err := os.ReadFile(ownershipPath)
	require.NoError(t, err)
	ownerRows, err := parquet.Read[busparquet.FileOwnershipRow](bytes.NewReader(ownership), int64(len(ownership)))
	require.NoError(t, err)
	require.Len(t, ownerRows, 2)

	byPath := make(map[string]*string, len(ownerRows))
	for _, r := range ownerRows {
		byPath[r.FilePath] = r.Owner
	}
	require.NotNil(t, byPath["core/a.go"])
	assert.Equal(t, "Alice", *byPath["core/a.go"])
	assert.Nil(t, byPath["legacy.go"])
}

// TestOwnershipParquetPath tests companion file naming.
func TestOwnershipParquetPath(t *testing.T) {
	assert.Equal(t, "report_ownership.parquet", OwnershipParquetPath("report.parquet"))
	assert.Equal(t, "out/bf_ownership.parquet", OwnershipParquetPath("out/bf.parquet"))
	assert.Equal(t, "noext_ownership", OwnershipParquetPath("noext"))
}

// TestSavedNotice tests the emoji toggle on the post-write message.
func TestSavedNotice(t *testing.T) {
	assert.Equal(t, "💾 Wrote CSV to out.csv", savedNotice(true, "Wrote CSV", "out.csv"))
	assert.Equal(t, "Wrote CSV to out.csv", savedNotice(false, "Wrote CSV", "out.csv"))
}

// TestWriteReportParquetRequiresFile tests the parquet file requirement.
func TestWriteReportParquetRequiresFile(t *testing.T) {
	cfg := textConfig("")
	cfg.Output = schema.ParquetOut

	err := WriteReport(cfg, sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file is required")
}

// TestGetMaxTablePathWidth tests width clamping.
func TestGetMaxTablePathWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "narrow override clamps to minimum", width: 40, want: 15},
		{name: "wide override clamps to maximum", width: 200, want: 70},
		{name: "mid override passes through", width: 100, want: 65},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tc.width}
			assert.Equal(t, tc.want, GetMaxTablePathWidth(cfg))
		})
	}
}
