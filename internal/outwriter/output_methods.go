package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
)

// PrintMethodDefinitions renders the static calculation method definitions
// using the configured output format.
func PrintMethodDefinitions(cfg *contract.Config, defs []schema.MethodDefinition) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			header := []string{"Method", "Description"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, d := range defs {
					if err := cw.Write([]string{d.Name, d.Description}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			for _, d := range defs {
				fmt.Fprintf(w, "%s\n  %s\n", d.Name, d.Description)
			}
			return nil
		}, "Wrote methods")
	}
}
