package cmd

import (
	"github.com/huangsam/busfactor/core"
	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/internal/outwriter"
	"github.com/spf13/cobra"
)

// methodsCmd displays the static definitions of all calculation methods.
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "Display the definitions of all calculation methods",
	Long: `Show the definitions of the available bus factor calculation methods.

No Git analysis is performed - this is purely informational.

Examples:
  # Show method definitions
  busfactor methods

  # As JSON for tooling
  busfactor methods --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.PrintMethodDefinitions(cfg, core.MethodDefinitions()); err != nil {
			contract.LogFatal("Cannot display methods", err)
		}
	},
}
