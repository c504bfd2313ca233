package cmd

import (
	"github.com/huangsam/busfactor/core"
	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/internal/outwriter"
	"github.com/spf13/cobra"
)

// analyzeCmd performs the bus factor analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [repo-path]",
	Short: "Estimate the bus factor of a repository.",
	Long: `Analyze per-file blame data and simulate the loss of the most
dominant contributors to estimate the repository's bus factor.

The analysis:
- Resolves a dominant owner for every file from blame line counts
- Ranks contributors by the fraction of files they own
- Removes contributors one by one until most files have no owner

Calculation methods:
  standard - raw blame line counts
  decay    - line counts weighted by an exponential recency factor,
             so knowledge that has not been touched recently counts less

Examples:
  # Analyze the current repository
  busfactor analyze

  # Analyze with recency weighting over the last 18 months
  busfactor analyze --method decay --window 548

  # Tighten the failure criterion to 70% ownerless files
  busfactor analyze --threshold 0.7

  # Export the ranking to CSV for tracking
  busfactor analyze --output csv --output-file busfactor.csv

  # Analyze only a subdirectory
  busfactor analyze path/to/subdir`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		obs := outwriter.NewObserver(cfg)
		if err := core.ExecuteBusFactor(rootCtx, cfg, gitClient, cacheManager, obs); err != nil {
			contract.LogFatal("Cannot run bus factor analysis", err)
		}
	},
}
