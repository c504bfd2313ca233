// Package cmd defines the command-line interface for busfactor.
package cmd

import (
	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("method", "m", string(schema.StandardMethod), "Calculation method: standard or decay")
	rootCmd.PersistentFlags().Float64("decay-rate", schema.DefaultDecayRate, "Yearly exponential decay rate for the decay method")
	rootCmd.PersistentFlags().Int("window", schema.DefaultWindowDays, "Commit history lookback in days for the decay method")
	rootCmd.PersistentFlags().Float64("threshold", schema.DefaultThreshold, "Ownerless-file ratio that must be exceeded to stop the removal simulation")
	rootCmd.PersistentFlags().String("ref", "HEAD", "Git reference to analyze")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Filter files by path prefix")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("progress", false, "Print collection progress to stderr")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
