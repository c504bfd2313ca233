package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/huangsam/busfactor/schema"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath   string
	Ref        string
	PathFilter string
	Excludes   []string
	Workers    int

	Method     schema.MethodName
	DecayRate  float64
	WindowDays int
	Threshold  float64

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	ShowProgress bool
	UseEmojis    bool
	UseColors    bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Method         string  `mapstructure:"method"`
	DecayRate      float64 `mapstructure:"decay-rate"`
	WindowDays     int     `mapstructure:"window"`
	Threshold      float64 `mapstructure:"threshold"`
	Ref            string  `mapstructure:"ref"`
	Filter         string  `mapstructure:"filter"`
	Exclude        string  `mapstructure:"exclude"`
	Workers        int     `mapstructure:"workers"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	Progress       bool    `mapstructure:"progress"`
	Emoji          string  `mapstructure:"emoji"`
	Color          string  `mapstructure:"color"`
	CacheBackend   string  `mapstructure:"cache-backend"`
	CacheDBConnect string  `mapstructure:"cache-db-connect"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateMethodInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPathAndFilter(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-method related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.PathFilter = input.Filter
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ShowProgress = input.Progress

	cfg.Ref = strings.TrimSpace(input.Ref)
	if cfg.Ref == "" {
		cfg.Ref = "HEAD"
	}

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// Excludes: generated and binary artifacts carry no ownership signal.
	defaults := []string{
		"Cargo.lock", "go.sum", "package-lock.json", "yarn.lock", "pnpm-lock.yaml", "composer.lock", "uv.lock",
		".min.js", ".min.css",
		".jpg", ".jpeg", ".png", ".gif", ".svg", ".ico", ".mp4", ".mov", ".webm", ".mp3", ".ogg", ".pdf", ".webp",
		".DS_Store",
		"dist/", "build/", "out/", "target/", "bin/", "vendor/", "node_modules/",
	}
	cfg.Excludes = defaults

	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	return nil
}

// validateMethodInputs validates the calculation method and its tuning knobs.
// Invalid values here are fatal to the request; the analysis never starts.
func validateMethodInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Method = schema.MethodName(strings.ToLower(input.Method))
	if _, ok := schema.ValidMethods[cfg.Method]; !ok {
		return fmt.Errorf("unknown calculation method '%s'. must be standard or decay", input.Method)
	}

	if input.DecayRate < 0 {
		return fmt.Errorf("decay-rate cannot be negative (received %.2f)", input.DecayRate)
	}
	cfg.DecayRate = input.DecayRate

	if input.WindowDays < 1 {
		return fmt.Errorf("window must be at least 1 day (received %d)", input.WindowDays)
	}
	cfg.WindowDays = input.WindowDays

	if input.Threshold <= 0 || input.Threshold >= 1 {
		return fmt.Errorf("threshold must be strictly between 0 and 1 (received %.2f)", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// resolveGitPathAndFilter resolves the Git repository path and sets the implicit path filter.
func resolveGitPathAndFilter(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, statErr := os.Stat(absSearchPath)
	gitContextPath := absSearchPath
	if statErr == nil && !info.IsDir() {
		gitContextPath = filepath.Dir(absSearchPath)
	}

	gitRoot, err := client.GetRepoRoot(ctx, gitContextPath)
	if err != nil {
		return err
	}

	cfg.RepoPath = gitRoot

	if cfg.PathFilter != "" { // User-provided --filter flag takes precedence
		return nil
	}

	if absSearchPath != gitRoot {
		relativePath, err := filepath.Rel(gitRoot, absSearchPath)
		if err != nil {
			return err
		}

		if relativePath != "." {
			filter := relativePath
			if statErr == nil && info.IsDir() {
				filter += "/"
			}
			cfg.PathFilter = strings.ReplaceAll(filter, string(os.PathSeparator), "/")
		}
	}

	return nil
}
