// Package authorship collects per-file blame and commit history data
// from a Git repository through a worker pool.
package authorship

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
)

// fileResult is the outcome of collecting one file. A non-empty failure
// means the file is skipped; the analysis keeps going.
type fileResult struct {
	path    string
	lines   map[string]float64
	history []schema.CommitRecord
	failure string
}

// Collect gathers blame summaries (and, for the decay method, commit
// history within the lookback window) for every trackable file at
// cfg.Ref. Per-file failures never abort the run; they surface in the
// returned input's Errors slice, sorted for stable output.
func Collect(ctx context.Context, cfg *contract.Config, client contract.GitClient, obs contract.Observer) (*schema.AnalysisInput, error) {
	files, err := client.ListFilesAtRef(ctx, cfg.RepoPath, cfg.Ref)
	if err != nil {
		return nil, fmt.Errorf("listing files at %s: %w", cfg.Ref, err)
	}

	filtered := filterFiles(files, cfg)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no files found in %s matching the current filters", cfg.RepoPath)
	}

	obs.AnalysisStarted(len(filtered))

	needHistory := cfg.Method == schema.DecayMethod
	var since time.Time
	if needHistory {
		since = time.Now().AddDate(0, 0, -cfg.WindowDays)
	}

	fileCh := make(chan string, len(filtered))
	resultCh := make(chan fileResult, len(filtered))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for f := range fileCh {
				resultCh <- collectFile(ctx, cfg, client, f, needHistory, since)
				obs.FileProcessed(f)
			}
		})
	}

	for _, f := range filtered {
		fileCh <- f
	}
	close(fileCh)

	wg.Wait()
	close(resultCh)

	input := &schema.AnalysisInput{
		Authorship: make(schema.FileAuthorship, len(filtered)),
	}
	if needHistory {
		input.History = make(schema.FileHistory, len(filtered))
	}

	for r := range resultCh {
		if r.failure != "" {
			input.Errors = append(input.Errors, r.failure)
			continue
		}
		input.Authorship[r.path] = r.lines
		if needHistory {
			input.History[r.path] = r.history
		}
	}
	sort.Strings(input.Errors)

	return input, nil
}

// collectFile retrieves the blame summary (and optionally history) for a
// single file.
func collectFile(ctx context.Context, cfg *contract.Config, client contract.GitClient, path string, needHistory bool, since time.Time) fileResult {
	counts, err := client.GetBlameSummary(ctx, cfg.RepoPath, path, cfg.Ref)
	if err != nil {
		return fileResult{path: path, failure: fmt.Sprintf("%s: blame failed: %v", path, err)}
	}

	lines := make(map[string]float64, len(counts))
	for author, n := range counts {
		lines[author] = float64(n)
	}
	result := fileResult{path: path, lines: lines}

	if needHistory {
		records, err := client.GetFileCommitLog(ctx, cfg.RepoPath, path, since, time.Time{})
		if err != nil {
			// Missing history is not fatal; the weighter treats the file
			// as having no recent touches.
			contract.LogWarn(fmt.Sprintf("history for %s", path), err)
		} else {
			result.history = records
		}
	}

	return result
}

// filterFiles applies the path filter and exclude patterns.
func filterFiles(files []string, cfg *contract.Config) []string {
	filtered := make([]string, 0, len(files))
	for _, f := range files {
		if cfg.PathFilter != "" && !strings.HasPrefix(f, cfg.PathFilter) {
			continue
		}
		if contract.ShouldIgnore(f, cfg.Excludes) {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}
