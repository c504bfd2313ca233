// Package schema has configs, models and shared constants for all parts of busfactor.
package schema

import (
	"maps"
	"time"
)

// FileAuthorship maps file path -> contributor -> line count.
// Counts come out of blame as whole lines and become reals after
// decay weighting. Line counts are never negative.
type FileAuthorship map[string]map[string]float64

// Clone returns a deep copy of the authorship map. Derived structures are
// always built from fresh copies so repeated or comparative analyses never
// observe each other's intermediate state.
func (fa FileAuthorship) Clone() FileAuthorship {
	clone := make(FileAuthorship, len(fa))
	for path, lines := range fa {
		cloned := make(map[string]float64, len(lines))
		maps.Copy(cloned, lines)
		clone[path] = cloned
	}
	return clone
}

// Contributors returns the number of distinct contributors across all files.
func (fa FileAuthorship) Contributors() int {
	seen := make(map[string]struct{})
	for _, lines := range fa {
		for author := range lines {
			seen[author] = struct{}{}
		}
	}
	return len(seen)
}

// CommitRecord is one historical touch of a file. Multiple records per
// contributor per file are expected; only the most recent matters to
// decay weighting.
type CommitRecord struct {
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	Revision  string    `json:"revision"`
}

// FileHistory maps file path -> commit records within the lookback window.
// A file missing from the map is treated as having zero commit records.
type FileHistory map[string][]CommitRecord

// FileOwnership maps file path -> dominant owner. Ownerless files map to
// the empty string. Always rebuilt from a FileAuthorship, never mutated
// in place.
type FileOwnership map[string]string

// ContributorStats holds a single contributor's ownership figures.
// RecentContributions and TotalContributions are populated by the decay
// method only; TotalContributions currently mirrors RecentContributions
// and is reserved for lifetime-total tracking.
type ContributorStats struct {
	DOA                 float64
	FilesOwned          int
	RecentContributions float64
	TotalContributions  float64
}

// ContributorDOA maps contributor -> degree-of-ownership stats.
type ContributorDOA map[string]ContributorStats

// RemovalResult is the outcome of the contributor removal simulation.
// OwnerlessRatio is NaN when the repository has no files; callers must
// not read it as a safe or risky signal in that case.
type RemovalResult struct {
	BusFactor           int
	RemovedContributors []string
	OwnerlessRatio      float64
}

// AnalysisInput bundles the collected repository data handed to a
// calculation method. Errors carries per-file collection failures that
// did not abort the run.
type AnalysisInput struct {
	Authorship FileAuthorship `json:"authorship"`
	History    FileHistory    `json:"history,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
}

// Report is the stable output contract shared by both calculation methods.
type Report struct {
	Summary         ReportSummary      `json:"summary"`
	Analysis        ReportAnalysis     `json:"analysis"`
	TopContributors []ContributorRank  `json:"topContributors"`
	FileOwnership   map[string]*string `json:"fileOwnership"`
	Interpretation  RiskInterpretation `json:"interpretation"`
	Errors          []string           `json:"errors"`
}

// ReportSummary is the headline section of a report.
type ReportSummary struct {
	BusFactor            int      `json:"busFactor"`
	TotalFiles           int      `json:"totalFiles"`
	TotalContributors    int      `json:"totalContributors"`
	CriticalContributors []string `json:"criticalContributors"`
}

// ReportAnalysis describes how the report was produced.
// FinalOwnerlessRatio is null when the repository had no files.
type ReportAnalysis struct {
	Method              string   `json:"method"`
	Description         string   `json:"description"`
	FinalOwnerlessRatio *float64 `json:"finalOwnerlessRatio"`
	Threshold           float64  `json:"threshold"`
}

// ContributorRank is one row of the top-contributor ranking.
type ContributorRank struct {
	Author             string `json:"author"`
	DegreeOfAuthorship string `json:"degreeOfAuthorship"`
	FilesOwned         int    `json:"filesOwned"`
}

// RiskInterpretation is the qualitative read of a bus factor value.
type RiskInterpretation struct {
	Risk           RiskLevel `json:"risk"`
	Message        string    `json:"message"`
	Recommendation string    `json:"recommendation"`
}

// MethodDefinition describes one calculation method for static listings.
type MethodDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CacheStatus holds status information about the authorship cache.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
