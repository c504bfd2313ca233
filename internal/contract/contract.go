// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/busfactor/schema"
)

// GitClient defines the necessary operations for repository authorship analysis.
// This allows the collection logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns the output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Repository Resolution ---

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// --- Authorship Data ---

	// ListFilesAtRef returns a list of all trackable files in the repository at a specific reference.
	ListFilesAtRef(ctx context.Context, repoPath string, ref string) ([]string, error)

	// GetBlameSummary returns the per-contributor line counts for a single file at ref.
	GetBlameSummary(ctx context.Context, repoPath string, path string, ref string) (map[string]int, error)

	// GetFileCommitLog returns the commit records touching path within [since, until].
	// A zero since or until leaves that side of the window open.
	GetFileCommitLog(ctx context.Context, repoPath string, path string, since, until time.Time) ([]schema.CommitRecord, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetActivityStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// Observer receives progress notifications at well-defined analysis
// checkpoints. Implementations must be safe for concurrent FileProcessed
// calls; correctness of the analysis never depends on a listener.
type Observer interface {
	AnalysisStarted(totalFiles int)
	FileProcessed(path string)
	AnalysisCompleted(busFactor int)
}

// NopObserver discards every notification.
type NopObserver struct{}

var _ Observer = NopObserver{} // Compile-time check

// AnalysisStarted implements the Observer interface.
func (NopObserver) AnalysisStarted(int) {}

// FileProcessed implements the Observer interface.
func (NopObserver) FileProcessed(string) {}

// AnalysisCompleted implements the Observer interface.
func (NopObserver) AnalysisCompleted(int) {}
