package authorship

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
)

// currentCacheVersion defines the version of the cache schema.
const currentCacheVersion = 1

// cacheTTL bounds how long a cached collection stays valid even when the
// repository hash has not changed.
const cacheTTL = 7 * 24 * time.Hour

// CachedCollect wraps Collect with an optional SQL-backed cache. When no
// store is configured the collection always runs directly.
func CachedCollect(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, obs contract.Observer) (*schema.AnalysisInput, error) {
	if mgr == nil {
		return Collect(ctx, cfg, client, obs)
	}
	store := mgr.GetActivityStore()
	if store == nil {
		return Collect(ctx, cfg, client, obs)
	}

	key := generateCacheKey(ctx, cfg, client)

	if result := checkCacheHit(store, key); result != nil {
		return result, nil
	}

	return collectAndStore(ctx, cfg, client, obs, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached result.
func checkCacheHit(store contract.CacheStore, key string) *schema.AnalysisInput {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheTTL {
			var result schema.AnalysisInput
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// collectAndStore runs the collection and stores the result in cache.
func collectAndStore(ctx context.Context, cfg *contract.Config, client contract.GitClient, obs contract.Observer, store contract.CacheStore, key string) (*schema.AnalysisInput, error) {
	result, err := Collect(ctx, cfg, client, obs)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return result, nil
}

// generateCacheKey creates a unique key based on collection parameters.
// The repository HEAD hash is included so any new commit invalidates the
// cached blame data.
func generateCacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient) string {
	repoHash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil {
		repoHash = ""
	}

	key := fmt.Sprintf("%s:%s:%s:%s:%d:%s",
		cfg.RepoPath,
		cfg.Method,
		cfg.Ref,
		cfg.PathFilter,
		cfg.WindowDays,
		repoHash,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
