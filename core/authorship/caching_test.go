package authorship

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/internal/iocache"
	"github.com/huangsam/busfactor/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestCachedCollect tests the cache wrapper around collection.
func TestCachedCollect(t *testing.T) {
	ctx := context.Background()

	t.Run("nil manager falls back to direct collection", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 1}, nil)

		input, err := CachedCollect(ctx, testConfig(), client, nil, contract.NopObserver{})

		require.NoError(t, err)
		assert.Contains(t, input.Authorship, "a.go")
	})

	t.Run("cache hit skips collection", func(t *testing.T) {
		cached := &schema.AnalysisInput{
			Authorship: schema.FileAuthorship{"cached.go": {"Alice": 7}},
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		store := &iocache.MockCacheStore{}
		store.On("Get", mock.Anything).Return(data, currentCacheVersion, time.Now().Unix(), nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetActivityStore").Return(store)

		client := &contract.MockGitClient{}
		client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)

		input, err := CachedCollect(ctx, testConfig(), client, mgr, contract.NopObserver{})

		require.NoError(t, err)
		assert.Equal(t, cached.Authorship, input.Authorship)
		client.AssertNotCalled(t, "ListFilesAtRef", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stale entry recollects and stores", func(t *testing.T) {
		stale := time.Now().Add(-8 * 24 * time.Hour).Unix()
		store := &iocache.MockCacheStore{}
		store.On("Get", mock.Anything).Return([]byte("{}"), currentCacheVersion, stale, nil)
		store.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetActivityStore").Return(store)

		client := &contract.MockGitClient{}
		client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 1}, nil)

		input, err := CachedCollect(ctx, testConfig(), client, mgr, contract.NopObserver{})

		require.NoError(t, err)
		assert.Contains(t, input.Authorship, "a.go")
		store.AssertCalled(t, "Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything)
	})

	t.Run("version mismatch recollects", func(t *testing.T) {
		store := &iocache.MockCacheStore{}
		store.On("Get", mock.Anything).Return([]byte("{}"), currentCacheVersion+1, time.Now().Unix(), nil)
		store.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetActivityStore").Return(store)

		client := &contract.MockGitClient{}
		client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 1}, nil)

		input, err := CachedCollect(ctx, testConfig(), client, mgr, contract.NopObserver{})

		require.NoError(t, err)
		assert.Contains(t, input.Authorship, "a.go")
	})

	t.Run("miss on sql.ErrNoRows recollects", func(t *testing.T) {
		store := &iocache.MockCacheStore{}
		store.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
		store.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)
		mgr := &iocache.MockCacheManager{}
		mgr.On("GetActivityStore").Return(store)

		client := &contract.MockGitClient{}
		client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 1}, nil)

		input, err := CachedCollect(ctx, testConfig(), client, mgr, contract.NopObserver{})

		require.NoError(t, err)
		assert.Contains(t, input.Authorship, "a.go")
	})
}

// TestGenerateCacheKey tests parameter and repo-state sensitivity.
func TestGenerateCacheKey(t *testing.T) {
	ctx := context.Background()
	client := &contract.MockGitClient{}
	client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)

	base := generateCacheKey(ctx, testConfig(), client)

	t.Run("stable for identical config", func(t *testing.T) {
		assert.Equal(t, base, generateCacheKey(ctx, testConfig(), client))
	})

	t.Run("method changes the key", func(t *testing.T) {
		cfg := testConfig()
		cfg.Method = schema.DecayMethod
		assert.NotEqual(t, base, generateCacheKey(ctx, cfg, client))
	})

	t.Run("ref changes the key", func(t *testing.T) {
		cfg := testConfig()
		cfg.Ref = "v1.0.0"
		assert.NotEqual(t, base, generateCacheKey(ctx, cfg, client))
	})

	t.Run("repo hash changes the key", func(t *testing.T) {
		other := &contract.MockGitClient{}
		other.On("GetRepoHash", ctx, "/repo").Return("def456", nil)
		assert.NotEqual(t, base, generateCacheKey(ctx, testConfig(), other))
	})
}
