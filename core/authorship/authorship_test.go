package authorship

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		RepoPath: "/repo",
		Ref:      "HEAD",
		Workers:  2,
		Method:   schema.StandardMethod,
	}
}

// TestCollect tests the concurrent blame collection.
func TestCollect(t *testing.T) {
	ctx := context.Background()

	t.Run("collects all files", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go", "b.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 10}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "b.go", "HEAD").Return(map[string]int{"Bob": 5}, nil)

		input, err := Collect(ctx, testConfig(), client, contract.NopObserver{})

		require.NoError(t, err)
		assert.Equal(t, schema.FileAuthorship{
			"a.go": {"Alice": 10},
			"b.go": {"Bob": 5},
		}, input.Authorship)
		assert.Empty(t, input.Errors)
		assert.Nil(t, input.History)
		client.AssertExpectations(t)
	})

	t.Run("per-file blame failures are recorded, not fatal", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"good.go", "bad.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "good.go", "HEAD").Return(map[string]int{"Alice": 10}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "bad.go", "HEAD").Return(nil, errors.New("binary file"))

		input, err := Collect(ctx, testConfig(), client, contract.NopObserver{})

		require.NoError(t, err)
		assert.Contains(t, input.Authorship, "good.go")
		assert.NotContains(t, input.Authorship, "bad.go")
		require.Len(t, input.Errors, 1)
		assert.Contains(t, input.Errors[0], "bad.go")
	})

	t.Run("list failure is fatal", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return(nil, errors.New("not a git repository"))

		_, err := Collect(ctx, testConfig(), client, contract.NopObserver{})

		assert.Error(t, err)
	})

	t.Run("no files after filtering is fatal", func(t *testing.T) {
		cfg := testConfig()
		cfg.Excludes = []string{"vendor/"}
		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"vendor/lib.go"}, nil)

		_, err := Collect(ctx, cfg, client, contract.NopObserver{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no files found")
	})

	t.Run("path filter and excludes apply", func(t *testing.T) {
		cfg := testConfig()
		cfg.PathFilter = "pkg/"
		cfg.Excludes = []string{".min.js"}
		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return(
			[]string{"pkg/a.go", "pkg/app.min.js", "docs/readme.md"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "pkg/a.go", "HEAD").Return(map[string]int{"Alice": 1}, nil)

		input, err := Collect(ctx, cfg, client, contract.NopObserver{})

		require.NoError(t, err)
		assert.Len(t, input.Authorship, 1)
		client.AssertExpectations(t)
	})

	t.Run("decay method also gathers history", func(t *testing.T) {
		cfg := testConfig()
		cfg.Method = schema.DecayMethod
		cfg.WindowDays = 30
		records := []schema.CommitRecord{{Author: "Alice", Revision: "abc"}}

		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 10}, nil)
		client.On("GetFileCommitLog", ctx, "/repo", "a.go", mock.Anything, mock.Anything).Return(records, nil)

		input, err := Collect(ctx, cfg, client, contract.NopObserver{})

		require.NoError(t, err)
		assert.Equal(t, records, input.History["a.go"])
	})

	t.Run("history failure degrades to no records", func(t *testing.T) {
		cfg := testConfig()
		cfg.Method = schema.DecayMethod
		cfg.WindowDays = 30

		client := &contract.MockGitClient{}
		client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go"}, nil)
		client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 10}, nil)
		client.On("GetFileCommitLog", ctx, "/repo", "a.go", mock.Anything, mock.Anything).Return(nil, errors.New("log failed"))

		input, err := Collect(ctx, cfg, client, contract.NopObserver{})

		require.NoError(t, err)
		assert.Contains(t, input.Authorship, "a.go")
		assert.Empty(t, input.History["a.go"])
		assert.Empty(t, input.Errors)
	})
}

// observerRecorder captures checkpoint notifications for assertions.
type observerRecorder struct {
	contract.NopObserver
	started int
}

func (o *observerRecorder) AnalysisStarted(totalFiles int) { o.started = totalFiles }

// TestCollectObserver tests that checkpoints fire with filtered counts.
func TestCollectObserver(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Excludes = []string{"vendor/"}

	client := &contract.MockGitClient{}
	client.On("ListFilesAtRef", ctx, "/repo", "HEAD").Return([]string{"a.go", "vendor/x.go"}, nil)
	client.On("GetBlameSummary", ctx, "/repo", "a.go", "HEAD").Return(map[string]int{"Alice": 1}, nil)

	obs := &observerRecorder{}
	_, err := Collect(ctx, cfg, client, obs)

	require.NoError(t, err)
	assert.Equal(t, 1, obs.started)
}
