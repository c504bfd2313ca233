package contract

import (
	"context"
	"time"

	"github.com/huangsam/busfactor/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of GitClient for testing.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// GetRepoHash implements the GitClient interface.
func (m *MockGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	hash, _ := ret.Get(0).(string)
	return hash, ret.Error(1)
}

// ListFilesAtRef implements the GitClient interface.
func (m *MockGitClient) ListFilesAtRef(ctx context.Context, repoPath string, ref string) ([]string, error) {
	ret := m.Called(ctx, repoPath, ref)
	files, _ := ret.Get(0).([]string)
	return files, ret.Error(1)
}

// GetBlameSummary implements the GitClient interface.
func (m *MockGitClient) GetBlameSummary(ctx context.Context, repoPath string, path string, ref string) (map[string]int, error) {
	ret := m.Called(ctx, repoPath, path, ref)
	counts, _ := ret.Get(0).(map[string]int)
	return counts, ret.Error(1)
}

// GetFileCommitLog implements the GitClient interface.
func (m *MockGitClient) GetFileCommitLog(ctx context.Context, repoPath string, path string, since, until time.Time) ([]schema.CommitRecord, error) {
	ret := m.Called(ctx, repoPath, path, since, until)
	records, _ := ret.Get(0).([]schema.CommitRecord)
	return records, ret.Error(1)
}
