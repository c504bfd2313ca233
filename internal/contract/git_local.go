package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/busfactor/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRepoHash implements the GitClient interface.
func (c *LocalGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ListFilesAtRef implements the GitClient interface.
func (c *LocalGitClient) ListFilesAtRef(ctx context.Context, repoPath string, ref string) ([]string, error) {
	args := []string{
		"ls-tree", "-r", "--name-only",
		ref,
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	files := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(files) == 1 && files[0] == "" {
		return []string{}, nil
	}
	return files, nil
}

// GetBlameSummary implements the GitClient interface.
// It runs a porcelain blame and tallies the attributed line count per author.
func (c *LocalGitClient) GetBlameSummary(ctx context.Context, repoPath string, path string, ref string) (map[string]int, error) {
	args := []string{
		"blame", "--line-porcelain",
		ref,
		"--", path,
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return parseBlameSummary(out), nil
}

// parseBlameSummary counts "author" header lines in --line-porcelain output.
// Porcelain emits one such header per blamed line, so the tally equals the
// number of lines currently attributed to each author.
func parseBlameSummary(out []byte) map[string]int {
	counts := make(map[string]int)
	for line := range strings.SplitSeq(string(out), "\n") {
		if author, ok := strings.CutPrefix(line, "author "); ok {
			counts[strings.TrimSpace(author)]++
		}
	}
	return counts
}

// GetFileCommitLog implements the GitClient interface.
func (c *LocalGitClient) GetFileCommitLog(ctx context.Context, repoPath string, path string, since, until time.Time) ([]schema.CommitRecord, error) {
	args := []string{
		"log",
		"--pretty=format:%H|%an|%at",
	}
	if !since.IsZero() {
		args = append(args, "--since="+since.Format(time.RFC3339))
	}
	if !until.IsZero() {
		args = append(args, "--until="+until.Format(time.RFC3339))
	}
	args = append(args, "--", path)
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return parseCommitLog(out), nil
}

// parseCommitLog parses "hash|author|epoch" lines into commit records.
// Malformed lines are skipped rather than failing the whole file.
func parseCommitLog(out []byte) []schema.CommitRecord {
	var records []schema.CommitRecord
	for line := range strings.SplitSeq(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		epoch, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		if err != nil {
			continue
		}
		records = append(records, schema.CommitRecord{
			Revision:  parts[0],
			Author:    parts[1],
			Timestamp: time.Unix(epoch, 0),
		})
	}
	return records
}
