package outwriter

import (
	"fmt"
	"path/filepath"

	"github.com/huangsam/busfactor/internal/contract"
)

// LogAnalysisHeader prints a concise, 2-line header for each analysis run.
func LogAnalysisHeader(cfg *contract.Config) {
	repoName := filepath.Base(cfg.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}

	if cfg.UseEmojis {
		fmt.Printf("🔎 Repo: %s (Method: %s)\n", repoName, cfg.Method)
		fmt.Printf("📌 Ref: %s | Workers: %d\n", cfg.Ref, cfg.Workers)
	} else {
		fmt.Printf("Repo: %s (Method: %s)\n", repoName, cfg.Method)
		fmt.Printf("Ref: %s | Workers: %d\n", cfg.Ref, cfg.Workers)
	}
}
