package outwriter

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/huangsam/busfactor/internal/contract"
)

// ProgressObserver prints collection progress to stderr. FileProcessed
// is called from worker goroutines, so the counter is atomic.
type ProgressObserver struct {
	total     int64
	processed atomic.Int64
	useEmojis bool
}

var _ contract.Observer = &ProgressObserver{} // Compile-time check

// NewObserver returns a progress observer when enabled, otherwise the
// no-op observer.
func NewObserver(cfg *contract.Config) contract.Observer {
	if !cfg.ShowProgress {
		return contract.NopObserver{}
	}
	return &ProgressObserver{useEmojis: cfg.UseEmojis}
}

// AnalysisStarted implements the Observer interface.
func (p *ProgressObserver) AnalysisStarted(totalFiles int) {
	atomic.StoreInt64(&p.total, int64(totalFiles))
	if p.useEmojis {
		fmt.Fprintf(os.Stderr, "📂 Collecting %d files...\n", totalFiles)
	} else {
		fmt.Fprintf(os.Stderr, "Collecting %d files...\n", totalFiles)
	}
}

// FileProcessed implements the Observer interface.
func (p *ProgressObserver) FileProcessed(string) {
	done := p.processed.Add(1)
	total := atomic.LoadInt64(&p.total)
	if total > 0 && done%100 == 0 {
		fmt.Fprintf(os.Stderr, "  %d/%d files\n", done, total)
	}
}

// AnalysisCompleted implements the Observer interface.
func (p *ProgressObserver) AnalysisCompleted(busFactor int) {
	if p.useEmojis {
		fmt.Fprintf(os.Stderr, "✅ Analysis complete (bus factor %d)\n", busFactor)
	} else {
		fmt.Fprintf(os.Stderr, "Analysis complete (bus factor %d)\n", busFactor)
	}
}
