package outwriter

import (
	"os"

	"github.com/huangsam/busfactor/internal/contract"
	"golang.org/x/term"
)

// GetMaxTablePathWidth calculates the maximum width for author names in
// table output based on terminal width.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the Rank, DOA and Files Owned columns plus table
	// borders, separators, and padding.
	baseWidth := 35

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable author width
		return 15
	}
	if available > 70 {
		// Maximum width to prevent overly long names
		return 70
	}
	return available
}
