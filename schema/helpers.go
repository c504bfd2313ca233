package schema

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// FormatPercent formats a degree of ownership as "NN.NN%".
func FormatPercent(doa float64) string {
	return fmt.Sprintf("%.2f%%", doa*100)
}

// EstimateFilesOwned converts a degree of ownership back into a file count.
func EstimateFilesOwned(doa float64, totalFiles int) int {
	return int(math.Round(doa * float64(totalFiles)))
}

// cleanParts cleans a slice of name parts by trimming non-alphanumeric punctuation from ends,
// and additionally trims trailing periods for looser handling.
func cleanParts(parts []string) []string {
	var cleaned []string
	for _, p := range parts {
		cp := strings.TrimFunc(p, func(r rune) bool {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' || r == '.' {
				return false
			}
			return true
		})
		cp = strings.TrimSuffix(cp, ".")
		if cp != "" {
			cleaned = append(cleaned, cp)
		}
	}
	return cleaned
}

// AbbreviateName formats "Samuel Huang" to "Samuel H" for compact table output.
// Single-word names are returned unchanged and bot accounts are not abbreviated.
func AbbreviateName(name string) string {
	trimmedName := strings.TrimSpace(name)

	// Bot accounts (e.g., dependabot[bot]) keep their full identity.
	if strings.Contains(name, "[bot]") {
		parts := strings.Fields(trimmedName)
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
		return trimmedName
	}

	trimmedName = strings.Trim(trimmedName, "()\"'`")
	cleaned := cleanParts(strings.Fields(trimmedName))

	if len(cleaned) >= 2 {
		first := cleaned[0]
		last := []rune(cleaned[len(cleaned)-1])
		if len(last) > 0 {
			return first + " " + string(last[0])
		}
		return first
	}
	if len(cleaned) == 1 {
		return cleaned[0]
	}
	return trimmedName
}
