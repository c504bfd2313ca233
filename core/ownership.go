// Package core has the bus factor calculation and removal simulation logic.
package core

import (
	"sort"

	"github.com/huangsam/busfactor/schema"
)

// ResolveOwnership determines the dominant owner of every file from its
// per-contributor line counts. A file with zero total lines, or where no
// contributor holds a strictly positive maximum, has no owner and maps
// to the empty string. The input is never mutated; the ownership map is
// always built fresh.
//
// Tie-break: contributors are visited in lexicographic order and the
// first strictly-highest count wins, so an exact tie resolves to the
// lexicographically smallest contributor. The rule is arbitrary but
// stable across runs and input orderings.
func ResolveOwnership(authorship schema.FileAuthorship) schema.FileOwnership {
	ownership := make(schema.FileOwnership, len(authorship))
	for path, lines := range authorship {
		ownership[path] = resolveFileOwner(lines)
	}
	return ownership
}

// resolveFileOwner picks the dominant contributor for a single file.
func resolveFileOwner(lines map[string]float64) string {
	var owner string
	var maxLines float64

	for _, author := range sortedContributors(lines) {
		if lines[author] > maxLines {
			maxLines = lines[author]
			owner = author
		}
	}
	return owner
}

// sortedContributors returns the contributor identifiers of a single
// file's authorship entry in lexicographic order.
func sortedContributors(lines map[string]float64) []string {
	authors := make([]string, 0, len(lines))
	for author := range lines {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	return authors
}
