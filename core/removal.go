package core

import (
	"math"
	"sort"

	"github.com/huangsam/busfactor/schema"
)

// SimulateRemoval removes contributors one by one in descending-DOA order,
// recomputing the ownerless-file ratio after each removal, until the ratio
// strictly exceeds threshold. The number of removals at that point is the
// bus factor.
//
// A ratio exactly equal to threshold does not stop the loop; only a strict
// exceedance does. If every ranked contributor is removed without crossing
// the threshold, the bus factor equals the contributor count. With zero
// files the ratio is 0/0: the result carries busFactor 0, an empty removal
// list and a NaN ratio rather than a fabricated numeric risk signal.
func SimulateRemoval(doa schema.ContributorDOA, ownership schema.FileOwnership, threshold float64) schema.RemovalResult {
	if len(ownership) == 0 {
		return schema.RemovalResult{
			RemovedContributors: []string{},
			OwnerlessRatio:      math.NaN(),
		}
	}

	ranked := RankContributors(doa)
	removed := make(map[string]bool, len(ranked))
	order := make([]string, 0, len(ranked))

	ratio := ownerlessRatio(ownership, removed)
	for _, author := range ranked {
		removed[author] = true
		order = append(order, author)
		ratio = ownerlessRatio(ownership, removed)
		if ratio > threshold {
			break
		}
	}

	return schema.RemovalResult{
		BusFactor:           len(order),
		RemovedContributors: order,
		OwnerlessRatio:      ratio,
	}
}

// RankContributors returns contributors sorted by descending DOA.
// Ties keep the same lexicographic order the ownership resolver uses,
// so repeated runs over identical input produce identical rankings.
func RankContributors(doa schema.ContributorDOA) []string {
	ranked := make([]string, 0, len(doa))
	for author := range doa {
		ranked = append(ranked, author)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if doa[a].DOA != doa[b].DOA {
			return doa[a].DOA > doa[b].DOA
		}
		return a < b
	})
	return ranked
}

// ownerlessRatio counts files whose owner is gone or was never there.
func ownerlessRatio(ownership schema.FileOwnership, removed map[string]bool) float64 {
	ownerless := 0
	for _, owner := range ownership {
		if owner == "" || removed[owner] {
			ownerless++
		}
	}
	return float64(ownerless) / float64(len(ownership))
}
