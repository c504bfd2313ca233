package core

import "github.com/huangsam/busfactor/schema"

// ComputeDOA computes each contributor's degree of ownership from the
// ownership map: the fraction of all files they dominantly own. Files
// without an owner count toward the denominator but toward no
// contributor. Returns an empty map when there are zero files.
func ComputeDOA(ownership schema.FileOwnership) schema.ContributorDOA {
	return ComputeWeightedDOA(ownership, nil)
}

// ComputeWeightedDOA is the decay-path variant of ComputeDOA. When a
// weighted authorship map is supplied, every contributor appearing in it
// is ranked (owned files or not) and their summed weighted line counts
// are carried as recent and total contributions. TotalContributions
// currently mirrors RecentContributions.
func ComputeWeightedDOA(ownership schema.FileOwnership, authorship schema.FileAuthorship) schema.ContributorDOA {
	doa := make(schema.ContributorDOA)
	totalFiles := len(ownership)
	if totalFiles == 0 {
		return doa
	}

	owned := make(map[string]int)
	for _, owner := range ownership {
		if owner != "" {
			owned[owner]++
		}
	}

	contributions := make(map[string]float64)
	for _, lines := range authorship {
		for author, count := range lines {
			contributions[author] += count
		}
	}
	for author := range contributions {
		if _, ok := owned[author]; !ok {
			owned[author] = 0
		}
	}

	for author, files := range owned {
		doa[author] = schema.ContributorStats{
			DOA:                 float64(files) / float64(totalFiles),
			FilesOwned:          files,
			RecentContributions: contributions[author],
			TotalContributions:  contributions[author],
		}
	}
	return doa
}
