package core

import (
	"math"

	"github.com/huangsam/busfactor/schema"
)

// InterpretRisk maps a bus factor onto its fixed qualitative risk level.
// A bus factor of 0 only occurs for degenerate inputs (no files or no
// ranked contributors) and is folded into CRITICAL.
func InterpretRisk(busFactor int) schema.RiskInterpretation {
	switch {
	case busFactor <= 1:
		return schema.RiskInterpretation{
			Risk:           schema.CriticalRisk,
			Message:        "Knowledge is concentrated in a single contributor; losing them orphans most of the codebase.",
			Recommendation: "Start pairing and cross-review immediately to spread ownership beyond one person.",
		}
	case busFactor == 2:
		return schema.RiskInterpretation{
			Risk:           schema.HighRisk,
			Message:        "Two contributors hold the majority of file ownership.",
			Recommendation: "Schedule knowledge-transfer sessions and broaden the review rotation.",
		}
	case busFactor <= 4:
		return schema.RiskInterpretation{
			Risk:           schema.ModerateRisk,
			Message:        "Ownership is spread across a small group of contributors.",
			Recommendation: "Keep documentation current and rotate maintenance duties across the team.",
		}
	default:
		return schema.RiskInterpretation{
			Risk:           schema.LowRisk,
			Message:        "Ownership is well distributed across the team.",
			Recommendation: "Maintain current collaboration and review practices.",
		}
	}
}

// BuildReport assembles the final structured result from the simulator's
// output. It is a thin formatting layer with no side effects: the ranking
// is truncated to the top contributors by DOA (ties keep the ranking's
// stable order), percentages are formatted, and the risk interpretation
// is derived purely from the bus factor.
func BuildReport(
	method schema.MethodName,
	description string,
	authorship schema.FileAuthorship,
	ownership schema.FileOwnership,
	doa schema.ContributorDOA,
	removal schema.RemovalResult,
	threshold float64,
	errs []string,
) *schema.Report {
	totalFiles := len(ownership)

	ranked := RankContributors(doa)
	top := ranked
	if len(top) > schema.TopContributorLimit {
		top = top[:schema.TopContributorLimit]
	}
	topContributors := make([]schema.ContributorRank, 0, len(top))
	for _, author := range top {
		stats := doa[author]
		topContributors = append(topContributors, schema.ContributorRank{
			Author:             author,
			DegreeOfAuthorship: schema.FormatPercent(stats.DOA),
			FilesOwned:         schema.EstimateFilesOwned(stats.DOA, totalFiles),
		})
	}

	fileOwnership := make(map[string]*string, totalFiles)
	for path, owner := range ownership {
		if owner == "" {
			fileOwnership[path] = nil
			continue
		}
		o := owner
		fileOwnership[path] = &o
	}

	// NaN is not representable in JSON; an undefined ratio surfaces as null.
	var finalRatio *float64
	if !math.IsNaN(removal.OwnerlessRatio) {
		r := removal.OwnerlessRatio
		finalRatio = &r
	}

	if errs == nil {
		errs = []string{}
	}

	return &schema.Report{
		Summary: schema.ReportSummary{
			BusFactor:            removal.BusFactor,
			TotalFiles:           totalFiles,
			TotalContributors:    authorship.Contributors(),
			CriticalContributors: removal.RemovedContributors,
		},
		Analysis: schema.ReportAnalysis{
			Method:              string(method),
			Description:         description,
			FinalOwnerlessRatio: finalRatio,
			Threshold:           threshold,
		},
		TopContributors: topContributors,
		FileOwnership:   fileOwnership,
		Interpretation:  InterpretRisk(removal.BusFactor),
		Errors:          errs,
	}
}
