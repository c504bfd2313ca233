package core

import (
	"context"

	"github.com/huangsam/busfactor/core/authorship"
	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/internal/outwriter"
	"github.com/huangsam/busfactor/schema"
)

// RunStandardAnalysis computes a bus factor report from raw blame line
// counts. It is a pure entry point for library consumers who already
// hold an authorship map.
func RunStandardAnalysis(authorship schema.FileAuthorship) *schema.Report {
	input := &schema.AnalysisInput{Authorship: authorship}
	return standardMethod{}.Run(input, DefaultMethodConfig())
}

// RunTimeWeightedAnalysis computes a bus factor report with exponential
// recency decay applied to the authorship map.
func RunTimeWeightedAnalysis(authorship schema.FileAuthorship, history schema.FileHistory, cfg MethodConfig) *schema.Report {
	input := &schema.AnalysisInput{Authorship: authorship, History: history}
	return decayMethod{}.Run(input, cfg)
}

// ExecuteBusFactor runs the full analysis pipeline against a repository
// and writes the report to the configured output. This is the analyze
// command's entry point.
func ExecuteBusFactor(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, obs contract.Observer) error {
	report, err := GetBusFactorReport(ctx, cfg, client, mgr, obs)
	if err != nil {
		return err
	}
	return outwriter.WriteReport(cfg, report)
}

// GetBusFactorReport collects repository data and computes the report
// without rendering it. The MCP server uses this directly.
func GetBusFactorReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, obs contract.Observer) (*schema.Report, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}

	method, err := LookupMethod(cfg.Method)
	if err != nil {
		return nil, err
	}

	input, err := authorship.CachedCollect(ctx, cfg, client, mgr, obs)
	if err != nil {
		return nil, err
	}

	methodCfg := DefaultMethodConfig()
	methodCfg.DecayRate = cfg.DecayRate
	methodCfg.Threshold = cfg.Threshold

	report := method.Run(input, methodCfg)
	obs.AnalysisCompleted(report.Summary.BusFactor)
	return report, nil
}
