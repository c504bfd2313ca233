package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/busfactor/core"
	"github.com/huangsam/busfactor/internal/contract"
	"github.com/huangsam/busfactor/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGetBusFactor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if m := request.GetString("method", ""); m != "" {
		method := schema.MethodName(m)
		if _, ok := schema.ValidMethods[method]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown calculation method %q", m)), nil
		}
		cfg.Method = method
	}
	if r, ok := request.GetArguments()["decay_rate"]; ok {
		rate := request.GetFloat("decay_rate", 0)
		if rate < 0 {
			return mcp.NewToolResultError(fmt.Sprintf("decay_rate cannot be negative (received %v)", r)), nil
		}
		cfg.DecayRate = rate
	}
	if v, ok := request.GetArguments()["threshold"]; ok {
		threshold := request.GetFloat("threshold", 0)
		if threshold <= 0 || threshold >= 1 {
			return mcp.NewToolResultError(fmt.Sprintf("threshold must be strictly between 0 and 1 (received %v)", v)), nil
		}
		cfg.Threshold = threshold
	}

	report, err := core.GetBusFactorReport(core.WithSuppressHeader(ctx), cfg, h.client, h.mgr, contract.NopObserver{})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
