// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/busfactor/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the bus factor MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Bus Factor Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	s.AddTool(mcp.NewTool("get_bus_factor",
		mcp.WithDescription("Analyze git blame data to estimate a repository's bus factor: the minimum number of contributors whose loss leaves most files without an owner."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the server's configured repository).")),
		mcp.WithString("method", mcp.Description("Calculation method (standard, decay). Defaults to 'standard'."), mcp.Enum("standard", "decay")),
		mcp.WithNumber("decay_rate", mcp.Description("Yearly exponential decay rate for the decay method.")),
		mcp.WithNumber("threshold", mcp.Description("Ownerless-file ratio that must be exceeded to stop the simulation (0-1 exclusive).")),
	), h.handleGetBusFactor)

	return s
}

// StartMCPServer starts the bus factor MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}
