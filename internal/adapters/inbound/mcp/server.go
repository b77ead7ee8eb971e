package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewMergeGateMCPServer creates a new MCP server with the mergegate tools
// registered. repoPath is the repository the tools operate on.
func NewMergeGateMCPServer(repoPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"mergegate",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, repoPath)

	return s
}
