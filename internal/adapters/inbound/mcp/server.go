package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewItemSetFixMCPServer creates an MCP server with all itemsetfix tools and
// resources registered. The championsPath is the champions directory runs
// operate on.
func NewItemSetFixMCPServer(championsPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"itemsetfix",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, championsPath)
	registerResources(s, championsPath)

	return s
}
