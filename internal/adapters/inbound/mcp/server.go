package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewModsentryMCPServer creates a new MCP server with all ModSentry tools
// and resources registered. workDir is where config, history and the
// knowledge store live.
func NewModsentryMCPServer(workDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"modsentry",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workDir)
	registerResources(s, workDir)

	return s
}
