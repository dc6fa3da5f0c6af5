package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/projectinfo/internal/application"
)

// NewProjectInfoMCPServer creates an MCP server exposing the modules report of the
// Maven project rooted at projectPath as a tool and as resources. Every request
// runs through svc.
func NewProjectInfoMCPServer(projectPath string, svc *application.ModulesService) *server.MCPServer {
	s := server.NewMCPServer(
		"projectinfo",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, svc)
	registerResources(s, projectPath, svc)

	return s
}
