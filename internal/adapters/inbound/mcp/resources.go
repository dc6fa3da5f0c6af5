package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/projectinfo/internal/adapters/outbound/sink"
	"github.com/openkraft/projectinfo/internal/application"
	"github.com/openkraft/projectinfo/internal/domain"
)

// registerResources registers the projectinfo MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, svc *application.ModulesService) {
	// 1. projectinfo://modules - rendered modules report
	s.AddResource(
		mcplib.NewResource(
			"projectinfo://modules",
			"Modules Report",
			mcplib.WithResourceDescription("Modules report of the project rendered as Markdown"),
			mcplib.WithMIMEType("text/markdown"),
		),
		handleModulesResource(projectPath, svc),
	)

	// 2. projectinfo://project - effective root descriptor
	s.AddResource(
		mcplib.NewResource(
			"projectinfo://project",
			"Project Descriptor",
			mcplib.WithResourceDescription("Effective coordinates and declared modules of the root project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProjectResource(projectPath, svc),
	)
}

func handleModulesResource(projectPath string, svc *application.ModulesService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := svc.LoadConfig(projectPath, domain.ConfigOverrides{})
		if err != nil {
			return nil, err
		}

		md := sink.NewMarkdown()
		var text string
		_, err = svc.Generate(projectPath, cfg, md)
		switch {
		case errors.Is(err, domain.ErrReportSkipped):
			text = err.Error()
		case err != nil:
			return nil, fmt.Errorf("modules report failed: %w", err)
		default:
			text = md.String()
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "projectinfo://modules",
				MIMEType: "text/markdown",
				Text:     text,
			},
		}, nil
	}
}

func handleProjectResource(projectPath string, svc *application.ModulesService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		project, err := svc.LoadProject(projectPath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling project: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "projectinfo://project",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
