package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/projectinfo/internal/adapters/outbound/sink"
	"github.com/openkraft/projectinfo/internal/application"
	"github.com/openkraft/projectinfo/internal/domain"
)

// registerTools registers the projectinfo MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, svc *application.ModulesService) {
	s.AddTool(
		mcplib.NewTool("projectinfo_modules",
			mcplib.WithDescription("Returns the modules report of the Maven project: every declared module with its coordinates and site link"),
			mcplib.WithString("format", mcplib.Description("Output format: markdown, html or json (default: markdown)")),
			mcplib.WithString("locale", mcplib.Description("Label locale, e.g. en-US, fr, de")),
			mcplib.WithBoolean("coordinates", mcplib.Description("Include groupId, artifactId, version and type columns")),
			mcplib.WithBoolean("central_links", mcplib.Description("Link coordinates to the package index")),
			mcplib.WithBoolean("include_parent", mcplib.Description("Append a row for the parent project")),
		),
		handleModules(projectPath, svc),
	)

	s.AddTool(
		mcplib.NewTool("projectinfo_project",
			mcplib.WithDescription("Returns the effective project descriptor (coordinates, site URL, declared modules) as JSON"),
		),
		handleProject(projectPath, svc),
	)
}

func handleModules(projectPath string, svc *application.ModulesService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		format, _ := args["format"].(string)
		if format == "" {
			format = "markdown"
		}
		var out domain.DocumentSink
		switch format {
		case "markdown", "md":
			out = sink.NewMarkdown()
		case "html":
			out = sink.NewHTML()
		case "json":
			out = sink.NewJSON()
		default:
			return errorResult(fmt.Sprintf("unknown format %q (valid: markdown, html, json)", format)), nil
		}

		var overrides domain.ConfigOverrides
		if locale, ok := args["locale"].(string); ok && locale != "" {
			overrides.Locale = &locale
		}
		overrides.Modules.ReportCoordinates = boolArg(args, "coordinates")
		overrides.Modules.CentralLinks = boolArg(args, "central_links")
		overrides.Modules.IncludeParent = boolArg(args, "include_parent")

		cfg, err := svc.LoadConfig(projectPath, overrides)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if _, err := svc.Generate(projectPath, cfg, out); err != nil {
			if errors.Is(err, domain.ErrReportSkipped) {
				return textResult(err.Error()), nil
			}
			return errorResult(fmt.Sprintf("modules report failed: %v", err)), nil
		}

		var b strings.Builder
		if _, err := out.WriteTo(&b); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
		return textResult(b.String()), nil
	}
}

func handleProject(projectPath string, svc *application.ModulesService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		project, err := svc.LoadProject(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(project)
	}
}

func boolArg(args map[string]any, key string) *bool {
	v, ok := args[key].(bool)
	if !ok {
		return nil
	}
	return &v
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
