package cli

import (
	mcpadapter "github.com/openkraft/projectinfo/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the projectinfo MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start projectinfo MCP server (stdio)",
		Long:  "Start the projectinfo MCP server using stdio transport. This allows AI coding assistants to read the modules report and project descriptor.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			logger, err := opts.logger(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewProjectInfoMCPServer(projectPath, newModulesService(logger))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
