package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/projectinfo/internal/adapters/outbound/config"
	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .projectinfo.yaml configuration file",
		Long:  "Create a .projectinfo.yaml holding the default report settings, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultReportConfig())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .projectinfo.yaml")

	return cmd
}

func generateConfig(cfg domain.ReportConfig) string {
	return fmt.Sprintf(`# projectinfo configuration
# Every setting can also be given as a PROJECTINFO_* environment variable
# or a flag of the modules command.

# Public package index the coordinate links point at.
index_url: %s

# Label language (en-US, fr, de).
locale: %s

modules:
  # Add groupId, artifactId, version and type columns.
  report_coordinates: %t
  # Link coordinates to the package index.
  central_links: %t
  # Append a row for the parent project.
  include_parent: %t
  # Produce no report for projects without modules.
  skip_empty: %t
  # Resolve modules from the reactor before reading their pom.xml.
  reactor: %t
`, cfg.IndexURL, cfg.Locale,
		cfg.ReportCoordinates, cfg.CentralLinks, cfg.IncludeParent, cfg.SkipEmpty, cfg.Reactor)
}
