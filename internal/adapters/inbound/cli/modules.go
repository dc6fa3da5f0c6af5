package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/openkraft/projectinfo/internal/adapters/outbound/config"
	"github.com/openkraft/projectinfo/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/projectinfo/internal/adapters/outbound/i18n"
	"github.com/openkraft/projectinfo/internal/adapters/outbound/pom"
	"github.com/openkraft/projectinfo/internal/adapters/outbound/reactor"
	"github.com/openkraft/projectinfo/internal/adapters/outbound/sink"
	"github.com/openkraft/projectinfo/internal/adapters/outbound/tui"
	"github.com/openkraft/projectinfo/internal/application"
	"github.com/openkraft/projectinfo/internal/domain"
)

func newModulesCmd(opts *globalOptions) *cobra.Command {
	var (
		format        string
		outPath       string
		style         string
		width         int
		locale        string
		indexURL      string
		coordinates   bool
		centralLinks  bool
		includeParent bool
		skipEmpty     bool
		useReactor    bool
	)

	cmd := &cobra.Command{
		Use:   "modules [path]",
		Short: "Render the modules report of a Maven project",
		Long:  "Read the pom.xml in path and list every declared module with its coordinates, linked to the module sites and the public package index.",
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

			logger, err := opts.logger(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var overrides domain.ConfigOverrides
			if flags.Changed("locale") {
				overrides.Locale = &locale
			}
			if flags.Changed("index-url") {
				overrides.IndexURL = &indexURL
			}
			if flags.Changed("coordinates") {
				overrides.Modules.ReportCoordinates = &coordinates
			}
			if flags.Changed("central-links") {
				overrides.Modules.CentralLinks = &centralLinks
			}
			if flags.Changed("include-parent") {
				overrides.Modules.IncludeParent = &includeParent
			}
			if flags.Changed("skip-empty") {
				overrides.Modules.SkipEmpty = &skipEmpty
			}
			if flags.Changed("reactor") {
				overrides.Modules.Reactor = &useReactor
			}

			out, err := newDocumentSink(format, style, width)
			if err != nil {
				return err
			}

			svc := newModulesService(logger)
			cfg, err := svc.LoadConfig(absPath, overrides)
			if err != nil {
				return err
			}

			project, err := svc.Generate(absPath, cfg, out)
			if errors.Is(err, domain.ErrReportSkipped) {
				logger.Info("report skipped", "project", project.ArtifactID, "reason", "no modules declared")
				return nil
			}
			if err != nil {
				return fmt.Errorf("modules report failed: %w", err)
			}

			if outPath == "" {
				_, err := out.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := writeFile(outPath, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, markdown, html, json, preview)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&style, "style", "auto", "Glamour style for --format preview (auto, dark, light, notty)")
	cmd.Flags().IntVar(&width, "width", tui.DefaultPreviewWidth, "Word wrap width for --format preview")
	cmd.Flags().StringVar(&locale, "locale", domain.DefaultLocale, "Label locale")
	cmd.Flags().StringVar(&indexURL, "index-url", domain.DefaultIndexURL, "Package index base URL for coordinate links")
	cmd.Flags().BoolVar(&coordinates, "coordinates", true, "Report groupId, artifactId, version and type columns")
	cmd.Flags().BoolVar(&centralLinks, "central-links", true, "Link coordinates to the package index")
	cmd.Flags().BoolVar(&includeParent, "include-parent", true, "Append a row for the parent project")
	cmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "Produce no report when no modules are declared")
	cmd.Flags().BoolVar(&useReactor, "reactor", true, "Resolve modules from the reactor before reading their pom.xml")

	return cmd
}

func newModulesService(logger *log.Logger) *application.ModulesService {
	loader := pom.New()
	return application.NewModulesService(
		config.New(),
		loader,
		reactor.New(loader),
		i18n.MustLoadEmbedded(),
		gitinfo.New(),
		logger,
	)
}

func newDocumentSink(format, style string, width int) (domain.DocumentSink, error) {
	switch format {
	case "terminal":
		return tui.NewTerminal(), nil
	case "markdown", "md":
		return sink.NewMarkdown(), nil
	case "html":
		return sink.NewHTML(), nil
	case "json":
		return sink.NewJSON(), nil
	case "preview":
		p, err := tui.NewPreview(style, width)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: terminal, markdown, html, json, preview)", format)
	}
}

func writeFile(path string, out domain.DocumentSink) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := out.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
