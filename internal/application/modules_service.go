package application

import (
	"fmt"
	"path/filepath"

	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/openkraft/projectinfo/internal/domain/modules"
)

// ModulesService orchestrates the modules report:
// load config → load root descriptor → build reactor → resolve modules → render rows.
type ModulesService struct {
	configLoader domain.ConfigLoader
	descriptors  domain.DescriptorLoader
	reactor      domain.ReactorBuilder
	labels       domain.LabelCatalog
	git          domain.GitInfo
	logger       domain.Logger
}

func NewModulesService(
	configLoader domain.ConfigLoader,
	descriptors domain.DescriptorLoader,
	reactor domain.ReactorBuilder,
	labels domain.LabelCatalog,
	git domain.GitInfo,
	logger domain.Logger,
) *ModulesService {
	return &ModulesService{
		configLoader: configLoader,
		descriptors:  descriptors,
		reactor:      reactor,
		labels:       labels,
		git:          git,
		logger:       logger,
	}
}

// LoadConfig resolves the project settings and applies caller overrides on top.
func (s *ModulesService) LoadConfig(projectPath string, overrides domain.ConfigOverrides) (domain.ReportConfig, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.ReportConfig{}, fmt.Errorf("loading config: %w", err)
	}
	cfg = overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return domain.ReportConfig{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// LoadProject reads the descriptor in projectPath.
func (s *ModulesService) LoadProject(projectPath string) (*domain.Project, error) {
	p, err := s.descriptors.Load(filepath.Join(projectPath, domain.DescriptorFile))
	if err != nil {
		return nil, fmt.Errorf("loading project descriptor: %w", err)
	}
	return p, nil
}

// Generate renders the modules report of the project in projectPath into sink and
// returns the root project. It returns domain.ErrReportSkipped, with the project,
// when the report is suppressed.
func (s *ModulesService) Generate(projectPath string, cfg domain.ReportConfig, sink domain.Sink) (*domain.Project, error) {
	project, err := s.LoadProject(projectPath)
	if err != nil {
		return nil, err
	}
	if !modules.CanGenerate(project, cfg) {
		return project, domain.ErrReportSkipped
	}

	var reactor []*domain.Project
	if cfg.Reactor {
		reactor, err = s.reactor.Build(project)
		if err != nil {
			return nil, fmt.Errorf("building reactor: %w", err)
		}
	}

	s.stampCommit(projectPath, sink)

	resolver := modules.NewResolver(reactor, s.descriptors, s.logger)
	renderer := modules.NewRenderer(sink, s.labels.Labels(cfg.Locale), resolver, cfg)
	if err := renderer.Render(project); err != nil {
		return nil, fmt.Errorf("rendering modules report: %w", err)
	}
	return project, nil
}

func (s *ModulesService) stampCommit(projectPath string, sink domain.Sink) {
	stamper, ok := sink.(domain.CommitStamper)
	if !ok || s.git == nil {
		return
	}
	hash, err := s.git.CommitHash(projectPath)
	if err != nil {
		s.logger.Debug("no commit hash for report", "path", projectPath, "err", err)
		return
	}
	stamper.SetCommitHash(hash)
}
