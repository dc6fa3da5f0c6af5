package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/openkraft/projectinfo/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the per-project settings file read from the project directory.
const FileName = ".projectinfo.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .projectinfo.yaml and
// PROJECTINFO_* environment variables.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load resolves the report settings for projectPath. Defaults are overlaid by the
// settings file, then by the environment. A missing file is not an error.
func (l *YAMLLoader) Load(projectPath string) (domain.ReportConfig, error) {
	cfg := domain.DefaultReportConfig()

	file, err := readFile(projectPath)
	if err != nil {
		return domain.ReportConfig{}, err
	}
	cfg = file.Apply(cfg)

	fromEnv, err := readEnv()
	if err != nil {
		return domain.ReportConfig{}, err
	}
	cfg = fromEnv.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return domain.ReportConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

func readFile(projectPath string) (domain.ConfigOverrides, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ConfigOverrides{}, nil
		}
		return domain.ConfigOverrides{}, err
	}

	var o domain.ConfigOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return domain.ConfigOverrides{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return o, nil
}

// overridesEnv mirrors domain.ConfigOverrides for the environment; unset
// variables leave their field nil.
type overridesEnv struct {
	ReportCoordinates *bool   `env:"PROJECTINFO_MODULES_REPORT_COORDINATES"`
	CentralLinks      *bool   `env:"PROJECTINFO_MODULES_CENTRAL_LINKS"`
	IncludeParent     *bool   `env:"PROJECTINFO_MODULES_INCLUDE_PARENT"`
	SkipEmpty         *bool   `env:"PROJECTINFO_MODULES_SKIP_EMPTY"`
	Reactor           *bool   `env:"PROJECTINFO_MODULES_REACTOR"`
	IndexURL          *string `env:"PROJECTINFO_INDEX_URL"`
	Locale            *string `env:"PROJECTINFO_LOCALE"`
}

func readEnv() (domain.ConfigOverrides, error) {
	var raw overridesEnv
	if err := env.Parse(&raw); err != nil {
		return domain.ConfigOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return domain.ConfigOverrides{
		Modules: domain.ModulesOverrides{
			ReportCoordinates: raw.ReportCoordinates,
			CentralLinks:      raw.CentralLinks,
			IncludeParent:     raw.IncludeParent,
			SkipEmpty:         raw.SkipEmpty,
			Reactor:           raw.Reactor,
		},
		IndexURL: nonEmpty(raw.IndexURL),
		Locale:   nonEmpty(raw.Locale),
	}, nil
}

// nonEmpty treats a variable set to the empty string as unset.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
