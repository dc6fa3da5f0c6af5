package domain

import "strings"

// DescriptorFile is the per-module descriptor read when a module is not in the reactor.
const DescriptorFile = "pom.xml"

// Project is a resolved project descriptor.
type Project struct {
	Name        string   `json:"name,omitempty"`
	GroupID     string   `json:"group_id,omitempty"`
	ArtifactID  string   `json:"artifact_id,omitempty"`
	Version     string   `json:"version,omitempty"`
	Packaging   string   `json:"packaging,omitempty"`
	Description string   `json:"description,omitempty"`
	BaseDir     string   `json:"base_dir,omitempty"`
	SiteURL     string   `json:"site_url,omitempty"`
	Modules     []string `json:"modules,omitempty"`
}

// DisplayName returns the project name, falling back to the artifact id.
func (p *Project) DisplayName() string {
	if p.Name == "" {
		return p.ArtifactID
	}
	return p.Name
}

// HasModules reports whether the project declares at least one module.
func (p *Project) HasModules() bool {
	return len(p.Modules) > 0
}

// IsSample reports whether the project is a sample module that is left out of the
// modules table.
// TODO: replace the artifact id substring match with an explicit per-module opt-out.
func (p *Project) IsSample() bool {
	return strings.Contains(p.ArtifactID, "sample")
}

// PlaceholderProject stands in for a declared module that is neither in the reactor nor
// on disk. Its site URL is the module path so the row still links somewhere plausible.
func PlaceholderProject(moduleRef string) *Project {
	return &Project{
		Name:    moduleRef,
		SiteURL: moduleRef,
	}
}
