// Package pom loads project descriptors from Maven pom.xml files.
package pom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/openkraft/projectinfo/internal/domain/modules"
)

// ErrNotProject is returned for XML documents whose root element is not <project>.
var ErrNotProject = errors.New("not a project descriptor")

const (
	defaultParentPath = "../" + domain.DescriptorFile
	defaultPackaging  = "jar"
	maxParentDepth    = 16
)

// Loader implements domain.DescriptorLoader for pom.xml files. Group id, version,
// description, properties and the site URL are inherited from a parent pom found at
// the parent's relative path.
type Loader struct{}

func New() *Loader {
	return &Loader{}
}

// Load reads the descriptor at descriptorPath and returns its effective project.
func (l *Loader) Load(descriptorPath string) (*domain.Project, error) {
	m, err := l.effective(descriptorPath, 0)
	if err != nil {
		return nil, err
	}

	baseDir, err := modules.Canonical(filepath.Dir(descriptorPath))
	if err != nil {
		return nil, fmt.Errorf("resolving base directory of %s: %w", descriptorPath, err)
	}

	return &domain.Project{
		Name:        m.Name,
		GroupID:     m.GroupID,
		ArtifactID:  m.ArtifactID,
		Version:     m.Version,
		Packaging:   m.Packaging,
		Description: m.Description,
		BaseDir:     baseDir,
		SiteURL:     m.DistributionManagement.Site.URL,
		Modules:     m.Modules,
	}, nil
}

// effective reads path and applies parent inheritance and interpolation.
func (l *Loader) effective(path string, depth int) (*model, error) {
	if depth > maxParentDepth {
		return nil, fmt.Errorf("parent chain deeper than %d descriptors at %s", maxParentDepth, path)
	}

	m, err := read(path)
	if err != nil {
		return nil, err
	}

	if m.Parent != nil {
		if m.GroupID == "" {
			m.GroupID = m.Parent.GroupID
		}
		if m.Version == "" {
			m.Version = m.Parent.Version
		}

		parentPath, ok := locateParent(path, m.Parent.RelativePath)
		if ok {
			pm, err := l.effective(parentPath, depth+1)
			if err != nil {
				return nil, fmt.Errorf("loading parent descriptor of %s: %w", path, err)
			}
			if matchesParent(pm, m.Parent) {
				inherit(m, pm)
			}
		}
	}

	interpolate(m)

	if m.Packaging == "" {
		m.Packaging = defaultPackaging
	}
	if m.ArtifactID == "" {
		return nil, fmt.Errorf("invalid %s: missing artifactId", path)
	}
	return m, nil
}

func read(path string) (*model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	dec.CharsetReader = charset.NewReaderLabel

	var m model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.XMLName.Local != "project" {
		return nil, fmt.Errorf("parsing %s: root element <%s>: %w", path, m.XMLName.Local, ErrNotProject)
	}
	m.trim()
	return &m, nil
}

// locateParent resolves a parent relative path, which may name a directory or a file.
func locateParent(childPath, relativePath string) (string, bool) {
	if relativePath == "" {
		relativePath = defaultParentPath
	}
	p := filepath.Join(filepath.Dir(childPath), filepath.FromSlash(relativePath))

	info, err := os.Stat(p)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		p = filepath.Join(p, domain.DescriptorFile)
		if _, err := os.Stat(p); err != nil {
			return "", false
		}
	}
	return p, true
}

func matchesParent(pm *model, ref *parentRef) bool {
	if pm.ArtifactID != ref.ArtifactID {
		return false
	}
	return ref.GroupID == "" || pm.GroupID == ref.GroupID
}

// inherit fills unset child values from the effective parent. The site URL is
// inherited with the child's artifact id appended.
func inherit(child, parent *model) {
	if child.GroupID == "" {
		child.GroupID = parent.GroupID
	}
	if child.Version == "" {
		child.Version = parent.Version
	}
	if child.Description == "" {
		child.Description = parent.Description
	}

	merged := properties{}
	for k, v := range parent.Properties {
		merged[k] = v
	}
	for k, v := range child.Properties {
		merged[k] = v
	}
	child.Properties = merged

	site := &child.DistributionManagement.Site
	if site.URL == "" && parent.DistributionManagement.Site.URL != "" {
		site.URL = strings.TrimSuffix(parent.DistributionManagement.Site.URL, "/") + "/" + child.ArtifactID
	}
}

var expression = regexp.MustCompile(`\$\{([^}]+)\}`)

const maxPropertyPasses = 8

// interpolate replaces ${...} expressions with model values and properties.
// Unknown expressions are left as written.
func interpolate(m *model) {
	values := map[string]string{}
	for k, v := range m.Properties {
		values[k] = v
	}
	for _, prefix := range []string{"project.", "pom."} {
		values[prefix+"groupId"] = m.GroupID
		values[prefix+"artifactId"] = m.ArtifactID
		values[prefix+"version"] = m.Version
		values[prefix+"name"] = m.Name
		if m.Parent != nil {
			values[prefix+"parent.groupId"] = m.Parent.GroupID
			values[prefix+"parent.artifactId"] = m.Parent.ArtifactID
			values[prefix+"parent.version"] = m.Parent.Version
		}
	}

	for pass := 0; pass < maxPropertyPasses; pass++ {
		changed := false
		for k, v := range values {
			if nv := expand(v, values); nv != v {
				values[k] = nv
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	m.GroupID = expand(m.GroupID, values)
	m.Version = expand(m.Version, values)
	m.Packaging = expand(m.Packaging, values)
	m.Name = expand(m.Name, values)
	m.Description = expand(m.Description, values)
	m.DistributionManagement.Site.URL = expand(m.DistributionManagement.Site.URL, values)
}

func expand(s string, values map[string]string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return expression.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-1]
		if v, ok := values[key]; ok {
			return v
		}
		return match
	})
}
