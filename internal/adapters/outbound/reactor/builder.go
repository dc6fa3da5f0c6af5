// Package reactor assembles the set of projects taking part in a multi-module build.
package reactor

import (
	"fmt"
	"path/filepath"

	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/openkraft/projectinfo/internal/domain/modules"
)

// Builder walks the module tree of a root project. It implements domain.ReactorBuilder.
type Builder struct {
	loader domain.DescriptorLoader
}

func New(loader domain.DescriptorLoader) *Builder {
	return &Builder{loader: loader}
}

// Build returns the root followed by every module reachable from it, depth first in
// declaration order. Modules without a descriptor on disk are left out; a descriptor
// that cannot be loaded fails the build.
func (b *Builder) Build(root *domain.Project) ([]*domain.Project, error) {
	seen := map[string]bool{}
	var out []*domain.Project
	if err := b.walk(root, seen, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Builder) walk(p *domain.Project, seen map[string]bool, out *[]*domain.Project) error {
	dir, err := modules.Canonical(p.BaseDir)
	if err != nil {
		return fmt.Errorf("canonicalizing %s: %w", p.BaseDir, err)
	}
	if seen[dir] {
		return nil
	}
	seen[dir] = true
	*out = append(*out, p)

	for _, ref := range p.Modules {
		descriptor := filepath.Join(p.BaseDir, ref, domain.DescriptorFile)
		exists, err := modules.DescriptorExists(descriptor)
		if err != nil {
			return fmt.Errorf("checking reactor module %s: %w", ref, err)
		}
		if !exists {
			continue
		}

		child, err := b.loader.Load(descriptor)
		if err != nil {
			return fmt.Errorf("loading reactor module %s: %w", ref, err)
		}
		if err := b.walk(child, seen, out); err != nil {
			return err
		}
	}
	return nil
}
