package modules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/openkraft/projectinfo/internal/domain"
)

// Resolver maps a declared module path to its project descriptor. Projects already
// in the reactor win; otherwise the module's descriptor file is read from disk; a
// module with neither becomes a placeholder.
type Resolver struct {
	reactor   []*domain.Project
	loader    domain.DescriptorLoader
	logger    domain.Logger
	canonical func(string) (string, error)
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithCanonicalizer replaces the path canonicalization used for reactor matching.
func WithCanonicalizer(fn func(string) (string, error)) ResolverOption {
	return func(r *Resolver) { r.canonical = fn }
}

// NewResolver creates a Resolver. A nil reactor means no sibling projects are
// available and every module is loaded from disk.
func NewResolver(reactor []*domain.Project, loader domain.DescriptorLoader, logger domain.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		reactor:   reactor,
		loader:    loader,
		logger:    logger,
		canonical: Canonical,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the descriptor of moduleRef, a path relative to parent's base
// directory. The only error is a descriptor file that exists but cannot be loaded.
func (r *Resolver) Resolve(parent *domain.Project, moduleRef string) (*domain.Project, error) {
	if p := r.fromReactor(parent, moduleRef); p != nil {
		return p, nil
	}

	r.logger.Warn("module not found in reactor, loading locally", "module", moduleRef)

	descriptor := filepath.Join(parent.BaseDir, moduleRef, domain.DescriptorFile)
	exists, err := DescriptorExists(descriptor)
	if err != nil {
		return nil, fmt.Errorf("checking module descriptor %s: %w", descriptor, err)
	}
	if !exists {
		return domain.PlaceholderProject(moduleRef), nil
	}

	p, err := r.loader.Load(descriptor)
	if err != nil {
		return nil, fmt.Errorf("unable to read local module descriptor %s: %w", descriptor, err)
	}
	return p, nil
}

func (r *Resolver) fromReactor(parent *domain.Project, moduleRef string) *domain.Project {
	if r.reactor == nil {
		return nil
	}

	moduleDir, err := r.canonical(filepath.Join(parent.BaseDir, moduleRef))
	if err != nil {
		r.logger.Error("canonicalizing module directory", "module", moduleRef, "err", err)
		return nil
	}

	for _, p := range r.reactor {
		if p.BaseDir == moduleDir {
			return p
		}
	}
	return nil
}

// Canonical returns the absolute, symlink-free form of path. A path that does not
// exist is returned absolute and cleaned.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return "", err
	}
	return resolved, nil
}

// DescriptorExists reports whether path names a regular file. A path that runs
// through a file, as in a module reference naming a file, does not exist.
func DescriptorExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
