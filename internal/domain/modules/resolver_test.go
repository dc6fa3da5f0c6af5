package modules_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/openkraft/projectinfo/internal/domain/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_PrefersReactor(t *testing.T) {
	root := t.TempDir()
	core := &domain.Project{ArtifactID: "core", BaseDir: moduleDir(t, root, "core")}
	api := &domain.Project{ArtifactID: "api", BaseDir: moduleDir(t, root, "api")}
	writeDescriptor(t, filepath.Join(root, "core"))

	loader := &stubLoader{}
	logger, logs := newTestLogger()
	r := modules.NewResolver([]*domain.Project{api, core}, loader, logger)

	got, err := r.Resolve(&domain.Project{BaseDir: root}, "core")
	require.NoError(t, err)
	assert.Same(t, core, got)
	assert.Empty(t, loader.calls, "reactor hit must not touch the disk loader")
	assert.Empty(t, logs.String())
}

func TestResolver_ReactorMatchNormalizesPath(t *testing.T) {
	root := t.TempDir()
	core := &domain.Project{ArtifactID: "core", BaseDir: moduleDir(t, root, "core")}
	moduleDir(t, root, "parent")

	logger, _ := newTestLogger()
	r := modules.NewResolver([]*domain.Project{core}, &stubLoader{}, logger)

	got, err := r.Resolve(&domain.Project{BaseDir: filepath.Join(root, "parent")}, "../core/")
	require.NoError(t, err)
	assert.Same(t, core, got)
}

func TestResolver_FallsBackToDisk(t *testing.T) {
	root := t.TempDir()
	moduleDir(t, root, "core")
	descriptor := writeDescriptor(t, filepath.Join(root, "core"))
	fromDisk := &domain.Project{ArtifactID: "core"}

	loader := &stubLoader{projects: map[string]*domain.Project{descriptor: fromDisk}}
	logger, logs := newTestLogger()
	other := &domain.Project{ArtifactID: "other", BaseDir: moduleDir(t, root, "other")}
	r := modules.NewResolver([]*domain.Project{other}, loader, logger)

	got, err := r.Resolve(&domain.Project{BaseDir: root}, "core")
	require.NoError(t, err)
	assert.Same(t, fromDisk, got)
	assert.Equal(t, []string{descriptor}, loader.calls)
	assert.Contains(t, logs.String(), "module not found in reactor, loading locally")
	assert.Contains(t, logs.String(), "module=core")
}

func TestResolver_NilReactorLoadsFromDisk(t *testing.T) {
	root := t.TempDir()
	moduleDir(t, root, "core")
	descriptor := writeDescriptor(t, filepath.Join(root, "core"))
	fromDisk := &domain.Project{ArtifactID: "core"}

	loader := &stubLoader{projects: map[string]*domain.Project{descriptor: fromDisk}}
	logger, logs := newTestLogger()
	r := modules.NewResolver(nil, loader, logger)

	got, err := r.Resolve(&domain.Project{BaseDir: root}, "core")
	require.NoError(t, err)
	assert.Same(t, fromDisk, got)
	assert.Contains(t, logs.String(), "WARN")
}

func TestResolver_PlaceholderWhenDescriptorMissing(t *testing.T) {
	root := t.TempDir()
	loader := &stubLoader{}
	logger, _ := newTestLogger()
	r := modules.NewResolver([]*domain.Project{}, loader, logger)

	got, err := r.Resolve(&domain.Project{BaseDir: root}, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "legacy", got.DisplayName())
	assert.Equal(t, "legacy", got.SiteURL)
	assert.Empty(t, got.ArtifactID)
	assert.Empty(t, loader.calls)
	assert.Equal(t, "./legacy/index.html", modules.ModuleLink(got, ""))
}

func TestResolver_PlaceholderWhenModuleRefIsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "alt-pom.xml"), []byte("<project/>"), 0o644))
	loader := &stubLoader{}
	logger, _ := newTestLogger()
	r := modules.NewResolver(nil, loader, logger)

	got, err := r.Resolve(&domain.Project{BaseDir: root}, "alt-pom.xml")
	require.NoError(t, err)
	assert.Equal(t, "alt-pom.xml", got.DisplayName())
	assert.Empty(t, loader.calls)
}

func TestDescriptorExists(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "pom.xml")
	require.NoError(t, os.WriteFile(file, []byte("<project/>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir", "pom.xml"), 0o755))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"missing", filepath.Join(root, "missing", "pom.xml"), false},
		{"through a file", filepath.Join(file, "pom.xml"), false},
		{"directory", filepath.Join(root, "dir", "pom.xml"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := modules.DescriptorExists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_LoadFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	moduleDir(t, root, "broken")
	writeDescriptor(t, filepath.Join(root, "broken"))

	loadErr := errors.New("XML syntax error")
	logger, _ := newTestLogger()
	r := modules.NewResolver(nil, &stubLoader{err: loadErr}, logger)

	_, err := r.Resolve(&domain.Project{BaseDir: root}, "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "unable to read local module descriptor")
}

func TestResolver_CanonicalizationFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	core := &domain.Project{ArtifactID: "core", BaseDir: moduleDir(t, root, "core")}

	logger, logs := newTestLogger()
	r := modules.NewResolver([]*domain.Project{core}, &stubLoader{}, logger,
		modules.WithCanonicalizer(func(string) (string, error) {
			return "", errors.New("too many links")
		}),
	)

	got, err := r.Resolve(&domain.Project{BaseDir: root}, "missing")
	require.NoError(t, err)
	assert.Equal(t, "missing", got.Name, "no match falls through to the placeholder")
	assert.Contains(t, logs.String(), "ERRO")
	assert.Contains(t, logs.String(), "too many links")
}

func TestCanonical(t *testing.T) {
	root := t.TempDir()
	target := moduleDir(t, root, "real")

	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := modules.Canonical(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	missing, err := modules.Canonical(filepath.Join(root, "nope", "..", "gone"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "gone"), missing)
}
