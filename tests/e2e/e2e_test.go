package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openkraft/projectinfo/internal/adapters/outbound/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "projectinfo-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "projectinfo")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/projectinfo")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/maven", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Modules Tests ---

func TestE2E_ModulesTerminal(t *testing.T) {
	out, code := run(t, "modules", fixturePath("multi"), "--log-level", "error")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Project Modules")
	assert.Contains(t, out, "Shop Core")
	assert.NotContains(t, out, "Shop API Sample")
}

func TestE2E_ModulesJSON(t *testing.T) {
	out, code := run(t, "modules", fixturePath("multi"), "--format", "json", "--log-level", "error")
	require.Equal(t, 0, code, out)

	var doc sink.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Header, 6)
	assert.Len(t, doc.Rows, 4, "three modules without the sample plus the parent")
}

func TestE2E_ModulesMarkdownWarnsOnMissingModule(t *testing.T) {
	out, code := run(t, "modules", fixturePath("multi"), "--format", "markdown")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "module not found in reactor, loading locally")
	assert.Contains(t, out, "module=legacy")
	assert.Contains(t, out, "[legacy](./legacy/index.html)")
}

func TestE2E_ModulesSingleProject(t *testing.T) {
	out, code := run(t, "modules", fixturePath("single"), "--format", "markdown")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "There are no modules declared in this project.")
	assert.NotContains(t, out, "|")
}

func TestE2E_ModulesBrokenExitsNonZero(t *testing.T) {
	out, code := run(t, "modules", fixturePath("broken"), "--reactor=false")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unable to read local module descriptor")
}

func TestE2E_ModulesEnvOverride(t *testing.T) {
	cmd := exec.Command(binaryPath, "modules", fixturePath("multi"), "--format", "json", "--log-level", "error")
	cmd.Env = append(os.Environ(), "PROJECTINFO_MODULES_REPORT_COORDINATES=false", "PROJECTINFO_LOCALE=fr")
	out, err := cmd.Output()
	require.NoError(t, err)

	var doc sink.Document
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "Modules du projet", doc.Title)
	assert.Len(t, doc.Header, 2)
}

// --- Init Tests ---

func TestE2E_Init(t *testing.T) {
	dir := t.TempDir()
	out, code := run(t, "init", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Created .projectinfo.yaml")

	_, code = run(t, "init", dir)
	assert.Equal(t, 1, code, "second init without --force fails")
}

// --- Version Tests ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "projectinfo "), out)
}
