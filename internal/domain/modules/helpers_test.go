package modules_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/openkraft/projectinfo/internal/domain"
	"github.com/openkraft/projectinfo/internal/domain/modules"
	"github.com/stretchr/testify/require"
)

// recordingSink captures sink calls in order.
type recordingSink struct {
	events     []string
	paragraphs []string
	header     []string
	rows       [][]domain.Cell
}

func (s *recordingSink) StartSection(title string) { s.events = append(s.events, "section:"+title) }
func (s *recordingSink) Paragraph(text string) {
	s.events = append(s.events, "paragraph")
	s.paragraphs = append(s.paragraphs, text)
}
func (s *recordingSink) StartTable() { s.events = append(s.events, "table") }
func (s *recordingSink) TableHeader(cells []string) {
	s.events = append(s.events, "header")
	s.header = cells
}
func (s *recordingSink) TableRow(cells []domain.Cell) {
	s.events = append(s.events, "row")
	s.rows = append(s.rows, cells)
}
func (s *recordingSink) EndTable()   { s.events = append(s.events, "/table") }
func (s *recordingSink) EndSection() { s.events = append(s.events, "/section") }

// keyLabels echoes every key back as its label.
type keyLabels struct{}

func (keyLabels) Label(key string) string { return key }

// stubLoader returns canned descriptors by path.
type stubLoader struct {
	projects map[string]*domain.Project
	err      error
	calls    []string
}

func (l *stubLoader) Load(path string) (*domain.Project, error) {
	l.calls = append(l.calls, path)
	if l.err != nil {
		return nil, l.err
	}
	if p, ok := l.projects[path]; ok {
		return p, nil
	}
	return nil, errors.New("no descriptor stubbed for " + path)
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel}), buf
}

// moduleDir creates dir/name and returns its canonical path.
func moduleDir(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(p, 0755))
	canonical, err := modules.Canonical(p)
	require.NoError(t, err)
	return canonical
}

func writeDescriptor(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, domain.DescriptorFile)
	require.NoError(t, os.WriteFile(path, []byte("<project/>"), 0644))
	return path
}
