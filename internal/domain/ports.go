package domain

import (
	"errors"
	"io"
)

// ErrReportSkipped is returned when the report is suppressed because the project
// declares no modules and skip_empty is set.
var ErrReportSkipped = errors.New("report skipped: no modules declared")

// DescriptorLoader reads a project descriptor file from disk.
type DescriptorLoader interface {
	Load(descriptorPath string) (*Project, error)
}

// ReactorBuilder materializes the sibling projects of a multi-module build.
type ReactorBuilder interface {
	Build(root *Project) ([]*Project, error)
}

// ConfigLoader loads report configuration for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ReportConfig, error)
}

// Labels looks up localized report labels by key.
type Labels interface {
	Label(key string) string
}

// LabelCatalog resolves the label set for a locale.
type LabelCatalog interface {
	Labels(locale string) Labels
}

// GitInfo provides version control metadata for a project directory.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
}

// Sink receives the structural calls of a report and serializes them.
type Sink interface {
	StartSection(title string)
	Paragraph(text string)
	StartTable()
	TableHeader(cells []string)
	TableRow(cells []Cell)
	EndTable()
	EndSection()
}

// DocumentSink is a Sink that buffers its output until written out.
type DocumentSink interface {
	Sink
	io.WriterTo
}

// CommitStamper is implemented by sinks that record the commit the report was built from.
type CommitStamper interface {
	SetCommitHash(hash string)
}

// Logger is the structured, leveled logger domain components report through.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}
