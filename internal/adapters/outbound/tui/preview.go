package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/openkraft/projectinfo/internal/adapters/outbound/sink"
)

// DefaultPreviewWidth is the word wrap width of the Markdown preview.
const DefaultPreviewWidth = 100

// Preview records the report as Markdown and renders it with glamour on WriteTo.
type Preview struct {
	*sink.Markdown
	renderer *glamour.TermRenderer
}

// NewPreview creates a Preview. style names a glamour standard style; "auto"
// detects the terminal background.
func NewPreview(style string, width int) (*Preview, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating glamour renderer: %w", err)
	}
	return &Preview{Markdown: sink.NewMarkdown(), renderer: r}, nil
}

func (p *Preview) WriteTo(w io.Writer) (int64, error) {
	out, err := p.renderer.Render(p.Markdown.String())
	if err != nil {
		return 0, fmt.Errorf("rendering preview: %w", err)
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}
