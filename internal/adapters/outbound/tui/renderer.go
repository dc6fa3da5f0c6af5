// Package tui renders reports for the terminal.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/openkraft/projectinfo/internal/domain"
)

// ── warm palette ──
var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim
	info   = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	subheaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fg)

	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	faintStyle     = lipgloss.NewStyle().Foreground(faint)
	columnStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Foreground(fg).Padding(0, 1)
	linkStyle      = lipgloss.NewStyle().Foreground(info).Underline(true)
	separatorWidth = 64
)

// Terminal is a domain.DocumentSink that lays the report out as a rounded table.
// Linked cells are underlined; the link targets themselves are not printed.
type Terminal struct {
	b      strings.Builder
	depth  int
	header []string
	rows   [][]string
}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) StartSection(title string) {
	t.depth++
	if t.depth == 1 {
		t.b.WriteString(headerStyle.Render(title))
		t.b.WriteString("\n")
		t.b.WriteString(faintStyle.Render(strings.Repeat("─", separatorWidth)))
	} else {
		t.b.WriteString(subheaderStyle.Render(title))
	}
	t.b.WriteString("\n\n")
}

func (t *Terminal) Paragraph(text string) {
	t.b.WriteString(dimStyle.Render(text))
	t.b.WriteString("\n\n")
}

func (t *Terminal) StartTable() {
	t.header = nil
	t.rows = nil
}

func (t *Terminal) TableHeader(cells []string) {
	t.header = cells
}

func (t *Terminal) TableRow(cells []domain.Cell) {
	row := make([]string, len(cells))
	for i, c := range cells {
		if c.HasLink() {
			row[i] = linkStyle.Render(c.Text)
		} else {
			row[i] = c.Text
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Terminal) EndTable() {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return columnStyle
			}
			return cellStyle
		}).
		Rows(t.rows...)
	if len(t.header) > 0 {
		tbl = tbl.Headers(t.header...)
	}

	t.b.WriteString(tbl.Render())
	t.b.WriteString("\n\n")
	t.header = nil
	t.rows = nil
}

func (t *Terminal) EndSection() {
	if t.depth > 0 {
		t.depth--
	}
}

// String returns the rendered output so far.
func (t *Terminal) String() string {
	return t.b.String()
}

func (t *Terminal) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.b.String())
	return int64(n), err
}
