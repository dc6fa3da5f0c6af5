// Package sink serializes report structure into HTML, Markdown and JSON documents.
package sink

import (
	"io"
	"strings"

	"github.com/openkraft/projectinfo/internal/domain"
)

// Markdown renders a report as CommonMark with a pipe table.
type Markdown struct {
	b      strings.Builder
	depth  int
	header []string
	rows   [][]domain.Cell
}

func NewMarkdown() *Markdown {
	return &Markdown{}
}

func (m *Markdown) StartSection(title string) {
	m.depth++
	m.b.WriteString(strings.Repeat("#", m.depth))
	m.b.WriteString(" ")
	m.b.WriteString(inline(title))
	m.b.WriteString("\n\n")
}

func (m *Markdown) Paragraph(text string) {
	m.b.WriteString(inline(text))
	m.b.WriteString("\n\n")
}

func (m *Markdown) StartTable() {
	m.header = nil
	m.rows = nil
}

func (m *Markdown) TableHeader(cells []string) {
	m.header = cells
}

func (m *Markdown) TableRow(cells []domain.Cell) {
	m.rows = append(m.rows, cells)
}

// EndTable writes the buffered table. CommonMark tables need a header row, so a
// table without one gets empty header cells.
func (m *Markdown) EndTable() {
	width := len(m.header)
	for _, row := range m.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return
	}

	header := make([]string, width)
	for i := range header {
		if i < len(m.header) {
			header[i] = tableText(m.header[i])
		}
	}
	m.writeRow(header)

	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}
	m.writeRow(sep)

	for _, row := range m.rows {
		cells := make([]string, width)
		for i, c := range row {
			cells[i] = markdownCell(c)
		}
		m.writeRow(cells)
	}
	m.b.WriteString("\n")
	m.header = nil
	m.rows = nil
}

func (m *Markdown) EndSection() {
	if m.depth > 0 {
		m.depth--
	}
}

func (m *Markdown) writeRow(cells []string) {
	m.b.WriteString("|")
	for _, c := range cells {
		m.b.WriteString(" ")
		m.b.WriteString(c)
		m.b.WriteString(" |")
	}
	m.b.WriteString("\n")
}

// String returns the document written so far.
func (m *Markdown) String() string {
	return m.b.String()
}

func (m *Markdown) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.b.String())
	return int64(n), err
}

func markdownCell(c domain.Cell) string {
	text := tableText(c.Text)
	if !c.HasLink() {
		return text
	}
	link := strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29", "|", `\|`).Replace(c.Link)
	return "[" + strings.NewReplacer("[", `\[`, "]", `\]`).Replace(text) + "](" + link + ")"
}

func tableText(s string) string {
	return strings.ReplaceAll(inline(s), "|", `\|`)
}

// inline collapses runs of whitespace, including newlines, into single spaces.
func inline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
