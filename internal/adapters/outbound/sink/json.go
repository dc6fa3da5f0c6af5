package sink

import (
	"encoding/json"
	"io"

	"github.com/openkraft/projectinfo/internal/domain"
)

// Document is the machine-readable form of a rendered report.
type Document struct {
	Title      string          `json:"title"`
	Paragraphs []string        `json:"paragraphs"`
	Header     []string        `json:"header,omitempty"`
	Rows       [][]domain.Cell `json:"rows"`
	CommitHash string          `json:"commit_hash,omitempty"`
}

// JSON records sink calls into a Document. Nested section titles are not kept;
// the first section names the document.
type JSON struct {
	doc Document
}

func NewJSON() *JSON {
	return &JSON{doc: Document{Paragraphs: []string{}, Rows: [][]domain.Cell{}}}
}

func (j *JSON) StartSection(title string) {
	if j.doc.Title == "" {
		j.doc.Title = title
	}
}

func (j *JSON) Paragraph(text string) {
	j.doc.Paragraphs = append(j.doc.Paragraphs, text)
}

func (j *JSON) StartTable() {}

func (j *JSON) TableHeader(cells []string) {
	j.doc.Header = append([]string(nil), cells...)
}

func (j *JSON) TableRow(cells []domain.Cell) {
	j.doc.Rows = append(j.doc.Rows, append([]domain.Cell(nil), cells...))
}

func (j *JSON) EndTable() {}

func (j *JSON) EndSection() {}

// SetCommitHash implements domain.CommitStamper.
func (j *JSON) SetCommitHash(hash string) {
	j.doc.CommitHash = hash
}

// Document returns the recorded document.
func (j *JSON) Document() Document {
	return j.doc
}

func (j *JSON) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(j.doc, "", "  ")
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(data, '\n'))
	return int64(n), err
}
