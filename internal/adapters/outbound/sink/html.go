package sink

import (
	"bytes"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/openkraft/projectinfo/internal/domain"
)

// HTML builds a standalone site page as a node tree and renders it on WriteTo.
// Sections become div.section, tables use the bodyTable class with alternating
// a/b row classes.
type HTML struct {
	doc   *html.Node
	head  *html.Node
	title *html.Node
	stack []*html.Node
	depth int
	row   int
}

func NewHTML() *HTML {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)

	body := element(atom.Body)
	root.AppendChild(body)

	return &HTML{doc: doc, head: head, stack: []*html.Node{body}}
}

func (h *HTML) StartSection(title string) {
	if h.title == nil {
		h.title = element(atom.Title)
		h.title.AppendChild(text(title))
		h.head.AppendChild(h.title)
	}

	h.depth++
	section := element(atom.Div, "class", "section")
	heading := element(headingAtom(h.depth + 1))
	heading.AppendChild(text(title))
	section.AppendChild(heading)
	h.push(section)
}

func (h *HTML) Paragraph(s string) {
	p := element(atom.P)
	p.AppendChild(text(s))
	h.current().AppendChild(p)
}

func (h *HTML) StartTable() {
	h.push(element(atom.Table, "border", "0", "class", "bodyTable"))
	h.row = 0
}

func (h *HTML) TableHeader(cells []string) {
	tr := element(atom.Tr, "class", "a")
	for _, c := range cells {
		th := element(atom.Th)
		th.AppendChild(text(c))
		tr.AppendChild(th)
	}
	h.current().AppendChild(tr)
}

func (h *HTML) TableRow(cells []domain.Cell) {
	class := "b"
	if h.row%2 == 1 {
		class = "a"
	}
	h.row++

	tr := element(atom.Tr, "class", class)
	for _, c := range cells {
		td := element(atom.Td)
		if c.HasLink() {
			a := element(atom.A, "href", c.Link)
			a.AppendChild(text(c.Text))
			td.AppendChild(a)
		} else {
			td.AppendChild(text(c.Text))
		}
		tr.AppendChild(td)
	}
	h.current().AppendChild(tr)
}

func (h *HTML) EndTable() {
	h.pop(atom.Table)
}

func (h *HTML) EndSection() {
	if h.pop(atom.Div) {
		h.depth--
	}
}

func (h *HTML) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, h.doc); err != nil {
		return 0, err
	}
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}

func (h *HTML) current() *html.Node {
	return h.stack[len(h.stack)-1]
}

func (h *HTML) push(n *html.Node) {
	h.current().AppendChild(n)
	h.stack = append(h.stack, n)
}

// pop closes the innermost open element if it is a; the body is never popped.
func (h *HTML) pop(a atom.Atom) bool {
	if len(h.stack) < 2 || h.current().DataAtom != a {
		return false
	}
	h.stack = h.stack[:len(h.stack)-1]
	return true
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func headingAtom(level int) atom.Atom {
	if level > 6 {
		level = 6
	}
	return atom.Lookup([]byte("h" + strconv.Itoa(level)))
}
