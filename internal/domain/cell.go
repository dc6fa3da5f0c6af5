package domain

// Cell is one table cell: display text and an optional link.
type Cell struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}

// TextCell returns a cell without a link.
func TextCell(text string) Cell { return Cell{Text: text} }

// LinkedCell returns a cell whose text links to href.
func LinkedCell(text, href string) Cell { return Cell{Text: text, Link: href} }

// HasLink reports whether the cell carries a link.
func (c Cell) HasLink() bool { return c.Link != "" }

// String returns the site markup form: "{text, link}" for linked cells, the bare
// text otherwise.
func (c Cell) String() string {
	if !c.HasLink() {
		return c.Text
	}
	return "{" + c.Text + ", " + c.Link + "}"
}
