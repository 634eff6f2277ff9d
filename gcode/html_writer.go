package gcode

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML renders t as a standalone HTML document holding one table.
func WriteHTML(w io.Writer, t *Table) error {
	head := element(atom.Tr)
	for _, c := range Columns {
		head.AppendChild(element(atom.Th, text(c)))
	}

	body := element(atom.Tbody)
	for _, r := range t.Rows {
		tr := element(atom.Tr)
		for _, v := range r.Strings() {
			tr.AppendChild(element(atom.Td, text(v)))
		}
		body.AppendChild(tr)
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html,
		element(atom.Head, element(atom.Title, text("Gcode moves"))),
		element(atom.Body, element(atom.Table, element(atom.Thead, head), body)),
	))
	return html.Render(w, doc)
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
