// Package html renders glossary terms as HTML using golang.org/x/net/html.
// Term fields are emitted as text nodes, so markup inside a field is
// escaped rather than interpreted.
package html

import (
	"io"
	"strconv"

	"github.com/fwojciec/glosario"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EmptyMessage is shown in place of a list with no terms.
const EmptyMessage = "No se encontraron términos."

// Renderer writes term lists and standalone pages.
type Renderer struct {
	Theme glosario.Theme
}

// NewRenderer creates a Renderer using the given theme for pages.
func NewRenderer(theme glosario.Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// RenderList writes terms as a <ul> fragment, or an empty-state paragraph
// when terms is empty.
func (r *Renderer) RenderList(w io.Writer, terms []glosario.Term) error {
	return html.Render(w, listNode(terms))
}

// RenderPage writes a complete HTML document titled title containing terms.
func (r *Renderer) RenderPage(w io.Writer, title string, terms []glosario.Term) error {
	theme := r.Theme
	if theme == "" {
		theme = glosario.DefaultTheme
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, attr("lang", "es"), attr("data-theme", string(theme)))
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(textElement(atom.Title, title))
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(textElement(atom.H1, title))
	body.AppendChild(textElement(atom.P, strconv.Itoa(len(terms))+" términos", attr("class", "count")))
	body.AppendChild(listNode(terms))
	root.AppendChild(body)
	doc.AppendChild(root)

	return html.Render(w, doc)
}

func listNode(terms []glosario.Term) *html.Node {
	if len(terms) == 0 {
		p := element(atom.P, attr("class", "empty"))
		p.AppendChild(text(EmptyMessage))
		return p
	}

	ul := element(atom.Ul, attr("class", "terms"))
	for _, t := range terms {
		li := element(atom.Li, attr("class", "term"), attr("data-domain", string(t.Domain)))
		li.AppendChild(textElement(atom.H3, t.FormalTerm, attr("class", "formal")))
		li.AppendChild(textElement(atom.P, t.ColloquialTerm, attr("class", "colloquial")))
		if t.Definition != "" {
			li.AppendChild(textElement(atom.P, t.Definition, attr("class", "definition")))
		}
		example := element(atom.P, attr("class", "example"))
		example.AppendChild(textElement(atom.Em, t.UsageExample))
		li.AppendChild(example)
		if name := t.Domain.DisplayName(); name != "" {
			li.AppendChild(textElement(atom.Span, name, attr("class", "domain")))
		}
		ul.AppendChild(li)
	}
	return ul
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textElement(a atom.Atom, s string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(text(s))
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
