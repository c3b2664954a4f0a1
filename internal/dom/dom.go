// Package dom adapts a parsed HTML tree into the minimal node-navigation
// capability the extraction core needs: tag and heading introspection,
// flattened text, attribute lookup, sibling/child/ancestor movement, and
// anchor enumeration. The rest of the core never touches the underlying
// parser types, so swapping the parser means swapping this one adapter.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Node is a read-only handle onto one element of the document. Handles are
// comparable: two handles are equal exactly when they reference the same
// underlying element, which the collector relies on for deduplication.
type Node interface {
	// Tag returns the lowercase element name, e.g. "div".
	Tag() string
	// HeadingLevel returns 1..6 for h1..h6 and 0 for everything else.
	HeadingLevel() int
	// Text returns the flattened inner text with block elements separated
	// by newlines, list items prefixed with "- ", whitespace collapsed,
	// and the result NFC-normalized.
	Text() string
	// Attr returns the value of the named attribute, or "".
	Attr(name string) string
	// Parent returns the parent element, or nil at the top.
	Parent() Node
	// PrevSibling returns the previous element sibling, or nil.
	PrevSibling() Node
	// NextSibling returns the next element sibling, or nil.
	NextSibling() Node
	// Children returns the element children in document order.
	Children() []Node
	// ChildElementCount returns len(Children()) without allocating.
	ChildElementCount() int
	// Anchors returns every <a> in this element's subtree, itself included.
	Anchors() []Anchor
}

// Anchor is one hyperlink occurrence: its visible text, href, and title
// attribute, any of which may be empty.
type Anchor struct {
	Text  string
	Href  string
	Title string
}

// Document wraps a parsed page and exposes whole-page operations.
type Document struct {
	root *html.Node
	body *html.Node
}

// Parse builds a Document from sanitized markup. The parser itself never
// fails on malformed input, but a nil tree is still rejected.
func Parse(clean []byte) (*Document, error) {
	node, err := html.Parse(bytes.NewReader(clean))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	if node == nil {
		return nil, fmt.Errorf("parse markup: empty tree")
	}
	body := findFirst(node, "body")
	if body == nil {
		body = node
	}
	return &Document{root: node, body: body}, nil
}

// Title returns the trimmed <title> text, or "".
func (d *Document) Title() string {
	head := findFirst(d.root, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(t.FirstChild.Data)
}

// Body returns the page body element.
func (d *Document) Body() Node {
	return elem{d.body}
}

// Text returns the flattened text of the whole body.
func (d *Document) Text() string {
	return elem{d.body}.Text()
}

// Each visits every element in the body subtree in document order.
func (d *Document) Each(fn func(Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			fn(elem{n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.body)
}

// Anchors returns every anchor on the page.
func (d *Document) Anchors() []Anchor {
	return elem{d.body}.Anchors()
}

// elem is the concrete adapter over x/net/html. It is a one-pointer struct
// so Node values stay comparable and cheap to copy.
type elem struct {
	n *html.Node
}

func wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return elem{n}
}

func (e elem) Tag() string {
	return strings.ToLower(e.n.Data)
}

func (e elem) HeadingLevel() int {
	tag := e.Tag()
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func (e elem) Attr(name string) string {
	for _, a := range e.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func (e elem) Parent() Node {
	for p := e.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return wrap(p)
		}
	}
	return nil
}

func (e elem) PrevSibling() Node {
	for s := e.n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return wrap(s)
		}
	}
	return nil
}

func (e elem) NextSibling() Node {
	for s := e.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return wrap(s)
		}
	}
	return nil
}

func (e elem) Children() []Node {
	var out []Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, elem{c})
		}
	}
	return out
}

func (e elem) ChildElementCount() int {
	n := 0
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n++
		}
	}
	return n
}

func (e elem) Text() string {
	var b strings.Builder
	flatten(&b, e.n)
	return norm.NFC.String(normalizeWhitespace(b.String()))
}

func (e elem) Anchors() []Anchor {
	var out []Anchor
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			a := elem{n}
			out = append(out, Anchor{
				Text:  a.Text(),
				Href:  a.Attr("href"),
				Title: a.Attr("title"),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return out
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// flatten walks the subtree writing text with newline separation for block
// elements and a "- " marker for list items, so downstream line splitting
// and list-shape detection see structure the markup carried.
func flatten(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
		return
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return
	}
	name := strings.ToLower(n.Data)
	switch name {
	case "br", "hr":
		b.WriteString("\n")
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "ul", "ol", "dl",
		"table", "tr", "section", "article", "blockquote":
		b.WriteString("\n")
	case "li", "dt":
		b.WriteString("\n- ")
	case "dd":
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(b, c)
	}
	switch name {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "div", "ul", "ol", "dl",
		"table", "tr", "li", "dt", "dd", "section", "article", "blockquote",
		"td", "th":
		b.WriteString("\n")
	}
}

// normalizeWhitespace trims lines, collapses internal runs to single spaces,
// and keeps at most one consecutive blank line so paragraph boundaries
// survive flattening.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapseSpaces(trimmed))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
