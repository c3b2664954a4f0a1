package dom

import (
	"strings"
	"testing"
)

const page = `<!doctype html>
<html>
  <head><title> Scheme Portal </title></head>
  <body>
    <h2 id="elig" class="section-head">Eligibility</h2>
    <ul><li>Must be a resident</li><li>Age 18 or above</li></ul>
    <p>See the <a href="/apply" title="Apply here">application form</a>.</p>
  </body>
</html>`

func TestParse_TitleAndBody(t *testing.T) {
	doc, err := Parse([]byte(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title() != "Scheme Portal" {
		t.Fatalf("title = %q", doc.Title())
	}
	if !strings.Contains(doc.Text(), "Must be a resident") {
		t.Fatalf("body text missing list item: %q", doc.Text())
	}
}

func TestNode_Navigation(t *testing.T) {
	doc, err := Parse([]byte(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var heading Node
	doc.Each(func(n Node) {
		if n.HeadingLevel() == 2 {
			heading = n
		}
	})
	if heading == nil {
		t.Fatalf("h2 not found")
	}
	if heading.Tag() != "h2" || heading.Attr("id") != "elig" || heading.Attr("class") != "section-head" {
		t.Fatalf("heading introspection wrong: %q %q", heading.Tag(), heading.Attr("id"))
	}
	if heading.Text() != "Eligibility" {
		t.Fatalf("heading text = %q", heading.Text())
	}

	list := heading.NextSibling()
	if list == nil || list.Tag() != "ul" {
		t.Fatalf("next sibling should be ul, got %v", list)
	}
	if list.PrevSibling() != heading {
		t.Fatalf("sibling navigation not symmetric")
	}
	if list.ChildElementCount() != 2 || len(list.Children()) != 2 {
		t.Fatalf("ul should have two element children")
	}
	if list.Parent().Tag() != "body" {
		t.Fatalf("parent should be body, got %q", list.Parent().Tag())
	}
}

func TestNode_HandlesAreComparable(t *testing.T) {
	doc, err := Parse([]byte(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	seen := map[Node]int{}
	doc.Each(func(n Node) { seen[n]++ })
	doc.Each(func(n Node) { seen[n]++ })
	for n, count := range seen {
		if count != 2 {
			t.Fatalf("node %s seen %d times; handles not stable", n.Tag(), count)
		}
	}
}

func TestText_ListMarkersAndLines(t *testing.T) {
	doc, err := Parse([]byte(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var list Node
	doc.Each(func(n Node) {
		if n.Tag() == "ul" {
			list = n
		}
	})
	text := list.Text()
	if !strings.HasPrefix(text, "- ") {
		t.Fatalf("list text should start with a marker: %q", text)
	}
	if !strings.Contains(text, "- Age 18 or above") {
		t.Fatalf("second item missing marker: %q", text)
	}
}

func TestAnchors(t *testing.T) {
	doc, err := Parse([]byte(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	anchors := doc.Anchors()
	if len(anchors) != 1 {
		t.Fatalf("expected one anchor, got %d", len(anchors))
	}
	a := anchors[0]
	if a.Href != "/apply" || a.Title != "Apply here" || a.Text != "application form" {
		t.Fatalf("anchor = %+v", a)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty input should still parse: %v", err)
	}
	if doc.Text() != "" {
		t.Fatalf("empty page text = %q", doc.Text())
	}
	if doc.Title() != "" {
		t.Fatalf("empty page title = %q", doc.Title())
	}
}
