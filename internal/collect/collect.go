// Package collect discovers candidate content blocks on a page. It applies
// six complementary strategies in a fixed order, from explicit structure
// (headings, lists, tables) down to a paragraph fallback over plain body
// text, so both well-marked-up portals and unstructured "div soup" pages
// yield usable candidates.
package collect

import (
	"strings"
	"unicode/utf8"

	"github.com/DhanushSaiCoder/Govt-De/internal/dom"
	"github.com/DhanushSaiCoder/Govt-De/internal/keywords"
)

const (
	// maxHeadingSiblings caps how far heading-following accumulation runs,
	// bounding work on adversarial sibling chains.
	maxHeadingSiblings = 30
	// maxBlockChars caps a single block's content.
	maxBlockChars = 10000
	// minHintTextChars is the minimum text length for hint-matched
	// containers; shorter ones are navigation chrome, not content.
	minHintTextChars = 30
	// Density-fallback thresholds for strategy five.
	minDensityTextChars  = 120
	minDensityScore      = 8.0
	longProseChars       = 800
	maxFallbackParagraph = 8
	// maxPrecedingSiblings bounds the backwards heading search for
	// structured containers.
	maxPrecedingSiblings = 6
)

// Block is one candidate region of page content. Nodes lists the elements
// whose subtrees make up the block (the heading plus its following siblings
// for heading-derived blocks, a single container otherwise); link extraction
// scans those subtrees later. Node is the identity element used for
// deduplication and metadata re-inspection; it is nil only for headless
// fallback blocks cut from plain body text.
type Block struct {
	Heading string
	Content string
	Node    dom.Node
	Nodes   []dom.Node
}

// Blocks walks the document and returns candidate blocks in discovery order.
// A given element contributes at most one block regardless of how many
// strategies match it. fallbackText is the flattened body text used only by
// the last-resort paragraph strategy when everything else came up empty.
func Blocks(doc *dom.Document, fallbackText string, kw keywords.Set) []Block {
	c := collector{seen: map[dom.Node]bool{}, kw: kw}
	c.fromHeadings(doc)
	c.fromStructured(doc)
	c.fromSemantic(doc)
	c.fromHints(doc)
	c.fromDensity(doc)
	if len(c.blocks) == 0 {
		c.fromParagraphs(fallbackText)
	}
	return c.blocks
}

type collector struct {
	blocks []Block
	seen   map[dom.Node]bool
	kw     keywords.Set
}

func (c *collector) add(b Block) {
	if b.Node != nil {
		if c.seen[b.Node] {
			return
		}
		c.seen[b.Node] = true
	}
	b.Heading = strings.TrimSpace(b.Heading)
	b.Content = truncate(strings.TrimSpace(b.Content), maxBlockChars)
	if b.Content == "" && b.Heading == "" {
		return
	}
	c.blocks = append(c.blocks, b)
}

// fromHeadings accumulates the content that follows each h1..h4 until the
// next heading of level four or shallower. The heading element itself is the
// block's identity node so later link extraction still reaches its vicinity
// through Nodes.
func (c *collector) fromHeadings(doc *dom.Document) {
	doc.Each(func(n dom.Node) {
		lvl := n.HeadingLevel()
		if lvl < 1 || lvl > 4 {
			return
		}
		nodes := []dom.Node{n}
		var content strings.Builder
		sib := n.NextSibling()
		for i := 0; sib != nil && i < maxHeadingSiblings; i++ {
			if l := sib.HeadingLevel(); l >= 1 && l <= 4 {
				break
			}
			if t := sib.Text(); t != "" {
				if content.Len() > 0 {
					content.WriteString("\n")
				}
				content.WriteString(t)
			}
			nodes = append(nodes, sib)
			sib = sib.NextSibling()
		}
		c.add(Block{Heading: n.Text(), Content: content.String(), Node: n, Nodes: nodes})
	})
}

// fromStructured promotes every list and table to a candidate, pairing it
// with the nearest heading above it.
func (c *collector) fromStructured(doc *dom.Document) {
	doc.Each(func(n dom.Node) {
		switch n.Tag() {
		case "ul", "ol", "dl", "table":
		default:
			return
		}
		c.add(Block{
			Heading: nearestHeading(n),
			Content: n.Text(),
			Node:    n,
			Nodes:   []dom.Node{n},
		})
	})
}

// fromSemantic promotes HTML5 sectioning elements and landmark-role
// containers.
func (c *collector) fromSemantic(doc *dom.Document) {
	doc.Each(func(n dom.Node) {
		switch n.Tag() {
		case "section", "article", "main", "aside":
		default:
			role := strings.ToLower(n.Attr("role"))
			if role != "region" && role != "main" {
				return
			}
		}
		c.add(Block{
			Heading: firstHeadingWithin(n),
			Content: n.Text(),
			Node:    n,
			Nodes:   []dom.Node{n},
		})
	})
}

// fromHints promotes generic containers whose class/id/aria-label/role
// metadata mentions a domain hint token, e.g. class="eligibility-criteria".
func (c *collector) fromHints(doc *dom.Document) {
	doc.Each(func(n dom.Node) {
		switch n.Tag() {
		case "div", "section", "article":
		default:
			return
		}
		if !keywords.MatchesAny(metadata(n), c.kw.Hints) {
			return
		}
		text := n.Text()
		if len(text) < minHintTextChars {
			return
		}
		c.add(Block{
			Heading: firstHeadingWithin(n),
			Content: text,
			Node:    n,
			Nodes:   []dom.Node{n},
		})
	})
}

// fromDensity catches unstructured prose: a div dense in words relative to
// its child elements, or simply carrying a long run of text.
func (c *collector) fromDensity(doc *dom.Document) {
	doc.Each(func(n dom.Node) {
		if n.Tag() != "div" {
			return
		}
		text := n.Text()
		if len(text) < minDensityTextChars {
			return
		}
		words := len(strings.Fields(text))
		density := float64(words) / float64(n.ChildElementCount()+1)
		if density >= minDensityScore || len(text) > longProseChars {
			c.add(Block{
				Heading: firstHeadingWithin(n),
				Content: text,
				Node:    n,
				Nodes:   []dom.Node{n},
			})
		}
	})
}

// fromParagraphs is the last resort: cut the flattened body text on blank
// lines and keep the first few non-empty paragraphs as headless blocks.
func (c *collector) fromParagraphs(fallbackText string) {
	if strings.TrimSpace(fallbackText) == "" {
		return
	}
	for _, para := range strings.Split(fallbackText, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		c.add(Block{Content: para})
		if len(c.blocks) >= maxFallbackParagraph {
			return
		}
	}
}

// nearestHeading finds the heading that governs n: first by scanning a few
// preceding siblings, then by looking for any heading in an ancestor's
// subtree.
func nearestHeading(n dom.Node) string {
	sib := n.PrevSibling()
	for i := 0; sib != nil && i < maxPrecedingSiblings; i++ {
		if l := sib.HeadingLevel(); l >= 1 && l <= 4 {
			return sib.Text()
		}
		sib = sib.PrevSibling()
	}
	for anc := n.Parent(); anc != nil; anc = anc.Parent() {
		if h := firstHeadingWithin(anc); h != "" {
			return h
		}
	}
	return ""
}

// firstHeadingWithin returns the text of the first h1..h4 in n's subtree.
func firstHeadingWithin(n dom.Node) string {
	if l := n.HeadingLevel(); l >= 1 && l <= 4 {
		return n.Text()
	}
	for _, child := range n.Children() {
		if h := firstHeadingWithin(child); h != "" {
			return h
		}
	}
	return ""
}

// metadata concatenates the attribute values the hint strategy inspects.
func metadata(n dom.Node) string {
	return strings.Join([]string{
		n.Attr("class"), n.Attr("id"), n.Attr("aria-label"), n.Attr("role"),
	}, " ")
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
