// Package readability is the secondary content pass: it strips obvious
// boilerplate, locates the main content container, and returns its text when
// there is enough of it to be worth preferring over the raw body flatten.
// Failure here is normal and silent; the caller just stays on the plain
// heuristic text.
package readability

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minArticleChars is the smallest cleaned-content length the pass accepts.
// Below this a page is too thin for boilerplate removal to mean anything.
const minArticleChars = 500

// ErrTooShort reports that the cleaned main content fell under the
// acceptance threshold.
var ErrTooShort = errors.New("readability: content too short")

// Article is the readability view of a page.
type Article struct {
	Title string
	Text  string
}

// candidate selectors, most specific first.
var contentSelectors = []string{
	"main",
	"article",
	"[role='main']",
	"#content, #main",
	".content, .main, .article",
}

// FromHTML runs the readability pass over sanitized markup. It returns
// ErrTooShort when the located content is under the threshold.
func FromHTML(clean []byte) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(clean))
	if err != nil {
		return Article{}, err
	}

	doc.Find("script, style, nav, header, footer, aside, form, button").Remove()

	content := doc.Find("body")
	for _, sel := range contentSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			content = found
			break
		}
	}

	text := normalize(content.Text())
	if len(text) < minArticleChars {
		return Article{}, ErrTooShort
	}
	return Article{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  text,
	}, nil
}

// normalize collapses whitespace runs while keeping line structure, since
// downstream sentence splitting keys on newlines and punctuation.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
