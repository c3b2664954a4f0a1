// Package sanitize is the trust boundary between raw fetched markup and the
// extraction core. Everything downstream assumes scripts, styles, comments,
// and inline event handlers are already gone.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// structural tags the extractor navigates; anything else is unwrapped to its
// text content by the policy.
var allowedElements = []string{
	"html", "head", "title", "body",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "br", "hr", "blockquote", "pre",
	"ul", "ol", "li", "dl", "dt", "dd",
	"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
	"div", "span", "section", "article", "main", "aside",
	"header", "footer", "nav", "figure", "figcaption",
	"a", "strong", "em", "b", "i", "u", "small", "sub", "sup",
	"label", "form", "button",
}

// NewPolicy builds the markup-cleaning policy. Scripts, styles, and comments
// are dropped outright (bluemonday removes script/style content rather than
// unwrapping it), and no on* event-handler attribute survives because only
// the attributes below are allowed.
func NewPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedElements...)
	// The scorer reads these on candidate containers.
	p.AllowAttrs("class", "id", "role", "aria-label").Globally()
	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.AllowRelativeURLs(true)
	return p
}

// Clean strips raw markup down to the structural subset the document model
// understands. The result is safe to parse and traverse.
func Clean(raw []byte) []byte {
	return defaultPolicy.SanitizeBytes(raw)
}

var defaultPolicy = NewPolicy()
