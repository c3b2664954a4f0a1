package classify

import (
	"net/url"
	"strings"

	"github.com/DhanushSaiCoder/Govt-De/internal/dom"
	"github.com/DhanushSaiCoder/Govt-De/internal/keywords"
)

// maxApplyLinks caps the apply_links result list.
const maxApplyLinks = 10

// Links filters anchors for application intent and resolves the survivors
// against baseURL. Malformed hrefs are passed through as-is rather than
// dropped, since a broken-but-labelled apply link is still a lead worth
// surfacing. Results are deduplicated by final string, order preserved,
// capped at ten.
func Links(anchors []dom.Anchor, baseURL string, kw keywords.Set) []string {
	var base *url.URL
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			base = u
		}
	}

	seen := map[string]struct{}{}
	var out []string
	for _, a := range anchors {
		if strings.TrimSpace(a.Href) == "" {
			continue
		}
		if !keywords.MatchesAny(a.Text, kw.ApplyIntent) &&
			!keywords.MatchesAny(a.Title, kw.ApplyIntent) &&
			!keywords.MatchesAny(a.Href, kw.ApplyIntent) {
			continue
		}
		resolved := resolve(base, a.Href)
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
		if len(out) >= maxApplyLinks {
			break
		}
	}
	return out
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
