// Package classify tags individual lines and links found inside candidate
// blocks: lines as eligibility conditions or document requirements, anchors
// as application entry points.
package classify

import (
	"regexp"
	"strings"

	"github.com/DhanushSaiCoder/Govt-De/internal/keywords"
)

// maxLineChars caps each classified line; longer lines are cut and marked
// with an ellipsis.
const maxLineChars = 200

// Sentence/line boundaries: newline, period followed by whitespace, or
// semicolon followed by whitespace.
var lineSplitRe = regexp.MustCompile(`\n|\.\s+|;\s+`)

// Lines splits text into sentence units and sorts each into the eligibility
// or documents bucket. The two checks are independent: a line mentioning
// both an eligibility keyword and a required document lands in both buckets,
// and most lines land in neither.
func Lines(text string, kw keywords.Set) (eligibility, documents []string) {
	for _, unit := range lineSplitRe.Split(text, -1) {
		line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(unit), "- "))
		if line == "" {
			continue
		}
		if keywords.MatchesAny(line, kw.Eligibility) || keywords.MatchesAnyWord(line, kw.Regulatory) {
			eligibility = append(eligibility, truncateLine(line))
		}
		if keywords.MatchesAny(line, kw.Documents) {
			documents = append(documents, truncateLine(line))
		}
	}
	return eligibility, documents
}

func truncateLine(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLineChars {
		return s
	}
	return string(runes[:maxLineChars]) + "…"
}
