// Package score ranks candidate blocks by how likely they are to carry
// eligibility or documentation facts. The design is additive-and-capped: no
// single signal can saturate the score, but several strong independent
// signals together approach certainty.
package score

import (
	"math"
	"sort"
	"strings"

	"github.com/DhanushSaiCoder/Govt-De/internal/collect"
	"github.com/DhanushSaiCoder/Govt-De/internal/keywords"
)

// TopThreshold is the minimum score for a block to count as a top block.
const TopThreshold = 0.35

// Signal weights for the full scorer.
const (
	headingWeight    = 0.36
	structureWeight  = 0.28
	densityCap       = 0.26
	hintWeight       = 0.25
	roleWeight       = 0.12
	longTextBonus    = 0.08
	veryLongBonus    = 0.06
	longTextWords    = 200
	veryLongWords    = 600
	densityScaleWord = 50
)

// Weights for the basic scorer used on headless blocks, which carry no
// element metadata for the hint and length signals.
const (
	basicHeadingWeight = 0.40
	basicStructWeight  = 0.30
	basicDensityCap    = 0.30
)

// Scored pairs a block with its relevance score.
type Scored struct {
	collect.Block
	Score float64
}

// Block scores one candidate with the full five-signal model. Headless
// blocks are routed to the basic model since they have no source node.
func Block(b collect.Block, kw keywords.Set) float64 {
	if b.Node == nil {
		return Basic(b, kw)
	}
	s := 0.0
	if keywords.MatchesAny(b.Heading, kw.Eligibility) {
		s += headingWeight
	}
	if looksStructured(b.Content) {
		s += structureWeight
	}
	s += math.Min(densityCap, keywordDensity(b.Content, kw)*3)

	meta := strings.Join([]string{
		b.Node.Attr("class"), b.Node.Attr("id"),
		b.Node.Attr("aria-label"), b.Node.Attr("role"),
	}, " ")
	if keywords.MatchesAny(meta, kw.Hints) {
		s += hintWeight
	}
	switch strings.ToLower(b.Node.Attr("role")) {
	case "region", "main", "content", "article":
		s += roleWeight
	}

	words := len(strings.Fields(b.Content))
	if words > longTextWords {
		s += longTextBonus
	}
	if words > veryLongWords {
		s += veryLongBonus
	}
	return clamp01(s)
}

// Basic is the reduced three-signal scorer for blocks without element
// metadata.
func Basic(b collect.Block, kw keywords.Set) float64 {
	s := 0.0
	if keywords.MatchesAny(b.Heading, kw.Eligibility) {
		s += basicHeadingWeight
	}
	if looksStructured(b.Content) {
		s += basicStructWeight
	}
	s += math.Min(basicDensityCap, keywordDensity(b.Content, kw)*3)
	return clamp01(s)
}

// Rank scores every block and orders them best-first. The sort is stable so
// ties keep discovery order.
func Rank(blocks []collect.Block, kw keywords.Set) []Scored {
	out := make([]Scored, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, Scored{Block: b, Score: Block(b, kw)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Top filters ranked blocks down to those meeting the inclusion threshold.
func Top(ranked []Scored) []Scored {
	var out []Scored
	for _, s := range ranked {
		if s.Score >= TopThreshold {
			out = append(out, s)
		}
	}
	return out
}

// keywordDensity is distinct whole-word eligibility keyword matches per
// 50-word unit of content.
func keywordDensity(content string, kw keywords.Set) float64 {
	distinct := keywords.CountDistinct(content, kw.Eligibility)
	if distinct == 0 {
		return 0
	}
	words := len(strings.Fields(content))
	return float64(distinct) / math.Max(1, float64(words)/densityScaleWord)
}

// looksStructured reports whether the content opens with a bullet or
// numbered-list marker, or spans more than three non-empty lines.
func looksStructured(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	if startsWithListMarker(trimmed) {
		return true
	}
	lines := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
			if lines > 3 {
				return true
			}
		}
	}
	return false
}

func startsWithListMarker(s string) bool {
	switch s[0] {
	case '-', '*':
		return true
	}
	if r := []rune(s); r[0] == '•' {
		return true
	}
	// Numbered markers: "1." / "2)" etc.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return true
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
