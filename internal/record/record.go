// Package record defines the extraction output contract: the structured
// record handed to callers, the error record that replaces it on failure,
// and the assembly step that enforces caps, deduplication, redaction, and
// schema validity before anything leaves the core.
package record

import (
	"math"
	"strings"

	"github.com/DhanushSaiCoder/Govt-De/internal/redact"
)

// Method identifies which extraction path produced the record.
type Method string

const (
	// MethodHeuristic is the plain density-and-keyword pipeline.
	MethodHeuristic Method = "heuristic"
	// MethodReadability means the secondary readability pass supplied the
	// page text the heuristics ran over.
	MethodReadability Method = "readability+heuristic"
)

// Result-list caps.
const (
	maxEligibility  = 20
	maxDocuments    = 20
	maxApplyLinks   = 10
	maxSnippetRunes = 500
)

// Extraction is the structured output of one extraction call. Every list
// field is always present, possibly empty.
type Extraction struct {
	Title          *string  `json:"title"`
	SourceURL      *string  `json:"source_url"`
	Eligibility    []string `json:"eligibility"`
	Documents      []string `json:"documents"`
	ApplyLinks     []string `json:"apply_links"`
	RawTextSnippet string   `json:"raw_text_snippet"`
	Method         Method   `json:"method"`
	Confidence     float64  `json:"confidence"`
}

// Error codes surfaced at the core boundary.
const (
	CodeException     = "exception"
	CodeInvalidSchema = "invalid_output_schema"
)

// Error is the only error type the extraction core returns. It marshals to
// the error-record wire shape, mutually exclusive with Extraction.
type Error struct {
	Code    string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Checks  []string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	if len(e.Checks) > 0 {
		return e.Code + ": " + strings.Join(e.Checks, "; ")
	}
	return e.Code
}

// Assemble builds the final record from classifier outputs: lists are
// trimmed, redacted, deduplicated in insertion order, and capped; the
// snippet is redacted and bounded; confidence is rounded to two decimals.
// The result is schema-validated and never returned partially valid.
func Assemble(title, sourceURL string, eligibility, documents, applyLinks []string, snippet string, method Method, confidence float64) (*Extraction, error) {
	rec := &Extraction{
		Title:          optional(title),
		SourceURL:      optional(sourceURL),
		Eligibility:    dedupe(redact.Lines(eligibility), maxEligibility),
		Documents:      dedupe(redact.Lines(documents), maxDocuments),
		ApplyLinks:     dedupe(applyLinks, maxApplyLinks),
		RawTextSnippet: truncateRunes(redact.Text(snippet), maxSnippetRunes),
		Method:         method,
		Confidence:     math.Round(confidence*100) / 100,
	}
	if checks := Validate(rec); len(checks) > 0 {
		return nil, &Error{Code: CodeInvalidSchema, Checks: checks}
	}
	return rec, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// dedupe trims entries, drops empties and exact duplicates, and keeps the
// first cap survivors in insertion order.
func dedupe(in []string, cap int) []string {
	out := make([]string, 0, min(len(in), cap))
	seen := map[string]struct{}{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) >= cap {
			break
		}
	}
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
