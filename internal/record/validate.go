package record

import (
	"fmt"
	"strings"
)

// Validate checks a record against the output schema and returns the list
// of violated checks, empty when the record is valid. Callers should treat
// any non-empty result as fatal for the record.
func Validate(rec *Extraction) []string {
	var checks []string
	if rec == nil {
		return []string{"record is nil"}
	}
	if rec.Eligibility == nil {
		checks = append(checks, "eligibility list missing")
	}
	if rec.Documents == nil {
		checks = append(checks, "documents list missing")
	}
	if rec.ApplyLinks == nil {
		checks = append(checks, "apply_links list missing")
	}
	checks = append(checks, validateList("eligibility", rec.Eligibility, maxEligibility)...)
	checks = append(checks, validateList("documents", rec.Documents, maxDocuments)...)
	checks = append(checks, validateList("apply_links", rec.ApplyLinks, maxApplyLinks)...)
	if n := len([]rune(rec.RawTextSnippet)); n > maxSnippetRunes {
		checks = append(checks, fmt.Sprintf("raw_text_snippet exceeds %d chars: %d", maxSnippetRunes, n))
	}
	switch rec.Method {
	case MethodHeuristic, MethodReadability:
	default:
		checks = append(checks, fmt.Sprintf("method %q not in enum", rec.Method))
	}
	if rec.Confidence < 0 || rec.Confidence > 1 {
		checks = append(checks, fmt.Sprintf("confidence %v outside [0,1]", rec.Confidence))
	}
	return checks
}

func validateList(name string, list []string, cap int) []string {
	var checks []string
	if len(list) > cap {
		checks = append(checks, fmt.Sprintf("%s exceeds %d entries: %d", name, cap, len(list)))
	}
	seen := map[string]struct{}{}
	for i, s := range list {
		if strings.TrimSpace(s) == "" {
			checks = append(checks, fmt.Sprintf("%s[%d] is blank", name, i))
			continue
		}
		if _, ok := seen[s]; ok {
			checks = append(checks, fmt.Sprintf("%s contains duplicate %q", name, s))
			continue
		}
		seen[s] = struct{}{}
	}
	return checks
}
