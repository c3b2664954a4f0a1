package keywords

import "strings"

// Set holds the keyword and hint vocabularies that drive block scoring and
// line classification. Callers inject a Set rather than relying on package
// globals so tests can run against synthetic vocabularies.
type Set struct {
	// Eligibility matches lines and headings describing who may apply.
	Eligibility []string
	// Documents matches lines listing required paperwork.
	Documents []string
	// Hints are tokens searched for inside class/id/aria-label/role
	// attribute values of candidate containers.
	Hints []string
	// ApplyIntent matches anchor text, titles, and hrefs that lead to an
	// application or registration flow.
	ApplyIntent []string
	// Regulatory are whole-word phrasing patterns ("must be", "only", ...)
	// that mark a line as eligibility even without a keyword hit.
	Regulatory []string
}

// Default returns the vocabulary tuned for Indian government scheme pages.
// The returned Set is a fresh copy; callers may modify it freely.
func Default() Set {
	return Set{
		Eligibility: []string{
			"eligibility", "eligible", "who can apply", "criteria",
			"applicant", "beneficiary", "age limit", "income limit",
			"annual income", "resident", "citizen", "domicile",
			"category", "bpl", "below poverty line",
		},
		Documents: []string{
			"document", "documents required", "proof", "id proof",
			"identity proof", "address proof", "income certificate",
			"caste certificate", "residence certificate", "photo",
			"photograph", "aadhaar", "aadhar", "pan card", "ration card",
			"voter id", "passport", "bank passbook",
		},
		Hints: []string{
			"eligibility", "eligible", "document", "documents",
			"requirement", "requirements", "required", "proof",
			"apply", "application", "criteria", "procedure",
			"scheme", "policy", "benefit", "checklist",
		},
		ApplyIntent: []string{
			"apply", "registration", "register", "application",
		},
		Regulatory: []string{
			"only", "must be", "should be", "eligible if",
			"applicable to", "applicants from",
		},
	}
}

// MatchesAny reports whether s contains any keyword from list as a
// case-insensitive substring.
func MatchesAny(s string, list []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range list {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MatchesAnyWord reports whether any keyword from list occurs in s bounded
// by word breaks, so "only" does not fire inside "commonly".
func MatchesAnyWord(s string, list []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range list {
		if kw != "" && containsWord(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// CountDistinct returns how many distinct keywords from list occur in s as
// whole words. Multi-word keywords count when the full phrase appears.
func CountDistinct(s string, list []string) int {
	lower := strings.ToLower(s)
	n := 0
	for _, kw := range list {
		if kw == "" {
			continue
		}
		if containsWord(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}

// containsWord reports whether needle occurs in haystack bounded by
// non-letter, non-digit runes on both sides. Both inputs must already be
// lowercase.
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			return false
		}
		i += start
		before := byte(' ')
		if i > 0 {
			before = haystack[i-1]
		}
		after := byte(' ')
		if j := i + len(needle); j < len(haystack) {
			after = haystack[j]
		}
		if !isWordByte(before) && !isWordByte(after) {
			return true
		}
		start = i + 1
		if start >= len(haystack) {
			return false
		}
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
