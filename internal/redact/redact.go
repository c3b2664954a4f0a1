package redact

import "regexp"

// Redaction tokens substituted for matched personal data. Kept stable so
// downstream consumers can detect redacted fields.
const (
	PhoneToken = "[phone]"
	EmailToken = "[email]"
	IDToken    = "[id]"
)

// Order matters: the 12-digit national-ID pattern must run before the phone
// pattern so an Aadhaar-shaped number is not half-eaten as a phone match.
var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// 12 digits, optionally grouped 4-4-4 with spaces or hyphens.
	nationalIDRe = regexp.MustCompile(`\b\d{4}[\s\-]?\d{4}[\s\-]?\d{4}\b`)
	// 10-digit subscriber numbers with an optional +91 or trunk-0 prefix.
	// Each prefixed branch carries its own digits because \b cannot sit
	// between the prefix and the subscriber number.
	phoneRe = regexp.MustCompile(`(?:\+91[\s\-]?[6-9]\d{9}|\b0[\s\-]?[6-9]\d{9}|\b[6-9]\d{9})\b`)
)

// Text replaces emails, 12-digit national-ID-shaped sequences, and phone
// numbers in s with fixed tokens.
func Text(s string) string {
	if s == "" {
		return s
	}
	s = emailRe.ReplaceAllString(s, EmailToken)
	s = nationalIDRe.ReplaceAllString(s, IDToken)
	s = phoneRe.ReplaceAllString(s, PhoneToken)
	return s
}

// Lines applies Text to every element, returning a new slice.
func Lines(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Text(s)
	}
	return out
}
