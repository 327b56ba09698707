// Package slugify builds URL-safe slugs from posting titles. Arabic letters
// are kept as-is (browsers percent-encode them transparently); everything
// that is not a letter, digit, or dash becomes a dash.
package slugify

import (
	"strings"
	"unicode"
)

// Make lowercases latin characters, collapses whitespace and punctuation
// runs into single dashes, and trims leading/trailing dashes.
func Make(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// WithSuffix appends a uniqueness token, used when the plain slug collides.
func WithSuffix(slug, token string) string {
	if slug == "" {
		return token
	}
	return slug + "-" + token
}
