package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SlugFallback is used when a source text normalizes to nothing.
// An empty slug must never be persisted.
const SlugFallback = "item"

// Slugify derives a URL-safe token from display text:
//   - strips diacritics (NFD decomposition, combining marks dropped)
//   - converts to lowercase
//   - collapses runs of non-alphanumeric characters into single hyphens
//   - trims leading/trailing hyphens
//
// The result is deterministic: equal inputs always produce equal slugs.
// Uniqueness is the resolver's concern, not Slugify's.
func Slugify(text string) string {
	text = norm.NFD.String(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range text {
		if unicode.Is(unicode.Mn, r) {
			// combining mark left over from decomposition
			continue
		}
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingHyphen = true
		}
	}

	slug := b.String()
	if slug == "" {
		return SlugFallback
	}
	return slug
}
