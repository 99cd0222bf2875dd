package domain

import (
	"strings"
	"unicode"
)

// NormalizeSearch prepares a free-text product search term:
//   - trims leading/trailing whitespace
//   - collapses every whitespace run into a single space
//
// Case is preserved; matching is case-insensitive in storage.
func NormalizeSearch(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
