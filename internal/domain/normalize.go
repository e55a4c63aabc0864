package domain

import (
	"strings"
)

// NormalizeWord prepares a headword for storage and lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses internal runs of spaces into one (multi-word phrases)
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
