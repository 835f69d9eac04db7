// Package resolve merges raw roster sightings into canonical Club and
// Player records with stable, deterministically derived identifiers.
package resolve

import (
	"strings"
	"unicode"
)

// Normalize produces the matching key for a name: case-folded, ampersands
// spelled out, punctuation dropped, whitespace collapsed to single spaces.
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "&", " and ")

	var sb strings.Builder
	lastSpace := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || unicode.IsPunct(r):
			if !lastSpace {
				sb.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// Slug converts a label into an identifier-safe slug.
func Slug(label string) string {
	return strings.ReplaceAll(Normalize(label), " ", "_")
}
