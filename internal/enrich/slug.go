package enrich

import (
	"strings"
	"unicode"

	"cinecal/internal/release"
)

// Slug derives the enrichment-cache key from a title: trailing parenthesized
// qualifiers removed, lowercased, punctuation stripped, whitespace collapsed
// and hyphen-joined.
func Slug(title string) string {
	return strings.Join(strings.Fields(normalizeTitle(title)), "-")
}

// normalizeTitle reduces a title to lowercase words for comparison: the
// trailing qualifier is dropped, punctuation removed and runs of whitespace
// collapsed to single spaces.
func normalizeTitle(title string) string {
	title = strings.ToLower(release.CleanTitle(title))

	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
