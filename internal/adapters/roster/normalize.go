package roster

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader canonicalizes a column header for matching: lower
// case, accents stripped, whitespace collapsed to single spaces.
func NormalizeHeader(header string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(unicode.ToLower))
	out, _, _ := transform.String(t, strings.TrimSpace(header))
	return strings.Join(strings.Fields(out), " ")
}
