package section

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips diacritics so Polish text compares accent-insensitively
// ("doświadczenie" -> "doswiadczenie"). The stroked l does not decompose
// under NFD and is mapped by hand. Folding is 1:1 per rune for Polish and
// English text, which the blob re-segmenter relies on.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 'ł':
			return 'l'
		case 'Ł':
			return 'L'
		}
		return r
	}, out)
}

// foldLower is the common normalization for accent- and case-insensitive
// comparisons.
func foldLower(s string) string {
	return strings.ToLower(Fold(s))
}
