package items

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"guidec/text"
)

// Slugify converts item name to ID-safe form: compatibility decomposition,
// diacritics and Japanese script removed, then lowercased with non
// alphanumeric runs replaced by "-". Pure Japanese names produce empty slug.
// For example: "Pótion of Life ポーション" -> "potion-of-life"
func Slugify(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(text.IsJapanese)),
		norm.NFC,
	)
	latin, _, err := transform.String(t, s)
	if err != nil {
		latin = s
	}
	if strings.TrimSpace(latin) == "" {
		return ""
	}
	return slug.Make(latin)
}

// normalizeAlias produces registry lookup key: NFKC folded, lowercased,
// punctuation and symbols dropped (Japanese kept), white space collapsed.
func normalizeAlias(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))

	var (
		b     strings.Builder
		space bool
	)
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case (unicode.IsPunct(r) || unicode.IsSymbol(r)) && !text.IsJapanese(r):
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
