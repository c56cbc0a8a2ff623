// Package text holds small text helpers shared by the walkthrough parsers and
// the item registry.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsJapanese reports whether rune belongs to Han, Hiragana or Katakana scripts.
// Prolonged sound mark and katakana middle dot are script "Common" in Unicode
// tables but are part of item names.
func IsJapanese(r rune) bool {
	switch r {
	case 'ー', '・', 'ｰ', '･':
		return true
	}
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana)
}

// HasJapanese reports whether s contains at least one Japanese rune.
func HasJapanese(s string) bool {
	return strings.IndexFunc(s, IsJapanese) >= 0
}

// TrailingJapanese returns the contiguous run of Japanese runes at the end of s
// (trailing spaces ignored). Empty when s does not end with Japanese text.
func TrailingJapanese(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	start := len(s)
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:start])
		if !IsJapanese(r) {
			break
		}
		start -= size
	}
	return s[start:]
}

// CollapseSpace replaces every run of white space with a single ASCII space and
// trims both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitLines splits s on "\n" dropping "\r" of Windows line endings.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
