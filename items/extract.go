// Package items finds bilingual item mentions in guide text and resolves them
// to canonical item records.
package items

import (
	"regexp"
	"strings"
	"unicode"

	"guidec/common"
	"guidec/guide"
	"guidec/text"
)

// Mention is a single item reference found in free text.
type Mention struct {
	Name     guide.Label
	Category common.ItemCategory
	// Match is the parenthetical gloss as it appears in the source, used to
	// locate the mention context later.
	Match string
}

var gloss = regexp.MustCompile(`\(([^()]*)\)`)

// Extract returns bilingual mentions "<left>(<right>)" found in s where one of
// the sides is Japanese. Mentions are deduplicated case-insensitively. When hint
// is not specific category is inferred from keywords of s, and if s has neither
// category nor generic loot/shop/item keywords nothing is returned.
func Extract(s string, hint common.ItemCategory) []Mention {
	return ExtractWithin(s, s, hint)
}

// ExtractWithin is Extract with category keywords looked up in surrounding
// text rather than in s itself.
func ExtractWithin(s, surrounding string, hint common.ItemCategory) []Mention {
	locs := gloss.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}

	category := hint
	if !category.Specific() {
		category = Classify(surrounding)
		if !category.Specific() && !contextKeywords.MatchString(surrounding) {
			return nil
		}
	}

	var (
		out  []Mention
		seen = make(map[string]struct{})
		prev int
	)
	for _, loc := range locs {
		left, right := s[prev:loc[0]], s[loc[2]:loc[3]]
		prev = loc[1]

		name, ok := splitMention(left, right, false)
		if !ok {
			continue
		}
		key := strings.ToLower(name.Jp + "\x00" + name.En)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Mention{Name: name, Category: category, Match: s[loc[0]:loc[1]]})
	}
	return out
}

// ParseName interprets whole s as a single bilingual item name, as found on shop
// listing lines. Returns false when s has no Japanese bearing gloss.
func ParseName(s string) (guide.Label, bool) {
	locs := gloss.FindAllStringSubmatchIndex(s, -1)
	prev := 0
	for _, loc := range locs {
		left, right := s[prev:loc[0]], s[loc[2]:loc[3]]
		prev = loc[1]
		if name, ok := splitMention(left, right, true); ok {
			return name, true
		}
	}
	return guide.Label{}, false
}

// splitMention decides which side of the gloss is Japanese and picks the label
// from left text. With whole set the complete left text is the label, otherwise
// only its tail is used.
func splitMention(left, right string, whole bool) (guide.Label, bool) {
	left = text.CollapseSpace(left)
	right = text.CollapseSpace(right)
	leftJP, rightJP := text.HasJapanese(left), text.HasJapanese(right)

	var name guide.Label
	switch {
	case leftJP:
		label := left
		if !whole {
			if label = text.TrailingJapanese(left); label == "" {
				label = englishTail(left)
			}
		}
		if label == "" {
			return name, false
		}
		name.Jp = label
		if !rightJP {
			name.En = right
		}
		name.Raw = label + " (" + right + ")"
	case rightJP:
		label := left
		if !whole {
			label = englishTail(left)
		}
		label = strings.Trim(label, `"'.,;:!?-`)
		if label == "" || right == "" {
			return name, false
		}
		name.En, name.Jp = label, right
		name.Raw = label + " (" + right + ")"
	default:
		return name, false
	}
	return name, true
}

var connectors = map[string]bool{"of": true, "the": true, "de": true}

// englishTail picks the probable item name at the end of prose: the last
// clause, narrowed to its trailing capitalized words (up to three). A capital
// opening a sentence is not counted when a lowercase word follows it.
func englishTail(left string) string {
	clause := strings.TrimRight(left, " .!?")
	sentence := true
	if i := strings.LastIndexAny(clause, ",;:.!?"); i >= 0 {
		sentence = strings.IndexByte(":.!?", clause[i]) >= 0
		clause = clause[i+1:]
	}
	tokens := strings.Fields(clause)
	if len(tokens) == 0 {
		return ""
	}

	start := len(tokens)
	for i := len(tokens) - 1; i >= 0 && len(tokens)-i <= 3; i-- {
		tok := tokens[i]
		if i == 0 && sentence && len(tokens) > 1 && !capitalized(tokens[1]) {
			break
		}
		if capitalized(tok) {
			start = i
			continue
		}
		if connectors[strings.ToLower(tok)] && i > 0 && i < len(tokens)-1 && capitalized(tokens[i-1]) {
			continue
		}
		break
	}
	switch {
	case start < len(tokens):
		return strings.Join(tokens[start:], " ")
	case len(tokens) <= 3:
		return strings.Join(tokens, " ")
	}
	return tokens[len(tokens)-1]
}

func capitalized(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r) || unicode.IsDigit(r)
	}
	return false
}
