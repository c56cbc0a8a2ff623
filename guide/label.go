package guide

import (
	"regexp"
	"strings"

	"guidec/text"
)

var trailingGloss = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)\s*$`)

// ParseLabel splits title of the form "English (日本語)" or "日本語 (English)"
// into its parts. Titles without a gloss go entirely into the side matching
// their script.
func ParseLabel(raw string) Label {
	raw = text.CollapseSpace(raw)
	l := Label{Raw: raw}
	if raw == "" {
		return l
	}

	if m := trailingGloss.FindStringSubmatch(raw); m != nil {
		left, right := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		leftJP, rightJP := text.HasJapanese(left), text.HasJapanese(right)
		switch {
		case rightJP && !leftJP:
			l.En, l.Jp = left, right
			return l
		case leftJP && !rightJP:
			l.Jp, l.En = left, right
			return l
		}
	}

	if text.HasJapanese(raw) {
		l.Jp = raw
	} else {
		l.En = raw
	}
	return l
}
