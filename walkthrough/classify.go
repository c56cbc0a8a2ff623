package walkthrough

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"

	"guidec/common"
)

//go:generate go tool go-enum

// lineKind tags classified body line, declaration order is the matching
// priority.
// ENUM(blank, header, divider, crystals, shop-heading, loot-marker, bullet, numbered, media, note, text)
type lineKind int

// line is a classified body line. Only fields relevant to kind are set.
type line struct {
	kind lineKind
	raw  string
	// payload: list item text, shop name, note text, media caption or
	// trimmed prose
	text string
	// indented is set when raw line starts with white space
	indented bool

	teleport, save bool

	url       string
	mediaType common.MediaType

	severity common.NoteSeverity
}

var (
	divider    = regexp.MustCompile(`^[-=]{3,}$`)
	crystals   = regexp.MustCompile(`(?i)^teleport\s+crystal\s*:\s*(yes|no)\b.*?save\s+crystal\s*:\s*(yes|no)\b`)
	lootMarker = regexp.MustCompile(`(?i)^-+\s*loot\s+alert\s*-+$`)
	shopHead   = regexp.MustCompile(`(?i)\bshop\s*:$`)
	bullet     = regexp.MustCompile(`^[-*•]\s+`)
	numbered   = regexp.MustCompile(`^\d+[.)]\s+`)
	link       = regexp.MustCompile(`https?://[^\s<>"']+`)
	notePrefix = regexp.MustCompile(`(?i)^(note|tip|warning|caution|missable)\s*:\s*`)
)

var severities = map[string]common.NoteSeverity{
	"note":     common.NoteSeverityInfo,
	"tip":      common.NoteSeverityInfo,
	"warning":  common.NoteSeverityWarning,
	"caution":  common.NoteSeverityWarning,
	"missable": common.NoteSeverityWarning,
}

var mediaTypes = map[string]common.MediaType{
	".png":  common.MediaTypeImage,
	".jpg":  common.MediaTypeImage,
	".jpeg": common.MediaTypeImage,
	".gif":  common.MediaTypeImage,
	".webp": common.MediaTypeImage,
	".bmp":  common.MediaTypeImage,
	".svg":  common.MediaTypeImage,
	".mp4":  common.MediaTypeVideo,
	".webm": common.MediaTypeVideo,
	".mov":  common.MediaTypeVideo,
	".m4v":  common.MediaTypeVideo,
	".avi":  common.MediaTypeVideo,
	".mkv":  common.MediaTypeVideo,
}

// classify applies body line grammar, first matching rule wins.
func classify(raw string) line {
	l := line{raw: raw, kind: lineKindText}
	trimmed := strings.TrimSpace(raw)
	l.indented = trimmed != "" && strings.TrimLeftFunc(raw, unicode.IsSpace) != raw

	if trimmed == "" {
		l.kind = lineKindBlank
		return l
	}
	if _, _, ok := parseHeader(trimmed); ok {
		l.kind = lineKindHeader
		return l
	}
	if divider.MatchString(trimmed) {
		l.kind = lineKindDivider
		return l
	}
	if m := crystals.FindStringSubmatch(trimmed); m != nil {
		l.kind = lineKindCrystals
		l.teleport = strings.EqualFold(m[1], "yes")
		l.save = strings.EqualFold(m[2], "yes")
		return l
	}
	if shopHead.MatchString(trimmed) {
		l.kind = lineKindShopHeading
		name := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
		if loc := bullet.FindStringIndex(name); loc != nil {
			name = name[loc[1]:]
		}
		l.text = strings.TrimSpace(name)
		return l
	}
	if lootMarker.MatchString(trimmed) {
		l.kind = lineKindLootMarker
		return l
	}
	if loc := bullet.FindStringIndex(trimmed); loc != nil {
		l.kind = lineKindBullet
		l.text = strings.TrimSpace(trimmed[loc[1]:])
		return l
	}
	if loc := numbered.FindStringIndex(trimmed); loc != nil {
		l.kind = lineKindNumbered
		l.text = strings.TrimSpace(trimmed[loc[1]:])
		return l
	}
	if loc := link.FindStringIndex(trimmed); loc != nil {
		l.kind = lineKindMedia
		l.url = strings.TrimRight(trimmed[loc[0]:loc[1]], ".,;:)")
		l.mediaType = mediaTypeOf(l.url)
		caption := strings.TrimSpace(trimmed[:loc[0]])
		caption = strings.TrimSpace(strings.TrimPrefix(caption, "Pic:"))
		l.text = strings.TrimRight(caption, " -:")
		return l
	}
	if loc := notePrefix.FindStringSubmatchIndex(trimmed); loc != nil {
		l.kind = lineKindNote
		l.severity = severities[strings.ToLower(trimmed[loc[2]:loc[3]])]
		l.text = strings.TrimSpace(trimmed[loc[1]:])
		return l
	}
	l.text = trimmed
	return l
}

func mediaTypeOf(link string) common.MediaType {
	p := link
	if u, err := url.Parse(link); err == nil {
		p = u.Path
	}
	return mediaTypes[strings.ToLower(path.Ext(p))]
}
