package walkthrough

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"guidec/common"
	"guidec/guide"
	"guidec/items"
	"guidec/text"
)

// pendingMention is an item mention waiting for registry resolution. Sections
// are parsed independently, registry is only touched afterwards.
type pendingMention struct {
	name     guide.Label
	category common.ItemCategory
	kind     common.OccurrenceKind
	// detail is final occurrence detail for shop and loot alert mentions
	detail string
	// context and match locate the sentence for narrative mentions
	context string
	match   string
	// position of shop item receiving resolved ID, shop is -1 otherwise
	shop, item int
}

type sectionDraft struct {
	entry    *guide.Entry
	mentions []pendingMention
}

type bodyParser struct {
	log      *zap.Logger
	lines    []line
	pos      int
	emphasis string

	para         []string
	paraMentions []int

	draft *sectionDraft
}

var lootPrefix = regexp.MustCompile(`(?i)^\s*loot\s+alert\s*:?\s*`)

const defaultEmphasis = "Loot Alert"

// lootEmphasis strips fixed prefix from section title.
func lootEmphasis(title string) string {
	if e := strings.TrimSpace(lootPrefix.ReplaceAllString(title, "")); e != "" {
		return e
	}
	return defaultEmphasis
}

// parseBody runs single pass over section lines filling entry blocks, shops,
// loot alerts, media and crystals and collecting item mentions.
func parseBody(entry *guide.Entry, lines []string, emphasis string, log *zap.Logger) *sectionDraft {
	p := &bodyParser{
		log:      log,
		lines:    make([]line, 0, len(lines)),
		emphasis: emphasis,
		draft:    &sectionDraft{entry: entry},
	}
	for _, l := range lines {
		p.lines = append(p.lines, classify(l))
	}

	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		switch l.kind {
		case lineKindBlank:
			p.flush()
			p.pos++
		case lineKindHeader:
			p.pos++
		case lineKindDivider:
			p.flush()
			p.pos++
		case lineKindCrystals:
			p.flush()
			entry.Crystals = &guide.Crystals{Teleport: l.teleport, Save: l.save}
			p.pos++
		case lineKindShopHeading:
			p.flush()
			p.pos++
			p.parseShop(l.text)
		case lineKindLootMarker:
			p.flush()
			p.pos++
			p.parseLootAlert(l.raw)
		case lineKindBullet, lineKindNumbered:
			p.flush()
			p.parseList(l.kind)
		case lineKindMedia:
			p.flush()
			entry.Media = append(entry.Media, guide.Media{URL: l.url, Type: l.mediaType, Caption: l.text})
			p.pos++
		case lineKindNote:
			p.flush()
			entry.Narrative = append(entry.Narrative, guide.Note(l.text, l.severity))
			p.narrative(l.text, l.text)
			p.pos++
		default:
			p.paraMentions = append(p.paraMentions, p.narrative(l.text, "")...)
			p.para = append(p.para, l.text)
			p.pos++
		}
	}
	p.flush()
	return p.draft
}

// flush closes current paragraph, mentions found on its lines get the whole
// paragraph as context.
func (p *bodyParser) flush() {
	if len(p.para) == 0 {
		return
	}
	paragraph := text.CollapseSpace(strings.Join(p.para, " "))
	for _, i := range p.paraMentions {
		p.draft.mentions[i].context = paragraph
	}
	p.draft.entry.Narrative = append(p.draft.entry.Narrative, guide.Paragraph(paragraph))
	p.para, p.paraMentions = nil, nil
}

// narrative records mentions found in s and returns their indexes.
func (p *bodyParser) narrative(s, context string) []int {
	var added []int
	for _, m := range items.Extract(s, common.ItemCategoryOther) {
		added = append(added, len(p.draft.mentions))
		p.draft.mentions = append(p.draft.mentions, pendingMention{
			name:     m.Name,
			category: m.Category,
			kind:     common.OccurrenceKindNarrative,
			context:  context,
			match:    m.Match,
			shop:     -1,
		})
	}
	return added
}

// parseList consumes run of list lines of the same kind. Indented prose lines
// continue previous item.
func (p *bodyParser) parseList(kind lineKind) {
	style := common.ListStyleBullet
	if kind == lineKindNumbered {
		style = common.ListStyleNumber
	}

	var entries []string
loop:
	for ; p.pos < len(p.lines); p.pos++ {
		l := p.lines[p.pos]
		switch {
		case l.kind == kind:
			entries = append(entries, l.text)
		case l.kind == lineKindText && l.indented && len(entries) > 0:
			entries[len(entries)-1] += " " + l.text
		default:
			break loop
		}
	}

	for i, e := range entries {
		entries[i] = text.CollapseSpace(e)
		p.narrative(entries[i], entries[i])
	}
	p.draft.entry.Narrative = append(p.draft.entry.Narrative, guide.List(style, entries))
}
