package walkthrough

import (
	"strings"

	"go.uber.org/zap"

	"guidec/common"
	"guidec/guide"
	"guidec/items"
	"guidec/text"
)

// parseLootAlert consumes lines up to the closing marker. Without closing
// marker before the next header only the paragraph right after the opening
// marker is taken.
func (p *bodyParser) parseLootAlert(marker string) {
	closing := -1
	for i := p.pos; i < len(p.lines) && p.lines[i].kind != lineKindHeader; i++ {
		if p.lines[i].kind == lineKindLootMarker {
			closing = i
			break
		}
	}

	var parts []string
	if closing >= 0 {
		for ; p.pos < closing; p.pos++ {
			if l := p.lines[p.pos]; l.kind != lineKindBlank {
				parts = append(parts, strings.TrimSpace(l.raw))
			}
		}
		p.pos = closing + 1
	} else {
		p.log.Debug("Loot alert is not closed", zap.String("code", p.draft.entry.Code))
	loop:
		for ; p.pos < len(p.lines); p.pos++ {
			switch l := p.lines[p.pos]; l.kind {
			case lineKindBlank:
				if len(parts) > 0 {
					break loop
				}
			case lineKindHeader, lineKindDivider, lineKindShopHeading:
				break loop
			default:
				parts = append(parts, strings.TrimSpace(l.raw))
			}
		}
	}

	description := text.CollapseSpace(strings.Join(parts, " "))
	if description == "" {
		p.log.Debug("Skipping empty loot alert", zap.String("code", p.draft.entry.Code))
		return
	}
	p.draft.entry.LootAlerts = append(p.draft.entry.LootAlerts, guide.LootAlert{
		Emphasis:    p.emphasis,
		Description: description,
	})

	for _, m := range items.ExtractWithin(description, marker+" "+description, common.ItemCategoryOther) {
		p.draft.mentions = append(p.draft.mentions, pendingMention{
			name:     m.Name,
			category: m.Category,
			kind:     common.OccurrenceKindLootAlert,
			detail:   p.emphasis,
			shop:     -1,
		})
	}
}
