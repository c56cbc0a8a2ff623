package walkthrough

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"guidec/common"
	"guidec/guide"
	"guidec/items"
)

var priceSuffix = regexp.MustCompile(`(?i)[\s\-–.:…]*(\d[\d,]*)\s*gil\s*$`)

// parseShop consumes shop listing following the heading. Listing ends at
// divider, next shop, loot alert marker, header or crystal status line. After
// a blank line only item lines keep listing going.
func (p *bodyParser) parseShop(name string) {
	var (
		hint  = items.ShopCategory(name)
		shop  = guide.ShopSection{Name: name, Items: []guide.ShopItem{}}
		index = len(p.draft.entry.Shops)
		gap   bool
	)

loop:
	for ; p.pos < len(p.lines); p.pos++ {
		l := p.lines[p.pos]
		switch l.kind {
		case lineKindDivider, lineKindShopHeading, lineKindLootMarker, lineKindHeader, lineKindCrystals:
			break loop
		case lineKindBlank:
			gap = true
			continue
		}

		s := strings.TrimSpace(l.raw)
		if l.kind == lineKindBullet || l.kind == lineKindNumbered {
			s = l.text
		}

		item, label, ok := parseShopItem(s)
		if !ok {
			if gap {
				break loop
			}
			if n := len(shop.Items); n > 0 {
				shop.Items[n-1].Notes = strings.TrimSpace(shop.Items[n-1].Notes + " " + s)
			} else {
				p.log.Debug("Dropping shop line before first item", zap.String("shop", shop.Name), zap.String("line", s))
			}
			continue
		}
		gap = false

		shop.Items = append(shop.Items, item)
		p.draft.mentions = append(p.draft.mentions, pendingMention{
			name:     label,
			category: hint,
			kind:     common.OccurrenceKindShop,
			detail:   shopDetail(shop.Name, item.Price),
			shop:     index,
			item:     len(shop.Items) - 1,
		})
	}
	p.draft.entry.Shops = append(p.draft.entry.Shops, shop)
}

// parseShopItem reads "<label> [<price> gil]". Line is an item when it has
// bilingual label or price.
func parseShopItem(s string) (guide.ShopItem, guide.Label, bool) {
	var (
		price *int
		rest  = s
	)
	if m := priceSuffix.FindStringSubmatchIndex(s); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(s[m[2]:m[3]], ",", "")); err == nil {
			price = &n
			rest = strings.TrimSpace(s[:m[0]])
		}
	}

	name, ok := items.ParseName(rest)
	if !ok {
		if price == nil || rest == "" {
			return guide.ShopItem{}, guide.Label{}, false
		}
		name = guide.ParseLabel(rest)
	}
	return guide.ShopItem{
		NameRaw: name.Raw,
		NameJp:  name.Jp,
		NameEn:  name.En,
		Price:   price,
	}, name, true
}

func shopDetail(name string, price *int) string {
	if price == nil {
		return name
	}
	return fmt.Sprintf("%s (%d gil)", name, *price)
}
