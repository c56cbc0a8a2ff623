package guide

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"guidec/utils/debug"
)

// String returns a readable tree of the whole document. It exists solely for
// manual inspection and debug reports.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Meta")
	tw.Field(1, "title", d.Meta.Title)
	tw.Field(1, "version", d.Meta.Version)
	tw.Field(1, "source id", d.Meta.SourceID)

	tw.Line(0, "TOC (%d entries)", len(d.TOC))
	for _, e := range d.TOC {
		tw.Line(1, "[%d] %s kind=%s parent=%q", e.Order, e.Code, e.Kind, e.ParentCode)
		tw.Field(2, "label", e.Label.Raw)
	}

	codes := slices.Collect(maps.Keys(d.Entries))
	sort.Sort(natural.StringSlice(codes))
	tw.Line(0, "Entries (%d)", len(codes))
	for _, code := range codes {
		e := d.Entries[code]
		tw.Line(1, "Entry %s kind=%s blocks=%d", code, e.Kind, len(e.Narrative))
		tw.Field(2, "title", e.Titles.Primary.Raw)
		tw.Field(2, "location", e.Location)
		if e.Crystals != nil {
			tw.Line(2, "crystals teleport=%t save=%t", e.Crystals.Teleport, e.Crystals.Save)
		}
		for _, shop := range e.Shops {
			tw.Line(2, "Shop %q (%d items)", shop.Name, len(shop.Items))
			for _, it := range shop.Items {
				price := -1
				if it.Price != nil {
					price = *it.Price
				}
				tw.Line(3, "%s raw=%q price=%d", it.ItemID, it.NameRaw, price)
				tw.Field(4, "notes", it.Notes)
			}
		}
		for _, la := range e.LootAlerts {
			tw.Line(2, "Loot alert %q", la.Emphasis)
		}
		for _, m := range e.Media {
			tw.Line(2, "Media type=%q %s", m.Type, m.URL)
		}
		tw.List(2, "Related", e.RelatedCodes)
		tw.List(2, "Items", e.ItemsReferenced)
	}

	ids := slices.Collect(maps.Keys(d.Items))
	sort.Sort(natural.StringSlice(ids))
	tw.Line(0, "Items (%d)", len(ids))
	for _, id := range ids {
		it := d.Items[id]
		tw.Line(1, "Item %s category=%s occurrences=%d", id, it.Category, len(it.Occurrences))
		tw.Field(2, "en", it.Name.En)
		tw.Field(2, "jp", it.Name.Jp)
		for i, o := range it.Occurrences {
			tw.Line(2, "[%d] %s %s", i, o.Code, o.Kind)
		}
	}
	return tw.String()
}
