// Package common keeps enumerations shared by the document model, the parsers
// and the item registry. Values are the exact strings written to the output
// document, consumers switch on them.
package common

//go:generate go tool go-enum --names

// Kind of the guide section, inferred from its table of contents title.
// ENUM(story, mark, loot, other)
type SectionKind string

// Coarse category of a game item.
// ENUM(weapon, armor, magick, technick, accessory, ammunition, key, item, other)
type ItemCategory string

// Specific reports whether category carries real information, empty value is
// treated as "other".
func (c ItemCategory) Specific() bool {
	return c != "" && c != ItemCategoryOther
}

// Where item mention was found.
// ENUM(shop, loot-alert, narrative)
type OccurrenceKind string

// Narrative content block variants.
// ENUM(paragraph, list, note)
type BlockKind string

// ENUM(bullet, number)
type ListStyle string

// ENUM(info, warning)
type NoteSeverity string

// Media type inferred from link file extension, empty when unknown.
// ENUM(image, video)
type MediaType string
