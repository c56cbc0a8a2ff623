// Package guide defines the normalized walkthrough document produced by the
// compiler. JSON field names are the contract with document consumers.
package guide

import (
	"guidec/common"
)

// Label is a possibly bilingual title or name. Raw is always the source text.
type Label struct {
	Raw string `json:"raw"`
	En  string `json:"en,omitempty"`
	Jp  string `json:"jp,omitempty"`
}

func (l Label) IsZero() bool {
	return l.Raw == "" && l.En == "" && l.Jp == ""
}

// Display returns best human readable form of the label.
func (l Label) Display() string {
	switch {
	case l.En != "":
		return l.En
	case l.Raw != "":
		return l.Raw
	}
	return l.Jp
}

type TocEntry struct {
	Code       string             `json:"code"`
	Order      int                `json:"order"`
	Kind       common.SectionKind `json:"kind"`
	Label      Label              `json:"label"`
	ParentCode string             `json:"parentCode,omitempty"`
}

type Crystals struct {
	Teleport bool `json:"teleport"`
	Save     bool `json:"save"`
}

// ShopItem references registry record by ID only.
type ShopItem struct {
	ItemID  string `json:"itemId"`
	NameRaw string `json:"nameRaw"`
	NameJp  string `json:"nameJp,omitempty"`
	NameEn  string `json:"nameEn,omitempty"`
	Price   *int   `json:"price,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type ShopSection struct {
	Name  string     `json:"name"`
	Items []ShopItem `json:"items"`
}

type LootAlert struct {
	Emphasis    string `json:"emphasis"`
	Description string `json:"description"`
}

type Media struct {
	URL     string           `json:"url"`
	Type    common.MediaType `json:"type,omitempty"`
	Caption string           `json:"caption,omitempty"`
}

// Block is a narrative content block, a tagged union keyed by Kind:
// paragraph and note use Text, list uses Style and Items, note may set Severity.
type Block struct {
	Kind     common.BlockKind    `json:"kind"`
	Text     string              `json:"text,omitempty"`
	Style    common.ListStyle    `json:"style,omitempty"`
	Items    []string            `json:"items,omitempty"`
	Severity common.NoteSeverity `json:"severity,omitempty"`
}

func Paragraph(text string) Block {
	return Block{Kind: common.BlockKindParagraph, Text: text}
}

func List(style common.ListStyle, items []string) Block {
	return Block{Kind: common.BlockKindList, Style: style, Items: items}
}

func Note(text string, severity common.NoteSeverity) Block {
	return Block{Kind: common.BlockKindNote, Text: text, Severity: severity}
}

type Titles struct {
	Primary  Label  `json:"primary"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Entry is a single parsed guide section.
type Entry struct {
	Code            string             `json:"code"`
	Kind            common.SectionKind `json:"kind"`
	Titles          Titles             `json:"titles"`
	Location        string             `json:"location,omitempty"`
	Crystals        *Crystals          `json:"crystals,omitempty"`
	Shops           []ShopSection      `json:"shops,omitempty"`
	LootAlerts      []LootAlert        `json:"lootAlerts,omitempty"`
	Media           []Media            `json:"media,omitempty"`
	Narrative       []Block            `json:"narrative"`
	RelatedCodes    []string           `json:"relatedCodes,omitempty"`
	ItemsReferenced []string           `json:"itemsReferenced,omitempty"`
}

type Occurrence struct {
	Code   string                `json:"code"`
	Kind   common.OccurrenceKind `json:"kind"`
	Detail string                `json:"detail"`
}

// ItemRecord is owned by the item registry, everything else refers to it by ID.
type ItemRecord struct {
	ID          string              `json:"id"`
	Name        Label               `json:"name"`
	Category    common.ItemCategory `json:"category"`
	Occurrences []Occurrence        `json:"occurrences"`
}

type ChangelogEntry struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Notes   []string `json:"notes"`
}

type Meta struct {
	Title     string           `json:"title"`
	Subtitle  string           `json:"subtitle,omitempty"`
	Version   string           `json:"version,omitempty"`
	Author    string           `json:"author,omitempty"`
	Changelog []ChangelogEntry `json:"changelog,omitempty"`
	SourceID  string           `json:"sourceId,omitempty"`
}

// Document is the compiler output. Maps are serialized with sorted keys.
type Document struct {
	Meta    Meta                   `json:"meta"`
	TOC     []TocEntry             `json:"toc"`
	Entries map[string]*Entry      `json:"entries"`
	Items   map[string]*ItemRecord `json:"items"`
}
