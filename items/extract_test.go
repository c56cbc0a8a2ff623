package items

import (
	"testing"

	"guidec/common"
	"guidec/guide"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hint  common.ItemCategory
		want  []Mention
	}{
		{
			name:  "japanese left, category from text",
			input: "Buy a ポーション (Potion) before leaving",
			want: []Mention{{
				Name:     guide.Label{Raw: "ポーション (Potion)", En: "Potion", Jp: "ポーション"},
				Category: common.ItemCategoryItem,
				Match:    "(Potion)",
			}},
		},
		{
			name:  "japanese right",
			input: "You'll find a Broadsword (ブロードソード) in the chest",
			hint:  common.ItemCategoryWeapon,
			want: []Mention{{
				Name:     guide.Label{Raw: "Broadsword (ブロードソード)", En: "Broadsword", Jp: "ブロードソード"},
				Category: common.ItemCategoryWeapon,
				Match:    "(ブロードソード)",
			}},
		},
		{
			name:  "hint wins over keywords",
			input: "Potion seller offers 銅の剣 (Bronze Sword)",
			hint:  common.ItemCategoryWeapon,
			want: []Mention{{
				Name:     guide.Label{Raw: "銅の剣 (Bronze Sword)", En: "Bronze Sword", Jp: "銅の剣"},
				Category: common.ItemCategoryWeapon,
				Match:    "(Bronze Sword)",
			}},
		},
		{
			name:  "duplicates dropped case insensitively",
			input: "Grab ポーション (Potion) and another ポーション (potion) from the loot",
			want: []Mention{{
				Name:     guide.Label{Raw: "ポーション (Potion)", En: "Potion", Jp: "ポーション"},
				Category: common.ItemCategoryItem,
				Match:    "(Potion)",
			}},
		},
		{
			name:  "generic keyword keeps mention as other",
			input: "Loot: 謎の石 (Mystic Stone)",
			want: []Mention{{
				Name:     guide.Label{Raw: "謎の石 (Mystic Stone)", En: "Mystic Stone", Jp: "謎の石"},
				Category: common.ItemCategoryOther,
				Match:    "(Mystic Stone)",
			}},
		},
		{
			name:  "sentence opening verb left out",
			input: "Then go on. Get the Potion (ポーション) from the chest.",
			want: []Mention{{
				Name:     guide.Label{Raw: "Potion (ポーション)", En: "Potion", Jp: "ポーション"},
				Category: common.ItemCategoryItem,
				Match:    "(ポーション)",
			}},
		},
		{
			name:  "no category signal",
			input: "Talk to バルフレア (Balthier) at the gate",
		},
		{
			name:  "plain parenthetical",
			input: "Take the potion (north exit) first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input, tt.hint)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) returned %d mentions, want %d: %+v", tt.input, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Extract(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		input string
		want  guide.Label
		ok    bool
	}{
		{"ポーション (Potion)", guide.Label{Raw: "ポーション (Potion)", En: "Potion", Jp: "ポーション"}, true},
		{"Long Sword (ロングソード)", guide.Label{Raw: "Long Sword (ロングソード)", En: "Long Sword", Jp: "ロングソード"}, true},
		{"ハイポーション(Hi-Potion)", guide.Label{Raw: "ハイポーション (Hi-Potion)", En: "Hi-Potion", Jp: "ハイポーション"}, true},
		{"Potion", guide.Label{}, false},
		{"Potion (x2)", guide.Label{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseName(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseName(%q) = %+v, %v, want %+v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEnglishTail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"You can buy a Hi-Potion", "Hi-Potion"},
		{"Find the Ring of Renewal", "Ring of Renewal"},
		{"east side, Iron Sword", "Iron Sword"},
		{"some old potion", "some old potion"},
		{"Get the Potion", "Potion"},
		{"It is gone. Take the Iron Sword", "Iron Sword"},
		{"Iron Sword", "Iron Sword"},
		{"Open it! Find Ring of Renewal", "Ring of Renewal"},
		{"look behind the fallen pillar for potion", "potion"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := englishTail(tt.input); got != tt.want {
				t.Errorf("englishTail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractWithin(t *testing.T) {
	const s = "Behind the waterfall: ブロードソード (Broadsword)"

	if got := Extract(s, common.ItemCategoryOther); len(got) != 0 {
		t.Errorf("Extract(%q) = %+v, want nothing", s, got)
	}

	got := ExtractWithin(s, "-LOOT ALERT- "+s, common.ItemCategoryOther)
	if len(got) != 1 {
		t.Fatalf("ExtractWithin(%q) returned %d mentions, want 1", s, len(got))
	}
	want := guide.Label{Raw: "ブロードソード (Broadsword)", En: "Broadsword", Jp: "ブロードソード"}
	if got[0].Name != want || got[0].Category != common.ItemCategoryOther {
		t.Errorf("ExtractWithin(%q) = %+v, want %+v in category other", s, got[0], want)
	}
}
