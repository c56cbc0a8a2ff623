package items

import (
	"slices"
	"testing"

	"guidec/common"
	"guidec/guide"
)

var potion = guide.Label{Raw: "ポーション (Potion)", En: "Potion", Jp: "ポーション"}

func TestRegistryIdempotent(t *testing.T) {
	r := NewRegistry()

	first := r.Register(potion, common.ItemCategoryItem, guide.Occurrence{Code: "wt01a", Kind: common.OccurrenceKindShop})
	second := r.Register(potion, common.ItemCategoryItem, guide.Occurrence{Code: "wt01b", Kind: common.OccurrenceKindLootAlert})

	if first != "potion" || second != first {
		t.Fatalf("Register() = %q, %q, want %q twice", first, second, "potion")
	}
	rec, ok := r.Lookup(first)
	if !ok {
		t.Fatalf("Lookup(%q) failed", first)
	}
	if len(rec.Occurrences) != 2 {
		t.Errorf("occurrences = %d, want 2", len(rec.Occurrences))
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryAliasMerge(t *testing.T) {
	r := NewRegistry()

	id := r.Register(guide.Label{Raw: "Potion", En: "Potion"}, common.ItemCategoryOther, guide.Occurrence{Code: "wt01a"})
	if got := r.Register(potion, common.ItemCategoryItem, guide.Occurrence{Code: "wt02a"}); got != id {
		t.Fatalf("Register(bilingual) = %q, want %q", got, id)
	}
	// japanese alias was learned from the previous call
	if got := r.Register(guide.Label{Raw: "ポーション", Jp: "ポーション"}, common.ItemCategoryOther, guide.Occurrence{Code: "wt03a"}); got != id {
		t.Fatalf("Register(japanese only) = %q, want %q", got, id)
	}

	rec, _ := r.Lookup(id)
	want := guide.Label{Raw: "Potion", En: "Potion", Jp: "ポーション"}
	if rec.Name != want {
		t.Errorf("Name = %+v, want %+v", rec.Name, want)
	}
	if rec.Category != common.ItemCategoryItem {
		t.Errorf("Category = %q, want %q", rec.Category, common.ItemCategoryItem)
	}

	if got, ok := r.Resolve(guide.Label{En: "  POTION! "}); !ok || got != id {
		t.Errorf("Resolve() = %q, %v, want %q, true", got, ok, id)
	}
}

func TestRegistryCategoryMonotonic(t *testing.T) {
	r := NewRegistry()
	name := guide.Label{Raw: "Bronze Sword", En: "Bronze Sword"}

	id := r.Register(name, common.ItemCategoryOther, guide.Occurrence{})
	steps := []struct {
		in   common.ItemCategory
		want common.ItemCategory
	}{
		{common.ItemCategoryOther, common.ItemCategoryOther},
		{common.ItemCategoryWeapon, common.ItemCategoryWeapon},
		{common.ItemCategoryOther, common.ItemCategoryWeapon},
		{common.ItemCategoryArmor, common.ItemCategoryWeapon},
		{"", common.ItemCategoryWeapon},
	}
	for i, s := range steps {
		r.Register(name, s.in, guide.Occurrence{})
		rec, _ := r.Lookup(id)
		if rec.Category != s.want {
			t.Errorf("step %d: Register(%q) category = %q, want %q", i, s.in, rec.Category, s.want)
		}
	}
}

func TestRegistrySlugCollision(t *testing.T) {
	r := NewRegistry()

	a := r.Register(guide.Label{Raw: "Potion", En: "Potion"}, common.ItemCategoryItem, guide.Occurrence{})
	b := r.Register(guide.Label{Raw: "Pótion", En: "Pótion"}, common.ItemCategoryItem, guide.Occurrence{})
	c := r.Register(guide.Label{Raw: "POTION!", En: "POTION!"}, common.ItemCategoryItem, guide.Occurrence{})

	if a != "potion" || b != "potion-2" {
		t.Errorf("Register() = %q, %q, want %q, %q", a, b, "potion", "potion-2")
	}
	// same alias once punctuation and case are dropped
	if c != a {
		t.Errorf("Register(POTION!) = %q, want %q", c, a)
	}
}

func TestRegistryPlaceholder(t *testing.T) {
	r := NewRegistry()

	a := r.Register(guide.Label{Raw: "ポーション", Jp: "ポーション"}, common.ItemCategoryItem, guide.Occurrence{})
	b := r.Register(guide.Label{Raw: "エーテル", Jp: "エーテル"}, common.ItemCategoryItem, guide.Occurrence{})
	empty := r.Register(guide.Label{}, common.ItemCategoryItem, guide.Occurrence{})

	if a != "item-1" || b != "item-2" {
		t.Errorf("Register() = %q, %q, want %q, %q", a, b, "item-1", "item-2")
	}
	if empty != "" {
		t.Errorf("Register(empty) = %q, want empty", empty)
	}
	if got, want := r.IDs(), []string{"item-1", "item-2"}; !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Potion", "potion"},
		{"Hi-Potion", "hi-potion"},
		{"Phoenix Down", "phoenix-down"},
		{"Pótion of Life ポーション", "potion-of-life"},
		{"ＡＢＣ Sword", "abc-sword"},
		{"ポーション", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAlias(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Hi-Potion ", "hipotion"},
		{"Phoenix   Down", "phoenix down"},
		{"ポーション・改", "ポーション・改"},
		{"ＰＯＴＩＯＮ", "potion"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeAlias(tt.input); got != tt.want {
				t.Errorf("normalizeAlias(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
