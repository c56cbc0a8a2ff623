package items

import (
	"fmt"
	"maps"
	"slices"

	"guidec/common"
	"guidec/guide"
)

// Registry resolves item mentions to canonical records. It is created once per
// compilation and is not safe for concurrent use: resolution must run as a
// sequential pass to keep first-seen-wins aliasing deterministic.
type Registry struct {
	items        map[string]*guide.ItemRecord
	aliases      map[string]string
	placeholders int
}

func NewRegistry() *Registry {
	return &Registry{
		items:   make(map[string]*guide.ItemRecord),
		aliases: make(map[string]string),
	}
}

// Register records occurrence of the named item and returns its ID. A new record
// is created when none of the name aliases is known. Returns empty string for
// names with no usable alias.
func (r *Registry) Register(name guide.Label, category common.ItemCategory, occ guide.Occurrence) string {
	aliases := buildAliases(name)
	if len(aliases) == 0 {
		return ""
	}

	id := ""
	for _, a := range aliases {
		if found, ok := r.aliases[a]; ok {
			id = found
			break
		}
	}
	if id == "" {
		id = r.mint(name)
		r.items[id] = &guide.ItemRecord{ID: id, Category: common.ItemCategoryOther}
	}
	// never remap alias already pointing somewhere
	for _, a := range aliases {
		if _, ok := r.aliases[a]; !ok {
			r.aliases[a] = id
		}
	}

	rec := r.items[id]
	rec.Name = mergeNames(rec.Name, name)
	if !rec.Category.Specific() && category.Specific() {
		rec.Category = category
	}
	rec.Occurrences = append(rec.Occurrences, occ)
	return id
}

// Lookup returns record by ID.
func (r *Registry) Lookup(id string) (*guide.ItemRecord, bool) {
	rec, ok := r.items[id]
	return rec, ok
}

// Resolve returns ID registered for the name without changing registry.
func (r *Registry) Resolve(name guide.Label) (string, bool) {
	for _, a := range buildAliases(name) {
		if id, ok := r.aliases[a]; ok {
			return id, true
		}
	}
	return "", false
}

func (r *Registry) Len() int {
	return len(r.items)
}

// IDs returns all item IDs sorted.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.items))
}

// Export hands records over for serialization, registry should be discarded
// afterwards.
func (r *Registry) Export() map[string]*guide.ItemRecord {
	return maps.Clone(r.items)
}

func (r *Registry) mint(name guide.Label) string {
	best := name.En
	if best == "" {
		best = name.Jp
	}
	if best == "" {
		best = name.Raw
	}

	base := Slugify(best)
	if base == "" {
		r.placeholders++
		base = fmt.Sprintf("item-%d", r.placeholders)
	}

	id := base
	for n := 2; ; n++ {
		if _, exists := r.items[id]; !exists {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

// buildAliases returns distinct non-empty aliases in en, jp, raw priority order.
func buildAliases(name guide.Label) []string {
	var out []string
	for _, v := range []string{name.En, name.Jp, name.Raw} {
		a := normalizeAlias(v)
		if a == "" || slices.Contains(out, a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// mergeNames keeps already known parts of the name and fills the gaps.
func mergeNames(existing, incoming guide.Label) guide.Label {
	if existing.En == "" {
		existing.En = incoming.En
	}
	if existing.Jp == "" {
		existing.Jp = incoming.Jp
	}
	if existing.Raw == "" {
		existing.Raw = incoming.Raw
	}
	return existing
}
