package walkthrough

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"guidec/common"
	"guidec/guide"
	"guidec/items"
	"guidec/text"
)

// Options controls single compilation run.
type Options struct {
	// Meta is copied into resulting document, SourceID is always computed.
	Meta guide.Meta
	// Workers limits number of sections parsed concurrently, 0 means number
	// of CPUs.
	Workers int
}

// Result of the compilation.
type Result struct {
	Document *guide.Document
	Coverage Coverage
}

// Compile turns walkthrough text into guide document. Sections are parsed
// concurrently, item mentions are then resolved sequentially in section order
// so output does not depend on scheduling.
func Compile(ctx context.Context, src string, opts Options, log *zap.Logger) (*Result, error) {
	toc, err := ParseTOC(src, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse table of contents: %w", err)
	}
	sections, err := Segment(src, log)
	if err != nil {
		return nil, fmt.Errorf("unable to segment sections: %w", err)
	}

	tocByCode := make(map[string]*guide.TocEntry, len(toc))
	for i := range toc {
		tocByCode[toc[i].Code] = &toc[i]
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	drafts := make([]*sectionDraft, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sec := range sections {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			drafts[i] = parseSection(sec, tocByCode, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &guide.Document{
		Meta:    opts.Meta,
		TOC:     toc,
		Entries: make(map[string]*guide.Entry, len(drafts)),
	}
	doc.Meta.SourceID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(src)).String()

	var (
		registry = items.NewRegistry()
		splitter = text.NewSplitter(log)
	)
	for _, d := range drafts {
		resolve(d, registry, splitter)
		doc.Entries[d.entry.Code] = d.entry
	}
	linkRelated(doc)
	doc.Items = registry.Export()

	log.Debug("Walkthrough compiled",
		zap.Int("toc", len(doc.TOC)),
		zap.Int("entries", len(doc.Entries)),
		zap.Int("items", len(doc.Items)))

	return &Result{Document: doc, Coverage: CheckCoverage(doc.TOC, doc.Entries)}, nil
}

// parseSection builds entry skeleton from header and table of contents, then
// parses the body.
func parseSection(sec *Section, toc map[string]*guide.TocEntry, log *zap.Logger) *sectionDraft {
	entry := &guide.Entry{
		Code:      sec.Code,
		Kind:      common.SectionKindOther,
		Narrative: []guide.Block{},
	}

	listed := toc[sec.Code]
	switch {
	case sec.Title != "":
		entry.Titles.Primary = guide.ParseLabel(sec.Title)
		if listed != nil && listed.Label.Raw != "" && listed.Label.Raw != sec.Title {
			entry.Titles.Subtitle = listed.Label.Raw
		}
	case listed != nil && !listed.Label.IsZero():
		entry.Titles.Primary = listed.Label
	default:
		entry.Titles.Primary = guide.Label{Raw: sec.Code}
	}

	emphasis := defaultEmphasis
	switch {
	case listed != nil:
		entry.Kind = listed.Kind
		emphasis = lootEmphasis(listed.Label.Raw)
		if parent, ok := toc[listed.ParentCode]; ok {
			entry.Location = parent.Label.Display()
		}
	case sec.Title != "":
		entry.Kind = inferKind(sec.Title)
	}

	return parseBody(entry, sec.Lines, emphasis, log.With(zap.String("code", sec.Code)))
}

// resolve registers section mentions in source order and links shop items
// and entry to resolved IDs.
func resolve(d *sectionDraft, registry *items.Registry, splitter *text.Splitter) {
	seen := make(map[string]bool)
	for _, m := range d.mentions {
		detail := m.detail
		if m.kind == common.OccurrenceKindNarrative {
			detail = splitter.SentenceWith(m.context, m.match)
		}
		id := registry.Register(m.name, m.category, guide.Occurrence{
			Code:   d.entry.Code,
			Kind:   m.kind,
			Detail: detail,
		})
		if id == "" {
			continue
		}
		if m.shop >= 0 {
			d.entry.Shops[m.shop].Items[m.item].ItemID = id
		}
		if !seen[id] {
			seen[id] = true
			d.entry.ItemsReferenced = append(d.entry.ItemsReferenced, id)
		}
	}
}

// linkRelated fills related codes: all other known codes sharing entry base.
func linkRelated(doc *guide.Document) {
	groups := make(map[string]map[string]bool)
	add := func(code string) {
		base := baseOf(code)
		if groups[base] == nil {
			groups[base] = make(map[string]bool)
		}
		groups[base][code] = true
	}
	for _, e := range doc.TOC {
		add(e.Code)
	}
	for code := range doc.Entries {
		add(code)
	}

	for code, entry := range doc.Entries {
		var related []string
		for other := range groups[baseOf(code)] {
			if other != code {
				related = append(related, other)
			}
		}
		sort.Sort(natural.StringSlice(related))
		entry.RelatedCodes = related
	}
}
