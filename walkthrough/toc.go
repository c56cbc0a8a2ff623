// Package walkthrough compiles plain text walkthrough into normalized guide
// document: table of contents, per section entries and item registry.
package walkthrough

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"guidec/common"
	"guidec/guide"
	"guidec/text"
)

// Structural errors, input no longer matches expected document layout.
var (
	ErrNoTOCHeading   = errors.New("table of contents heading \"" + tocHeading + "\" not found")
	ErrNoTOCRows      = errors.New("no table row found after table of contents heading")
	ErrNoTOCEnd       = errors.New("table of contents end rule not found")
	ErrOrphanSubEntry = errors.New("sub-entry code encountered before any base code")
)

const (
	tocHeading = "Table of Contents"
	// fixed width horizontal rule closing the table of contents and opening
	// every section
	tableRule = "============================================================================="
)

var (
	tocRow   = regexp.MustCompile(`^\s*\|\s*([^|]*)\|\s*(.*?)\s*\|\s*$`)
	fullCode = regexp.MustCompile(`(?i)^wt\d{2,}[a-z]$`)
	subCode  = regexp.MustCompile(`(?i)^[a-z]$`)
)

// locateTOC returns table rows text and offset where section bodies start.
func locateTOC(src string) (string, int, error) {
	start := strings.Index(src, tocHeading)
	if start < 0 {
		return "", 0, ErrNoTOCHeading
	}
	first := strings.Index(src[start:], "\n|")
	if first < 0 {
		return "", 0, ErrNoTOCRows
	}
	first += start
	end := strings.Index(src[first:], tableRule)
	if end < 0 {
		return "", 0, ErrNoTOCEnd
	}
	end += first
	return src[first:end], end, nil
}

type tocDraft struct {
	entry guide.TocEntry
	title []string
}

// ParseTOC extracts ordered table of contents. Lettered sub-entries are
// expanded to full codes and linked to the primary code of their base.
func ParseTOC(src string, log *zap.Logger) ([]guide.TocEntry, error) {
	rows, _, err := locateTOC(src)
	if err != nil {
		return nil, err
	}

	var (
		drafts    []*tocDraft
		current   *tocDraft
		base      string
		seen      = make(map[string]bool)
		primaries = make(map[string]string)
	)
	for _, line := range text.SplitLines(rows) {
		m := tocRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rawCode, title := strings.TrimSpace(m[1]), text.CollapseSpace(m[2])

		if rawCode == "" {
			if current != nil && title != "" {
				current.title = append(current.title, title)
			}
			continue
		}

		var code string
		switch {
		case fullCode.MatchString(rawCode):
			code = strings.ToLower(rawCode)
			base = code[:len(code)-1]
			if _, ok := primaries[base]; !ok {
				primaries[base] = code
			}
		case subCode.MatchString(rawCode):
			if base == "" {
				return nil, fmt.Errorf("%w: %q", ErrOrphanSubEntry, rawCode)
			}
			code = base + strings.ToLower(rawCode)
		default:
			log.Debug("Skipping table of contents row with unknown code", zap.String("code", rawCode))
			continue
		}

		if seen[code] {
			log.Debug("Skipping duplicate table of contents code", zap.String("code", code))
			current = nil
			continue
		}
		seen[code] = true

		current = &tocDraft{
			entry: guide.TocEntry{Code: code, Order: len(drafts)},
			title: []string{title},
		}
		if primary := primaries[base]; primary != code {
			current.entry.ParentCode = primary
		}
		drafts = append(drafts, current)
	}

	toc := make([]guide.TocEntry, 0, len(drafts))
	for _, d := range drafts {
		raw := text.CollapseSpace(strings.Join(d.title, " "))
		d.entry.Kind = inferKind(raw)
		d.entry.Label = guide.ParseLabel(raw)
		toc = append(toc, d.entry)
	}
	return toc, nil
}

func inferKind(title string) common.SectionKind {
	lower := strings.ToLower(strings.TrimSpace(title))
	switch {
	case strings.Contains(lower, "loot alert"):
		return common.SectionKindLoot
	case strings.HasPrefix(lower, "mark:"):
		return common.SectionKindMark
	}
	return common.SectionKindStory
}

// baseOf returns numeric base of the section code ("wt03b" -> "wt03").
func baseOf(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[:len(code)-1]
}
