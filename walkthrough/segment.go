package walkthrough

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"guidec/text"
)

// Section is raw body of a single guide section as cut out of the source.
type Section struct {
	Code string
	// Title is the optional inline title from the header line.
	Title string
	Lines []string
}

var headerCode = regexp.MustCompile(`(?i)^wt\d{2,}[a-z]`)

// parseHeader recognizes section header lines "| wt01a |" and
// "| wt01a | Title |".
func parseHeader(line string) (code, title string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), "|")
	if !found {
		return "", "", false
	}
	rest = strings.TrimSpace(rest)
	loc := headerCode.FindStringIndex(rest)
	if loc == nil {
		return "", "", false
	}
	code = strings.ToLower(rest[:loc[1]])
	rest = strings.TrimSpace(rest[loc[1]:])

	switch {
	case rest == "":
	case strings.HasPrefix(rest, "|"):
		title = strings.TrimSuffix(strings.TrimSpace(rest[1:]), "|")
	default:
		return "", "", false
	}
	return code, text.CollapseSpace(title), true
}

// Segment cuts section bodies following the table of contents. Sections are
// returned in order of first appearance. When the same code opens several
// sections the one with more content is kept.
func Segment(src string, log *zap.Logger) ([]*Section, error) {
	_, bodyStart, err := locateTOC(src)
	if err != nil {
		return nil, err
	}

	var (
		sections []*Section
		current  *Section
		index    = make(map[string]int)
	)
	finish := func() {
		if current == nil {
			return
		}
		defer func() { current = nil }()

		i, dup := index[current.Code]
		if !dup {
			index[current.Code] = len(sections)
			sections = append(sections, current)
			return
		}
		kept := sections[i]
		if contentLines(current.Lines) > contentLines(kept.Lines) {
			log.Debug("Duplicate section, keeping later body", zap.String("code", current.Code))
			sections[i] = current
			return
		}
		log.Debug("Duplicate section, keeping earlier body", zap.String("code", current.Code))
	}

	for _, line := range text.SplitLines(src[bodyStart:]) {
		if strings.TrimSpace(line) == tableRule {
			continue
		}
		// header repeating current code stays in the body
		if code, title, ok := parseHeader(line); ok && (current == nil || current.Code != code) {
			finish()
			current = &Section{Code: code, Title: title}
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}
	finish()
	return sections, nil
}

func contentLines(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
