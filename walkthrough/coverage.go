package walkthrough

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"guidec/guide"
)

// Coverage lists mismatches between table of contents and parsed sections.
// Mismatches are never fatal.
type Coverage struct {
	// MissingSections are table of contents codes without section body, in
	// table order.
	MissingSections []string
	// UnlistedEntries are parsed section codes absent from table of contents.
	UnlistedEntries []string
}

// CheckCoverage cross-checks table of contents against parsed entries.
func CheckCoverage(toc []guide.TocEntry, entries map[string]*guide.Entry) Coverage {
	var c Coverage

	listed := make(map[string]bool, len(toc))
	for _, e := range toc {
		listed[e.Code] = true
		if _, ok := entries[e.Code]; !ok {
			c.MissingSections = append(c.MissingSections, e.Code)
		}
	}
	for code := range entries {
		if !listed[code] {
			c.UnlistedEntries = append(c.UnlistedEntries, code)
		}
	}
	sort.Sort(natural.StringSlice(c.UnlistedEntries))
	return c
}

func (c Coverage) Complete() bool {
	return len(c.MissingSections) == 0 && len(c.UnlistedEntries) == 0
}

// Err combines both mismatch kinds into single error, nil when coverage is
// complete.
func (c Coverage) Err() (err error) {
	if len(c.MissingSections) > 0 {
		err = multierr.Append(err, fmt.Errorf("%d table of contents entries are missing guide sections: %s",
			len(c.MissingSections), strings.Join(c.MissingSections, ", ")))
	}
	if len(c.UnlistedEntries) > 0 {
		err = multierr.Append(err, fmt.Errorf("%d guide entries do not appear in the table of contents: %s",
			len(c.UnlistedEntries), strings.Join(c.UnlistedEntries, ", ")))
	}
	return err
}

// Report logs mismatches as warnings.
func (c Coverage) Report(log *zap.Logger) {
	for _, err := range multierr.Errors(c.Err()) {
		log.Warn("Coverage mismatch", zap.Error(err))
	}
}
