// Package debug renders indented human readable trees for debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

// Line writes formatted line at the requested depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" with quoted value, empty values are skipped.
func (tw TreeWriter) Field(depth int, label, value string) {
	if value == "" {
		return
	}
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

// List writes label with item count followed by every value one level deeper.
func (tw TreeWriter) List(depth int, label string, values []string) {
	if len(values) == 0 {
		return
	}
	tw.Line(depth, "%s (%d)", label, len(values))
	for i, v := range values {
		tw.Line(depth+1, "[%d] %s", i, strconv.Quote(v))
	}
}
