package codegen

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// writer builds output line by line. Every line ends with "\n" except that
// String trims the final one, so segments can be joined with blank lines.
type writer struct {
	b strings.Builder
}

// line writes one line indented by depth levels of two spaces.
func (w *writer) line(depth int, format string, args ...any) {
	w.b.WriteString(strings.Repeat(indentUnit, depth))
	if len(args) == 0 {
		w.b.WriteString(format)
	} else {
		fmt.Fprintf(&w.b, format, args...)
	}
	w.b.WriteByte('\n')
}

func (w *writer) String() string {
	return strings.TrimSuffix(w.b.String(), "\n")
}
