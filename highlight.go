package main

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// jsToken matches, in priority order: a line comment, a quoted string, a
// component tag opener, a keyword and a number.
var jsToken = regexp.MustCompile(`(//.*$)|('(?:[^'\\]|\\.)*')|(</?[A-Z][A-Za-z]*)|\b(import|from|export|default|const|function|return)\b|\b(\d+)\b`)

var tokenStyles = []*lipgloss.Style{
	&styles.Comment,
	&styles.String,
	&styles.Component,
	&styles.Keyword,
	&styles.Number,
}

// highlightCode colours generated source for the terminal, line by line.
func highlightCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = highlightLine(line)
	}
	return strings.Join(lines, "\n")
}

func highlightLine(line string) string {
	var b strings.Builder
	last := 0
	for _, loc := range jsToken.FindAllStringSubmatchIndex(line, -1) {
		b.WriteString(line[last:loc[0]])
		text := line[loc[0]:loc[1]]
		for group, style := range tokenStyles {
			if loc[2+2*group] >= 0 {
				text = style.Render(text)
				break
			}
		}
		b.WriteString(text)
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
