package main

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent    = "86"
	colorHighlight = "205"
	colorDanger    = "196"
	colorMuted     = "241"
	colorText      = "252"
	colorKeyword   = "170"
	colorString    = "114"
	colorNumber    = "215"
	colorComponent = "75"
)

var styles = struct {
	Title     lipgloss.Style
	Phone     lipgloss.Style
	Panel     lipgloss.Style
	Palette   lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Status    lipgloss.Style
	Keyword   lipgloss.Style
	String    lipgloss.Style
	Number    lipgloss.Style
	Component lipgloss.Style
	Comment   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Phone: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorMuted)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)).
		Padding(0, 1),
	Palette: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Keyword: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorKeyword)),
	String: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorString)),
	Number: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorNumber)),
	Component: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorComponent)),
	Comment: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colorMuted)),
}
