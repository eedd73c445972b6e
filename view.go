package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screenforge/internal/scene"
)

func (m model) View() string {
	if m.help {
		return m.helpScreen()
	}

	lines := NewCanvas(phoneCols, phoneRows).Render(m.store.Elements(), m.store.SelectedID())
	phone := styles.Phone.Render(strings.Join(lines, "\n"))

	var side string
	if m.mode == ModeCode {
		side = styles.Panel.Render(styles.Title.Render("Screen.js") + "\n" + m.preview.View())
	} else {
		side = styles.Panel.Width(panelWidth).Render(m.propertiesView())
	}

	var b strings.Builder
	b.WriteString(m.paletteView())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, phone, " ", side))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) paletteView() string {
	parts := make([]string, 0, len(scene.Kinds()))
	for i, k := range scene.Kinds() {
		parts = append(parts, fmt.Sprintf("%s %s", styles.Selected.Render(fmt.Sprint(i+1)), k))
	}
	return styles.Palette.Render(strings.Join(parts, "  "))
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteElement:
			message = fmt.Sprintf("Delete %s? (y/n)", m.confirmID)
		case ConfirmQuit:
			message = "Quit screenforge? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.pendingPath)
		}
		return styles.Status.Render(fmt.Sprintf("Mode: CONFIRM | %s", message))
	case ModeProperties:
		status = "Mode: PROPERTIES | j/k=field, Enter=edit, Esc=done"
	case ModeEditing:
		status = "Mode: EDIT | Enter=apply, Ctrl+V=paste, Esc=cancel"
	case ModeCode:
		status = "Mode: CODE | j/k=scroll, c=copy, s=save, v/Esc=close"
	case ModeResize:
		status = "Mode: RESIZE | hjkl/arrows=resize, Enter/r=finish"
	default:
		status = fmt.Sprintf("Mode: %s", m.modeString())
	}

	if el, ok := m.store.SelectedElement(); ok && m.mode != ModeCode {
		status += fmt.Sprintf(" | %s (%d,%d) %dx%d", el.ID, el.Style.X, el.Style.Y, el.Style.Width, el.Style.Height)
	}

	switch {
	case m.errorMessage != "":
		return styles.Status.Render(status) + styles.Error.Render(" | ERROR: "+m.errorMessage)
	case m.successMessage != "":
		return styles.Status.Render(status) + styles.Success.Render(" | "+m.successMessage)
	}
	if m.mode == ModeNormal {
		status += " | ? for help | q to quit"
	}
	return styles.Status.Render(status)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeResize:
		return "RESIZE"
	case ModeProperties:
		return "PROPERTIES"
	case ModeEditing:
		return "EDIT"
	case ModeConfirm:
		return "CONFIRM"
	case ModeCode:
		return "CODE"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpScreen() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("screenforge help"))
	b.WriteString("\n\n")
	b.WriteString(m.helpView.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("Palette: " + strings.Join(kindNames(), ", ")))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("One cell is %dx%d points; the phone is %dx%d cells.", cellWidth, cellHeight, phoneCols, phoneRows)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("The selected element is drawn with # borders."))
	b.WriteString("\n\n")
	b.WriteString("Press any key to close")
	return b.String()
}

func kindNames() []string {
	names := make([]string, 0, len(scene.Kinds()))
	for i, k := range scene.Kinds() {
		names = append(names, fmt.Sprintf("%d=%s", i+1, k))
	}
	return names
}
