package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"screenforge/internal/scene"
)

func (m *model) selectedFields() (scene.Element, []scene.Field, bool) {
	el, ok := m.store.SelectedElement()
	if !ok {
		return scene.Element{}, nil, false
	}
	fields := scene.EditableFields(el.Kind)
	if m.fieldIndex >= len(fields) {
		m.fieldIndex = len(fields) - 1
	}
	if m.fieldIndex < 0 {
		m.fieldIndex = 0
	}
	return el, fields, true
}

func (m *model) openProperties() {
	if _, _, ok := m.selectedFields(); !ok {
		m.errorMessage = "Select an element first"
		return
	}
	m.fieldIndex = 0
	m.mode = ModeProperties
}

// handlePropertiesKey moves between fields and starts editing one.
func (m *model) handlePropertiesKey(msg tea.KeyMsg) tea.Cmd {
	el, fields, ok := m.selectedFields()
	if !ok {
		m.mode = ModeNormal
		return nil
	}

	switch msg.String() {
	case "esc", "e", "q":
		m.mode = ModeNormal
	case "j", "down", "tab":
		m.fieldIndex = (m.fieldIndex + 1) % len(fields)
	case "k", "up", "shift+tab":
		m.fieldIndex = (m.fieldIndex - 1 + len(fields)) % len(fields)
	case "enter":
		field := fields[m.fieldIndex]
		if field == scene.FieldIsOn {
			m.toggleSwitch(el)
			return nil
		}
		return m.startEditing(el, field)
	}
	return nil
}

func (m *model) startEditing(el scene.Element, field scene.Field) tea.Cmd {
	ti := textinput.New()
	ti.Prompt = fmt.Sprintf("%s: ", field)
	ti.Width = panelWidth - len(ti.Prompt) - 4
	ti.SetValue(field.Value(el))
	ti.CursorEnd()
	ti.Focus()

	m.input = ti
	m.mode = ModeEditing
	return textinput.Blink
}

// handleEditingKey feeds keys to the text input until the value is committed
// or abandoned.
func (m *model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = ModeProperties
		return nil
	case "enter":
		m.commitEdit()
		return nil
	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
			return nil
		}
		m.input.SetValue(m.input.Value() + pasteValue(text))
		m.input.CursorEnd()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) commitEdit() {
	el, fields, ok := m.selectedFields()
	if !ok {
		m.mode = ModeNormal
		return
	}
	field := fields[m.fieldIndex]
	elementPatch, stylePatch, err := field.Patch(m.input.Value())
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if elementPatch.Content != nil {
		m.store.UpdateElement(el.ID, elementPatch)
	}
	if stylePatch.Width != nil || stylePatch.Height != nil {
		stylePatch = clampSize(el.Style, stylePatch)
	}
	if stylePatch != (scene.StylePatch{}) {
		m.store.UpdateElementStyle(el.ID, stylePatch)
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Updated %s", field)
	m.mode = ModeProperties
}

// clampSize bounds the size carried by p to the editing surface, the same
// limits the resize keys obey.
func clampSize(current scene.Style, p scene.StylePatch) scene.StylePatch {
	st := current.Clone()
	st.Apply(p)
	st = scene.Clamp(st)
	if p.Width != nil {
		p.Width = scene.Int(st.Width)
	}
	if p.Height != nil {
		p.Height = scene.Int(st.Height)
	}
	return p
}

func (m *model) toggleSwitch(el scene.Element) {
	if el.Kind != scene.Switch {
		return
	}
	on := el.Style.IsOn == nil || *el.Style.IsOn
	m.store.UpdateElementStyle(el.ID, scene.StylePatch{IsOn: scene.Bool(!on)})
}

// cycleIcon swaps an Icon's glyph for the next preset.
func (m *model) cycleIcon(el scene.Element) {
	if el.Kind != scene.Icon {
		return
	}
	current := el.ContentOr(scene.DefaultContent(scene.Icon))
	next := scene.IconPresets[0]
	for i, glyph := range scene.IconPresets {
		if glyph == current {
			next = scene.IconPresets[(i+1)%len(scene.IconPresets)]
			break
		}
	}
	m.store.UpdateElement(el.ID, scene.ElementPatch{Content: scene.String(next)})
}

func (m model) propertiesView() string {
	el, ok := m.store.SelectedElement()
	if !ok {
		return styles.Title.Render("Properties") + "\n\n" +
			styles.Muted.Render("Nothing selected.\nPress 1-8 to add an element\nor tab to select one.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("%s  %s", el.Kind, el.ID)))
	b.WriteString("\n\n")
	for i, field := range scene.EditableFields(el.Kind) {
		focused := (m.mode == ModeProperties || m.mode == ModeEditing) && i == m.fieldIndex
		if focused && m.mode == ModeEditing {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			continue
		}
		value := field.Value(el)
		if value == "" {
			value = styles.Muted.Render("(default)")
		}
		line := fmt.Sprintf("%-16s %s", string(field), value)
		if focused {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + styles.Label.Render(fmt.Sprintf("%-16s", string(field))) + " " + value
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
