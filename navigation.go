package main

import (
	"screenforge/internal/export"
	"screenforge/internal/scene"
)

// handleNavigation moves or resizes the selected element, one cell per step.
func (m *model) handleNavigation(key string, speed int) {
	el, ok := m.store.SelectedElement()
	if !ok {
		return
	}
	dx, dy := direction(key)
	if m.mode == ModeResize {
		m.resizeElement(el, dx*speed*cellWidth, dy*speed*cellHeight)
		return
	}
	m.moveElement(el, dx*speed*cellWidth, dy*speed*cellHeight)
}

// moveElement keeps the element fully on the phone screen.
func (m *model) moveElement(el scene.Element, deltaX, deltaY int) {
	x := clampInt(el.Style.X+deltaX, 0, export.ScreenWidth-el.Style.Width)
	y := clampInt(el.Style.Y+deltaY, 0, export.ScreenHeight-el.Style.Height)
	m.store.UpdateElementStyle(el.ID, scene.StylePatch{X: scene.Int(x), Y: scene.Int(y)})
}

func (m *model) resizeElement(el scene.Element, deltaWidth, deltaHeight int) {
	st := el.Style
	st.Width += deltaWidth
	st.Height += deltaHeight
	st = scene.Clamp(st)
	m.store.UpdateElementStyle(el.ID, scene.StylePatch{Width: scene.Int(st.Width), Height: scene.Int(st.Height)})
}

func direction(key string) (int, int) {
	switch key {
	case "h", "left", "H", "shift+left":
		return -1, 0
	case "l", "right", "L", "shift+right":
		return 1, 0
	case "k", "up", "K", "shift+up":
		return 0, -1
	case "j", "down", "J", "shift+down":
		return 0, 1
	}
	return 0, 0
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return moveSpeedFast
	default:
		return 1
	}
}

// cycleSelection selects the next (step 1) or previous (step -1) element in
// paint order, wrapping around.
func (m *model) cycleSelection(step int) {
	elements := m.store.Elements()
	if len(elements) == 0 {
		return
	}
	current := -1
	selected := m.store.SelectedID()
	for i, el := range elements {
		if el.ID == selected {
			current = i
			break
		}
	}
	next := 0
	switch {
	case current == -1 && step < 0:
		next = len(elements) - 1
	case current != -1:
		next = (current + step + len(elements)) % len(elements)
	}
	m.store.SelectElement(elements[next].ID)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
