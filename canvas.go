package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screenforge/internal/export"
	"screenforge/internal/scene"
)

// Size of the phone screen in terminal cells.
var (
	phoneCols = ceilDiv(export.ScreenWidth, cellWidth)
	phoneRows = ceilDiv(export.ScreenHeight, cellHeight)
)

// Canvas is a grid of runes the scene is painted onto. A zero rune marks the
// second half of a double-width glyph.
type Canvas struct {
	cells [][]rune
}

func NewCanvas(width, height int) *Canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{cells: cells}
}

// Render paints elements in order, so later elements cover earlier ones.
func (c *Canvas) Render(elements []scene.Element, selectedID string) []string {
	for _, el := range elements {
		c.drawElement(el, el.ID == selectedID)
	}

	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var b strings.Builder
		for _, r := range row {
			if r != 0 {
				b.WriteRune(r)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func (c *Canvas) drawElement(el scene.Element, isSelected bool) {
	r := elementRect(el)
	label := elementLabel(el)

	switch {
	case el.Kind == scene.Text && !isSelected:
		c.drawTextAt(label, r.X, r.Y+r.Height/2, r.X+r.Width)
	case r.Height == 1:
		c.drawInlineAt(r, label, isSelected)
	default:
		c.drawBoxAt(r, isSelected)
		labelY := r.Y + r.Height/2
		if r.Height <= 2 {
			labelY = r.Y
		}
		if el.Kind == scene.Card {
			labelY = r.Y + 1
		}
		c.clearInside(r)
		c.drawTextAt(label, r.X+1, labelY, r.X+r.Width-1)
	}
}

func (c *Canvas) drawBoxAt(r cellRect, isSelected bool) {
	corner, horizontal, vertical := '+', '-', '|'
	if isSelected {
		corner, horizontal, vertical = '#', '#', '#'
	}

	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			edgeY := y == r.Y || y == r.Y+r.Height-1
			edgeX := x == r.X || x == r.X+r.Width-1
			switch {
			case edgeY && edgeX:
				c.set(x, y, corner)
			case edgeY:
				c.set(x, y, horizontal)
			case edgeX:
				c.set(x, y, vertical)
			}
		}
	}
}

// clearInside blanks the interior so elements underneath do not show
// through.
func (c *Canvas) clearInside(r cellRect) {
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		for x := r.X + 1; x < r.X+r.Width-1; x++ {
			c.set(x, y, ' ')
		}
	}
}

// drawInlineAt draws a one-row element as [label].
func (c *Canvas) drawInlineAt(r cellRect, label string, isSelected bool) {
	left, right := '[', ']'
	if isSelected {
		left, right = '#', '#'
	}
	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		c.set(x, r.Y, ' ')
	}
	c.set(r.X, r.Y, left)
	c.set(r.X+r.Width-1, r.Y, right)
	c.drawTextAt(label, r.X+1, r.Y, r.X+r.Width-1)
}

// drawTextAt writes text from (x, y), stopping before column limit.
func (c *Canvas) drawTextAt(text string, x, y, limit int) {
	for _, ch := range text {
		w := lipgloss.Width(string(ch))
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		if w == 2 {
			c.setWide(x, y, ch)
		} else {
			c.set(x, y, ch)
		}
		x += w
	}
}

func (c *Canvas) set(x, y int, r rune) {
	if !c.isValidPos(x, y) {
		return
	}
	c.breakWide(x, y)
	c.cells[y][x] = r
}

func (c *Canvas) setWide(x, y int, r rune) {
	if !c.isValidPos(x, y) || !c.isValidPos(x+1, y) {
		return
	}
	c.breakWide(x, y)
	c.breakWide(x+1, y)
	c.cells[y][x] = r
	c.cells[y][x+1] = 0
}

// breakWide blanks the other half of a wide glyph covering (x, y) so that
// overwriting one half never leaves the other orphaned.
func (c *Canvas) breakWide(x, y int) {
	row := c.cells[y]
	switch {
	case row[x] == 0 && x > 0:
		row[x-1] = ' '
		row[x] = ' '
	case x+1 < len(row) && row[x+1] == 0:
		row[x+1] = ' '
	}
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < len(c.cells) && x >= 0 && x < len(c.cells[y])
}

func elementRect(el scene.Element) cellRect {
	return cellRect{
		X:      floorDiv(el.Style.X, cellWidth),
		Y:      floorDiv(el.Style.Y, cellHeight),
		Width:  max(ceilDiv(el.Style.Width, cellWidth), 2),
		Height: max((el.Style.Height+cellHeight/2)/cellHeight, 1),
	}
}

func elementLabel(el scene.Element) string {
	switch el.Kind {
	case scene.Button:
		return el.ContentOr("Button")
	case scene.Text:
		return el.ContentOr("Text")
	case scene.Image:
		return "img"
	case scene.Input:
		return el.ContentOr("Enter text...")
	case scene.Card:
		return el.ContentOr("Card Title")
	case scene.Icon:
		return el.ContentOr("⭐")
	case scene.Switch:
		if el.Style.IsOn == nil || *el.Style.IsOn {
			return " ●"
		}
		return "○ "
	}
	return ""
}

// elementAt returns the id of the topmost element covering p.
func elementAt(elements []scene.Element, p point) (string, bool) {
	for i := len(elements) - 1; i >= 0; i-- {
		if elementRect(elements[i]).contains(p) {
			return elements[i].ID, true
		}
	}
	return "", false
}

func ceilDiv(a, b int) int {
	return floorDiv(a+b-1, b)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
