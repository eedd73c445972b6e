package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"screenforge/internal/codegen"
	"screenforge/internal/config"
	"screenforge/internal/scene"
)

type model struct {
	width  int
	height int

	store *scene.Store
	code  *codegen.Memo

	mode     Mode
	prevMode Mode
	help     bool
	keys     keyMap
	helpView help.Model

	fieldIndex int
	input      textinput.Model

	preview viewport.Model

	confirmAction ConfirmAction
	confirmID     string
	pendingPath   string

	errorMessage   string
	successMessage string

	config *config.Config
}

// point is a cell position on the terminal canvas.
type point struct {
	X, Y int
}

// cellRect is an element's footprint in terminal cells, relative to the
// phone's top-left corner.
type cellRect struct {
	X, Y, Width, Height int
}

func (r cellRect) contains(p point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
