package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"screenforge/internal/codegen"
	"screenforge/internal/config"
	"screenforge/internal/scene"
)

func initialModel(cfg *config.Config, sc *scene.Scene) model {
	if cfg == nil {
		cfg = config.Default()
	}
	store := scene.NewStore(sc)
	return model{
		store:    store,
		code:     codegen.NewMemo(store),
		mode:     ModeNormal,
		keys:     defaultKeyMap(),
		helpView: help.New(),
		preview:  viewport.New(60, 20),
		config:   cfg,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.resizePreview()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == ModeEditing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.help {
		m.help = false
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch m.mode {
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeProperties:
		return m, m.handlePropertiesKey(msg)
	case ModeEditing:
		return m, m.handleEditingKey(msg)
	case ModeCode:
		return m.handleCodeKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleNormalKey serves both normal and resize mode; they differ only in
// what the direction keys do.
func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	el, hasSelection := m.store.SelectedElement()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.config.Confirmations {
			m.confirm(ConfirmQuit, "")
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help = true

	case key.Matches(msg, m.keys.Add):
		kind := scene.Kinds()[int(keyStr[0]-'1')]
		added := m.store.AddElement(kind)
		m.mode = ModeNormal
		m.successMessage = "Added " + added.ID

	case key.Matches(msg, m.keys.Next):
		m.cycleSelection(1)

	case key.Matches(msg, m.keys.Prev):
		m.cycleSelection(-1)

	case key.Matches(msg, m.keys.Move), key.Matches(msg, m.keys.MoveFast):
		m.handleNavigation(keyStr, m.getMoveSpeed(keyStr))

	case key.Matches(msg, m.keys.Resize):
		switch {
		case m.mode == ModeResize:
			m.mode = ModeNormal
		case hasSelection:
			m.mode = ModeResize
		default:
			m.errorMessage = "Select an element first"
		}

	case keyStr == "enter" && m.mode == ModeResize:
		m.mode = ModeNormal

	case key.Matches(msg, m.keys.Edit):
		m.openProperties()

	case key.Matches(msg, m.keys.Toggle):
		if hasSelection {
			m.toggleSwitch(el)
		}

	case key.Matches(msg, m.keys.Icon):
		if hasSelection {
			m.cycleIcon(el)
		}

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keys.Deselect):
		if m.mode == ModeResize {
			m.mode = ModeNormal
		} else {
			m.store.SelectElement("")
		}

	case key.Matches(msg, m.keys.Copy):
		m.copyCode()

	case key.Matches(msg, m.keys.Save):
		m.saveCode(false)

	case key.Matches(msg, m.keys.SavePNG):
		m.savePNG()

	case key.Matches(msg, m.keys.Code):
		m.prevMode = m.mode
		m.mode = ModeCode
		m.refreshPreview()
	}

	if m.mode == ModeResize {
		if _, ok := m.store.SelectedElement(); !ok {
			m.mode = ModeNormal
		}
	}
	return m, nil
}

func (m model) handleCodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v", "esc", "q":
		m.mode = m.prevMode
		return m, nil
	case "c":
		m.copyCode()
		return m, nil
	case "s":
		m.saveCode(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDeleteElement:
			m.store.DeleteElement(m.confirmID)
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.saveCode(true)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *model) confirm(action ConfirmAction, id string) {
	m.confirmAction = action
	m.confirmID = id
	m.mode = ModeConfirm
}

func (m *model) deleteSelected() {
	el, ok := m.store.SelectedElement()
	if !ok {
		m.errorMessage = "Select an element first"
		return
	}
	if m.config.Confirmations {
		m.confirm(ConfirmDeleteElement, el.ID)
		return
	}
	m.store.DeleteElement(el.ID)
}

// handleMouse selects the element under a left click on the phone.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode != ModeNormal && m.mode != ModeResize {
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	// Phone content sits inside a one-cell frame below the palette.
	p := point{X: msg.X - 1, Y: msg.Y - paletteHeight - 1}
	if p.X < 0 || p.Y < 0 || p.X >= phoneCols || p.Y >= phoneRows {
		return
	}
	id, _ := elementAt(m.store.Elements(), p)
	m.store.SelectElement(id)
}

func (m *model) resizePreview() {
	m.preview.Width = max(m.width-phoneCols-6, 20)
	m.preview.Height = max(m.height-paletteHeight-4, 5)
}

func (m *model) refreshPreview() {
	m.preview.SetContent(highlightCode(m.code.Code()))
	m.preview.GotoTop()
}
