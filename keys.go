package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add      key.Binding
	Next     key.Binding
	Prev     key.Binding
	Move     key.Binding
	MoveFast key.Binding
	Resize   key.Binding
	Edit     key.Binding
	Toggle   key.Binding
	Icon     key.Binding
	Delete   key.Binding
	Deselect key.Binding
	Copy     key.Binding
	Save     key.Binding
	SavePNG  key.Binding
	Code     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "add element"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next element"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous element"),
		),
		Move: key.NewBinding(
			key.WithKeys("h", "j", "k", "l", "left", "down", "up", "right"),
			key.WithHelp("hjkl/←↓↑→", "move (resize in resize mode)"),
		),
		MoveFast: key.NewBinding(
			key.WithKeys("H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right"),
			key.WithHelp("HJKL", "move 4x"),
		),
		Resize: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle resize mode"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit properties"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle switch"),
		),
		Icon: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "next icon glyph"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete element"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy code"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save code"),
		),
		SavePNG: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "export PNG"),
		),
		Code: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "code preview"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Move, k.Edit, k.Code, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Next, k.Prev, k.Deselect, k.Delete},
		{k.Move, k.MoveFast, k.Resize},
		{k.Edit, k.Toggle, k.Icon},
		{k.Copy, k.Save, k.SavePNG, k.Code},
		{k.Help, k.Quit},
	}
}
