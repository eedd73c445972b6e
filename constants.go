package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeResize
	ModeProperties
	ModeEditing
	ModeConfirm
	ModeCode
)

type ConfirmAction int

const (
	ConfirmDeleteElement ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

// One terminal cell covers cellWidth×cellHeight points of the phone screen.
const (
	cellWidth  = 8
	cellHeight = 24
)

const (
	moveSpeedFast = 4
	panelWidth    = 34
	paletteHeight = 1
)
