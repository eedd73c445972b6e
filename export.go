package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"screenforge/internal/export"
)

func (m *model) copyCode() {
	if err := export.CopyToClipboard(m.code.Code()); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "Code copied to clipboard"
}

// saveCode writes the generated source to the configured export path,
// asking first when it would replace an existing file.
func (m *model) saveCode(overwrite bool) {
	path := m.config.ExportPath()
	if !overwrite && m.config.Confirmations && export.Exists(path) {
		m.pendingPath = path
		m.confirmAction = ConfirmOverwriteFile
		m.mode = ModeConfirm
		return
	}
	if err := export.WriteCode(path, m.code.Code()); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = fmt.Sprintf("Saved %s", path)
}

func (m *model) savePNG() {
	path := m.config.GetSavePath(pngName(m.config.ExportFilename))
	if err := export.RenderPNG(m.store.Elements(), path); err != nil {
		m.errorMessage = fmt.Sprintf("PNG export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Exported %s", path)
}

func pngName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
}
