// Package export hands generated source and screen mock-ups to the outside
// world: the system clipboard, files on disk, and PNG images.
package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// clipboardWrite is swapped in tests; the real clipboard needs a display.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard places code on the system clipboard.
func CopyToClipboard(code string) error {
	if err := clipboardWrite(code); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// WriteCode writes code to path, creating parent directories. The file ends
// with a newline.
func WriteCode(path, code string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(code+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("[Export] Wrote %s (%d bytes)", path, len(code)+1)
	return nil
}

// Exists reports whether a file is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
