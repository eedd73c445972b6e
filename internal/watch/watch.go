// Package watch regenerates screen source whenever a layout manifest changes
// on disk.
package watch

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"screenforge/internal/codegen"
	"screenforge/internal/export"
	"screenforge/internal/layout"
)

// Watcher follows one manifest and rewrites the output file on every change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	manifest string
	output   string
	preview  string
	done     chan bool

	// OnRegenerate, when set, is called after each attempt with its result.
	OnRegenerate func(err error)
}

// New creates a watcher for manifestPath writing to outputPath. The
// manifest's directory is watched rather than the file itself so that
// editors which save by rename are still noticed.
func New(manifestPath, outputPath string) (*Watcher, error) {
	manifest, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, err
	}
	if _, err := layout.FormatFor(manifest); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(manifest)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  fsWatcher,
		manifest: manifest,
		output:   outputPath,
		done:     make(chan bool),
	}, nil
}

// SetPreview also renders a PNG mock-up to path on each regeneration.
func (w *Watcher) SetPreview(path string) {
	w.preview = path
}

// Regenerate loads the manifest once and writes the generated source.
func (w *Watcher) Regenerate() error {
	m, err := layout.Load(w.manifest)
	if err != nil {
		return err
	}
	sc, err := m.Build()
	if err != nil {
		return fmt.Errorf("build %s: %w", filepath.Base(w.manifest), err)
	}
	elements := sc.Elements()
	if err := export.WriteCode(w.output, codegen.Generate(elements)); err != nil {
		return err
	}
	if w.preview != "" {
		if err := export.RenderPNG(elements, w.preview); err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
	}
	return nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != w.manifest {
					continue
				}

				log.Printf("[Watch] Manifest changed: %s", filepath.Base(w.manifest))
				err := w.Regenerate()
				if err != nil {
					log.Printf("[Watch] Regenerate failed: %v", err)
				}
				if w.OnRegenerate != nil {
					w.OnRegenerate(err)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[Watch] Error: %v", err)

			case <-w.done:
				return
			}
		}
	}()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
