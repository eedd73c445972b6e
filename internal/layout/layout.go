// Package layout reads manifests that describe a screen declaratively and
// replays them into a scene through the model's own operations.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"screenforge/internal/scene"
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for manifest files of unknown type.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// Manifest is an ordered list of element descriptions.
type Manifest struct {
	Elements []Entry `json:"elements" yaml:"elements"`
}

// Entry describes one element. Ids are not part of a manifest; they are
// minted by the scene when the manifest is built.
type Entry struct {
	Kind    string           `json:"kind" yaml:"kind"`
	Content *string          `json:"content,omitempty" yaml:"content,omitempty"`
	Style   scene.StylePatch `json:"style,omitempty" yaml:"style,omitempty"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// Decode reads a manifest in the given format.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml manifest: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
	return &m, nil
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build replays the manifest into a new scene. The scene ends with nothing
// selected.
func (m *Manifest) Build() (*scene.Scene, error) {
	sc := scene.New()
	if err := m.Apply(sc); err != nil {
		return nil, err
	}
	sc.SelectElement("")
	return sc, nil
}

// Apply appends the manifest's elements to sc. Kinds are validated before
// anything is added, so a bad manifest leaves sc untouched.
func (m *Manifest) Apply(sc *scene.Scene) error {
	kinds := make([]scene.Kind, len(m.Elements))
	for i, entry := range m.Elements {
		k, err := scene.ParseKind(entry.Kind)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		kinds[i] = k
	}

	for i, entry := range m.Elements {
		el := sc.AddElement(kinds[i])
		if entry.Content != nil {
			sc.UpdateElement(el.ID, scene.ElementPatch{Content: entry.Content})
		}
		sc.UpdateElementStyle(el.ID, entry.Style)
	}
	return nil
}
