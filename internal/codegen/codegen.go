// Package codegen compiles a scene into React Native source.
//
// Output has three segments separated by one blank line: import
// declarations, a parameterless Screen component, and a StyleSheet. The
// generator is a pure function of the element sequence: no hidden state, no
// randomness, so identical input always yields byte-identical text.
//
// Style-bearing optional fields follow a "falsy omits" rule: an unset field,
// an empty string and a numeric zero are treated alike, both when deciding
// whether to emit a property and when substituting a default.
package codegen

import (
	"strings"

	"screenforge/internal/scene"
)

// Filename is the default name of the exported source file.
const Filename = "Screen.js"

// EmptyPlaceholder is returned for a scene without elements.
const EmptyPlaceholder = "// No elements added yet\n// Click on elements in the left panel to add them to your screen"

// Generate returns the source text for elements. Selection state plays no
// part in generation. Element ids that collide once sanitised are told apart
// with a numeric suffix, so every style name is defined exactly once.
func Generate(elements []scene.Element) string {
	if len(elements) == 0 {
		return EmptyPlaceholder
	}

	idents := identifiers(elements)
	segments := []string{
		generateImports(elements),
		generateComponent(elements, idents),
		generateStyles(elements, idents),
	}
	return strings.Join(segments, "\n\n")
}
