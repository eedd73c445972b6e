// Package scene holds the editable model of one screen: an ordered, flat
// list of positioned UI elements and a selection pointer.
//
// Every mutation is a silent no-op when the target id is absent, so stale
// references coming from the UI never fail. Scene is not safe for concurrent
// use; wrap it in a Store when more than one goroutine touches it.
package scene

import (
	"fmt"
	"strings"
)

// Element is one placed component.
type Element struct {
	ID      string  `json:"id" yaml:"id"`
	Kind    Kind    `json:"kind" yaml:"kind"`
	Style   Style   `json:"style" yaml:"style"`
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// ContentOr returns the element content, or fallback when it is unset or
// empty.
func (e Element) ContentOr(fallback string) string {
	if e.Content == nil || *e.Content == "" {
		return fallback
	}
	return *e.Content
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	c := e
	c.Style = e.Style.Clone()
	c.Content = cloneString(e.Content)
	return c
}

// ElementPatch replaces the non-style fields of an element. Id and kind are
// immutable and therefore absent.
type ElementPatch struct {
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Scene is the element sequence plus selection for one editing session.
type Scene struct {
	elements   []Element
	selectedID string
	counter    int
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{elements: make([]Element, 0)}
}

// AddElement appends a new element of kind k with default style and content,
// selects it, and returns a copy of it.
func (s *Scene) AddElement(k Kind) Element {
	s.counter++
	el := Element{
		ID:      fmt.Sprintf("%s_%d", strings.ToLower(k.String()), s.counter),
		Kind:    k,
		Style:   DefaultStyle(k),
		Content: String(DefaultContent(k)),
	}
	s.elements = append(s.elements, el)
	s.selectedID = el.ID
	return el.Clone()
}

// UpdateElement applies p to the element with id. It reports whether the
// element exists.
func (s *Scene) UpdateElement(id string, p ElementPatch) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	if p.Content != nil {
		s.elements[i].Content = cloneString(p.Content)
	}
	return true
}

// UpdateElementStyle merges p into the style of the element with id. It
// reports whether the element exists.
func (s *Scene) UpdateElementStyle(id string, p StylePatch) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.elements[i].Style.Apply(p)
	return true
}

// DeleteElement removes the element with id, clearing the selection if it
// pointed at it. It reports whether an element was removed.
func (s *Scene) DeleteElement(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return true
}

// SelectElement points the selection at id without checking that it exists.
// An empty id clears the selection.
func (s *Scene) SelectElement(id string) {
	s.selectedID = id
}

// SelectedID returns the raw selection, which may be empty.
func (s *Scene) SelectedID() string {
	return s.selectedID
}

// SelectedElement returns the selected element. A dangling selection is
// reported as no selection.
func (s *Scene) SelectedElement() (Element, bool) {
	return s.Element(s.selectedID)
}

// Element returns a copy of the element with id.
func (s *Scene) Element(id string) (Element, bool) {
	if id == "" {
		return Element{}, false
	}
	i := s.index(id)
	if i < 0 {
		return Element{}, false
	}
	return s.elements[i].Clone(), true
}

// Elements returns a deep copy of the element sequence in paint order.
func (s *Scene) Elements() []Element {
	out := make([]Element, len(s.elements))
	for i, el := range s.elements {
		out[i] = el.Clone()
	}
	return out
}

// Len returns the number of elements.
func (s *Scene) Len() int {
	return len(s.elements)
}

func (s *Scene) index(id string) int {
	for i := range s.elements {
		if s.elements[i].ID == id {
			return i
		}
	}
	return -1
}
