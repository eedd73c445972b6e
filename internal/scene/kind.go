package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed category of an element.
type Kind int

const (
	Button Kind = iota
	Text
	Image
	Input
	Card
	Icon
	Container
	Switch

	kindCount
)

// ErrUnknownKind is returned when a kind name does not match any Kind.
var ErrUnknownKind = errors.New("unknown element kind")

var kindNames = [kindCount]string{
	Button:    "Button",
	Text:      "Text",
	Image:     "Image",
	Input:     "Input",
	Card:      "Card",
	Icon:      "Icon",
	Container: "Container",
	Switch:    "Switch",
}

// Kinds returns every kind in palette order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind matches a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for k := Kind(0); k < kindCount; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
