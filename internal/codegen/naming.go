package codegen

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"screenforge/internal/scene"
)

// Identifier maps an element id onto a JavaScript identifier. Runes outside
// [A-Za-z0-9_$] become '_', a leading digit gets a '_' prefix. Ids minted by
// the scene model pass through unchanged.
func Identifier(id string) string {
	if id == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(id) + 1)
	for i, r := range id {
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
		}
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// identifiers returns the identifier of every element, index-aligned with
// elements. Ids that sanitise to a name already taken, including the root
// "container" style, get a numeric suffix: "a-b" after "a_b" becomes "a_b_2".
func identifiers(elements []scene.Element) []string {
	used := map[string]bool{rootStyleName: true}
	idents := make([]string, len(elements))
	for i, el := range elements {
		base := Identifier(el.ID)
		ident := base
		for n := 2; used[ident]; n++ {
			ident = base + "_" + strconv.Itoa(n)
		}
		used[ident] = true
		idents[i] = ident
	}
	return idents
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// stateNames returns the useState pair bound to a Switch element.
func stateNames(ident string) (value, setter string) {
	return ident + "Enabled", "set" + Capitalize(ident) + "Enabled"
}
