package codegen

import "screenforge/internal/scene"

// Primitive component names imported from react-native.
const (
	primView             = "View"
	primStyleSheet       = "StyleSheet"
	primText             = "Text"
	primTouchableOpacity = "TouchableOpacity"
	primImage            = "Image"
	primTextInput        = "TextInput"
	primSwitch           = "Switch"
)

// Literal defaults substituted when an element leaves a field unset.
const (
	defaultButtonLabel      = "Button"
	defaultTextBody         = "Text"
	defaultInputPlaceholder = "Enter text..."
	defaultCardTitle        = "Card Title"
	defaultIconGlyph        = "⭐"
	placeholderImageURL     = "https://via.placeholder.com/150"
	placeholderTextColor    = "#9ca3af"
	cardBodyText            = "Card content goes here..."
	switchOffTrack          = "#d1d5db"
	switchOnTrack           = "#6366f1"
	switchThumb             = "#ffffff"
	defaultBorderColor      = "#d1d5db"
	screenBackground        = "#f5f5f5"
)

// kindRule is everything the generator knows about one kind.
type kindRule struct {
	imports []string
	markup  func(w *writer, el scene.Element, ident string)
	styles  func(el scene.Element, ident string, base []string) []styleBlock
}

// rules is indexed by scene.Kind and must cover every kind.
var rules = [...]kindRule{
	scene.Button: {
		imports: []string{primTouchableOpacity, primText},
		markup:  buttonMarkup,
		styles:  buttonStyles,
	},
	scene.Text: {
		imports: []string{primText},
		markup:  textMarkup,
		styles:  textStyles,
	},
	scene.Image: {
		imports: []string{primImage},
		markup:  imageMarkup,
		styles:  baseOnly,
	},
	scene.Input: {
		imports: []string{primTextInput},
		markup:  inputMarkup,
		styles:  inputStyles,
	},
	scene.Card: {
		imports: []string{primText},
		markup:  cardMarkup,
		styles:  cardStyles,
	},
	scene.Icon: {
		imports: []string{primText},
		markup:  iconMarkup,
		styles:  iconStyles,
	},
	scene.Container: {
		markup: containerMarkup,
		styles: baseOnly,
	},
	scene.Switch: {
		imports: []string{primSwitch},
		markup:  switchMarkup,
		styles:  baseOnly,
	},
}

func ruleFor(k scene.Kind) (kindRule, bool) {
	if !k.Valid() || int(k) >= len(rules) {
		return kindRule{}, false
	}
	return rules[k], true
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func strOr(p *string, fallback string) string {
	if v := str(p); v != "" {
		return v
	}
	return fallback
}

func numOr(p *int, fallback int) int {
	if v := num(p); v != 0 {
		return v
	}
	return fallback
}

func isOn(s scene.Style) bool {
	return s.IsOn == nil || *s.IsOn
}
