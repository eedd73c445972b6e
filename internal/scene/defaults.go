package scene

// defaultStyles holds the style each kind starts with. AddElement clones
// these; they must never be handed out directly.
var defaultStyles = [kindCount]Style{
	Button: {
		Width: 180, Height: 48, X: 80, Y: 100,
		BackgroundColor: String("#6366f1"),
		BorderRadius:    Int(12),
		FontSize:        Int(16),
		Color:           String("#ffffff"),
		Padding:         Int(12),
	},
	Text: {
		Width: 200, Height: 40, X: 80, Y: 100,
		BackgroundColor: String("transparent"),
		FontSize:        Int(18),
		Color:           String("#1a1a1a"),
	},
	Image: {
		Width: 150, Height: 150, X: 80, Y: 100,
		BackgroundColor: String("#e0e0e0"),
		BorderRadius:    Int(8),
		ImageURL:        String(""),
	},
	Input: {
		Width: 280, Height: 48, X: 30, Y: 100,
		BackgroundColor: String("#ffffff"),
		BorderRadius:    Int(8),
		FontSize:        Int(16),
		Color:           String("#1a1a1a"),
		BorderWidth:     Int(1),
		BorderColor:     String("#d1d5db"),
		Padding:         Int(12),
	},
	Card: {
		Width: 300, Height: 180, X: 20, Y: 100,
		BackgroundColor: String("#ffffff"),
		BorderRadius:    Int(16),
		Padding:         Int(16),
		BorderWidth:     Int(0),
		BorderColor:     String("transparent"),
	},
	Icon: {
		Width: 48, Height: 48, X: 80, Y: 100,
		BackgroundColor: String("transparent"),
		FontSize:        Int(32),
		Color:           String("#6366f1"),
	},
	Container: {
		Width: 320, Height: 120, X: 10, Y: 100,
		BackgroundColor: String("#f3f4f6"),
		BorderRadius:    Int(12),
		Padding:         Int(16),
		BorderWidth:     Int(1),
		BorderColor:     String("#e5e7eb"),
	},
	Switch: {
		Width: 52, Height: 32, X: 80, Y: 100,
		BackgroundColor: String("#6366f1"),
		BorderRadius:    Int(16),
		IsOn:            Bool(true),
	},
}

var defaultContent = [kindCount]string{
	Button:    "Button",
	Text:      "Text Label",
	Image:     "",
	Input:     "Enter text...",
	Card:      "Card Title",
	Icon:      "⭐",
	Container: "",
	Switch:    "",
}

// IconPresets are the glyphs offered for Icon elements.
var IconPresets = []string{"⭐", "❤️", "🔔", "⚙️", "🏠", "👤", "🔍", "✉️", "📍", "🎯"}

// DefaultStyle returns a fresh copy of the starting style for k.
func DefaultStyle(k Kind) Style {
	if !k.Valid() {
		return Style{}
	}
	return defaultStyles[k].Clone()
}

// DefaultContent returns the starting content for k.
func DefaultContent(k Kind) string {
	if !k.Valid() {
		return ""
	}
	return defaultContent[k]
}
