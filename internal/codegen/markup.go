package codegen

import "screenforge/internal/scene"

// Depths, in two-space units, of the component body.
const (
	depthBody     = 1
	depthRoot     = 2
	depthFragment = 3
	depthChild    = 4
)

func generateComponent(elements []scene.Element, idents []string) string {
	var w writer
	w.line(0, "export default function Screen() {")
	for i, el := range elements {
		if el.Kind != scene.Switch {
			continue
		}
		value, setter := stateNames(idents[i])
		w.line(depthBody, "const [%s, %s] = useState(%t);", value, setter, isOn(el.Style))
	}
	w.line(depthBody, "return (")
	w.line(depthRoot, "<View style={styles.container}>")
	for i, el := range elements {
		rule, ok := ruleFor(el.Kind)
		if !ok {
			continue
		}
		rule.markup(&w, el, idents[i])
	}
	w.line(depthRoot, "</View>")
	w.line(depthBody, ");")
	w.line(0, "}")
	return w.String()
}

func buttonMarkup(w *writer, el scene.Element, ident string) {
	w.line(depthFragment, "<TouchableOpacity style={styles.%s} onPress={() => {}}>", ident)
	w.line(depthChild, "<Text style={styles.%sText}>%s</Text>", ident, el.ContentOr(defaultButtonLabel))
	w.line(depthFragment, "</TouchableOpacity>")
}

func textMarkup(w *writer, el scene.Element, ident string) {
	w.line(depthFragment, "<Text style={styles.%s}>%s</Text>", ident, el.ContentOr(defaultTextBody))
}

func imageMarkup(w *writer, el scene.Element, ident string) {
	w.line(depthFragment, "<Image")
	w.line(depthChild, "style={styles.%s}", ident)
	w.line(depthChild, "source={{ uri: '%s' }}", strOr(el.Style.ImageURL, placeholderImageURL))
	w.line(depthChild, `resizeMode="cover"`)
	w.line(depthFragment, "/>")
}

func inputMarkup(w *writer, el scene.Element, ident string) {
	w.line(depthFragment, "<TextInput")
	w.line(depthChild, "style={styles.%s}", ident)
	w.line(depthChild, `placeholder="%s"`, el.ContentOr(defaultInputPlaceholder))
	w.line(depthChild, `placeholderTextColor="%s"`, placeholderTextColor)
	w.line(depthFragment, "/>")
}

func cardMarkup(w *writer, el scene.Element, ident string) {
	w.line(depthFragment, "<View style={styles.%s}>", ident)
	w.line(depthChild, "<Text style={styles.%sTitle}>%s</Text>", ident, el.ContentOr(defaultCardTitle))
	w.line(depthChild, "<Text style={styles.%sBody}>%s</Text>", ident, cardBodyText)
	w.line(depthFragment, "</View>")
}

func iconMarkup(w *writer, el scene.Element, ident string) {
	w.line(depthFragment, "<Text style={styles.%s}>%s</Text>", ident, el.ContentOr(defaultIconGlyph))
}

func containerMarkup(w *writer, _ scene.Element, ident string) {
	w.line(depthFragment, "<View style={styles.%s}>", ident)
	w.line(depthChild, "{/* Add child components here */}")
	w.line(depthFragment, "</View>")
}

func switchMarkup(w *writer, el scene.Element, ident string) {
	value, setter := stateNames(ident)
	w.line(depthFragment, "<Switch")
	w.line(depthChild, "style={styles.%s}", ident)
	w.line(depthChild, "value={%s}", value)
	w.line(depthChild, "onValueChange={%s}", setter)
	w.line(depthChild, "trackColor={{ false: '%s', true: '%s' }}", switchOffTrack, strOr(el.Style.BackgroundColor, switchOnTrack))
	w.line(depthChild, `thumbColor="%s"`, switchThumb)
	w.line(depthFragment, "/>")
}
