package codegen

import (
	"fmt"

	"screenforge/internal/scene"
)

// styleBlock is one named entry of the StyleSheet.
type styleBlock struct {
	name  string
	props []string
}

const rootStyleName = "container"

var containerBlock = styleBlock{
	name: rootStyleName,
	props: []string{
		"flex: 1",
		fmt.Sprintf("backgroundColor: '%s'", screenBackground),
	},
}

func generateStyles(elements []scene.Element, idents []string) string {
	blocks := []styleBlock{containerBlock}
	for i, el := range elements {
		rule, ok := ruleFor(el.Kind)
		if !ok {
			continue
		}
		blocks = append(blocks, rule.styles(el, idents[i], baseProps(el))...)
	}

	var w writer
	w.line(0, "const styles = StyleSheet.create({")
	for i, block := range blocks {
		w.line(1, "%s: {", block.name)
		for _, prop := range block.props {
			w.line(2, "%s,", prop)
		}
		if i < len(blocks)-1 {
			w.line(1, "},")
		} else {
			w.line(1, "}")
		}
	}
	w.line(0, "});")
	return w.String()
}

// baseProps are the properties every element block starts with.
func baseProps(el scene.Element) []string {
	s := el.Style
	props := []string{
		"position: 'absolute'",
		fmt.Sprintf("left: %d", s.X),
		fmt.Sprintf("top: %d", s.Y),
		fmt.Sprintf("width: %d", s.Width),
		fmt.Sprintf("height: %d", s.Height),
	}
	if bg := str(s.BackgroundColor); bg != "" && bg != "transparent" {
		props = append(props, fmt.Sprintf("backgroundColor: '%s'", bg))
	}
	if r := num(s.BorderRadius); r != 0 {
		props = append(props, fmt.Sprintf("borderRadius: %d", r))
	}
	if bw := num(s.BorderWidth); bw != 0 {
		props = append(props,
			fmt.Sprintf("borderWidth: %d", bw),
			fmt.Sprintf("borderColor: '%s'", strOr(s.BorderColor, defaultBorderColor)),
		)
	}
	if p := num(s.Padding); p != 0 {
		switch el.Kind {
		case scene.Input, scene.Card, scene.Container:
			props = append(props, fmt.Sprintf("padding: %d", p))
		}
	}
	if el.Kind == scene.Button {
		props = append(props, "alignItems: 'center'", "justifyContent: 'center'")
	}
	return props
}

func baseOnly(_ scene.Element, ident string, base []string) []styleBlock {
	return []styleBlock{{name: ident, props: base}}
}

func buttonStyles(el scene.Element, ident string, base []string) []styleBlock {
	return []styleBlock{
		{name: ident, props: base},
		{name: ident + "Text", props: []string{
			fmt.Sprintf("color: '%s'", strOr(el.Style.Color, "#ffffff")),
			fmt.Sprintf("fontSize: %d", numOr(el.Style.FontSize, 16)),
			"fontWeight: '600'",
		}},
	}
}

func textStyles(el scene.Element, ident string, base []string) []styleBlock {
	props := base
	if c := str(el.Style.Color); c != "" {
		props = append(props, fmt.Sprintf("color: '%s'", c))
	}
	if fs := num(el.Style.FontSize); fs != 0 {
		props = append(props, fmt.Sprintf("fontSize: %d", fs))
	}
	return []styleBlock{{name: ident, props: props}}
}

func inputStyles(el scene.Element, ident string, base []string) []styleBlock {
	props := append(base,
		fmt.Sprintf("color: '%s'", strOr(el.Style.Color, "#1a1a1a")),
		fmt.Sprintf("fontSize: %d", numOr(el.Style.FontSize, 16)),
	)
	return []styleBlock{{name: ident, props: props}}
}

func cardStyles(_ scene.Element, ident string, base []string) []styleBlock {
	props := append(base,
		"shadowColor: '#000'",
		"shadowOffset: { width: 0, height: 4 }",
		"shadowOpacity: 0.1",
		"shadowRadius: 12",
		"elevation: 4",
	)
	return []styleBlock{
		{name: ident, props: props},
		{name: ident + "Title", props: []string{
			"fontSize: 16",
			"fontWeight: '600'",
			"color: '#1a1a1a'",
		}},
		{name: ident + "Body", props: []string{
			"fontSize: 14",
			"color: '#6b7280'",
			"marginTop: 8",
		}},
	}
}

func iconStyles(el scene.Element, ident string, base []string) []styleBlock {
	props := append(base, fmt.Sprintf("fontSize: %d", numOr(el.Style.FontSize, 32)))
	if c := str(el.Style.Color); c != "" {
		props = append(props, fmt.Sprintf("color: '%s'", c))
	}
	props = append(props, "textAlign: 'center'")
	return []styleBlock{{name: ident, props: props}}
}
