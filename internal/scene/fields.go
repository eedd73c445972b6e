package scene

import (
	"fmt"
	"strconv"
	"strings"
)

const fallbackFontSize = 12

// Field names one editable property of an element.
type Field string

const (
	FieldContent         Field = "content"
	FieldImageURL        Field = "imageUrl"
	FieldIsOn            Field = "isOn"
	FieldX               Field = "x"
	FieldY               Field = "y"
	FieldWidth           Field = "width"
	FieldHeight          Field = "height"
	FieldBackgroundColor Field = "backgroundColor"
	FieldBorderRadius    Field = "borderRadius"
	FieldBorderWidth     Field = "borderWidth"
	FieldBorderColor     Field = "borderColor"
	FieldFontSize        Field = "fontSize"
	FieldColor           Field = "color"
)

// EditableFields lists the properties the editor offers for k, in panel
// order.
func EditableFields(k Kind) []Field {
	var fields []Field
	switch k {
	case Button, Text, Input, Card, Icon:
		fields = append(fields, FieldContent)
	case Image:
		fields = append(fields, FieldImageURL)
	case Switch:
		fields = append(fields, FieldIsOn)
	}
	fields = append(fields, FieldX, FieldY, FieldWidth, FieldHeight, FieldBackgroundColor)
	switch k {
	case Button, Image, Input, Card, Container, Switch:
		fields = append(fields, FieldBorderRadius)
	}
	switch k {
	case Input, Container:
		fields = append(fields, FieldBorderWidth, FieldBorderColor)
	}
	switch k {
	case Button, Text, Input, Icon:
		fields = append(fields, FieldFontSize, FieldColor)
	}
	return fields
}

// Value renders the current value of f on el for display. Unset optional
// fields render as the empty string.
func (f Field) Value(el Element) string {
	s := el.Style
	switch f {
	case FieldContent:
		return deref(el.Content)
	case FieldImageURL:
		return deref(s.ImageURL)
	case FieldIsOn:
		return strconv.FormatBool(s.IsOn == nil || *s.IsOn)
	case FieldX:
		return strconv.Itoa(s.X)
	case FieldY:
		return strconv.Itoa(s.Y)
	case FieldWidth:
		return strconv.Itoa(s.Width)
	case FieldHeight:
		return strconv.Itoa(s.Height)
	case FieldBackgroundColor:
		return deref(s.BackgroundColor)
	case FieldBorderRadius:
		return derefInt(s.BorderRadius)
	case FieldBorderWidth:
		return derefInt(s.BorderWidth)
	case FieldBorderColor:
		return deref(s.BorderColor)
	case FieldFontSize:
		return derefInt(s.FontSize)
	case FieldColor:
		return deref(s.Color)
	}
	return ""
}

// Patch converts raw user input for f into the matching patch. Only one of
// the returned patches carries a value.
func (f Field) Patch(raw string) (ElementPatch, StylePatch, error) {
	var ep ElementPatch
	var sp StylePatch
	raw = strings.TrimSpace(raw)

	// An empty or zero entry falls back to the field's floor.
	num := func() (*int, error) {
		n := 0
		if raw != "" {
			var err error
			if n, err = strconv.Atoi(raw); err != nil {
				return nil, fmt.Errorf("%s: %q is not a whole number", f, raw)
			}
		}
		if n == 0 {
			n = f.fallback()
		}
		return Int(n), nil
	}

	var err error
	switch f {
	case FieldContent:
		ep.Content = String(raw)
	case FieldImageURL:
		sp.ImageURL = String(raw)
	case FieldIsOn:
		on, perr := strconv.ParseBool(raw)
		if perr != nil {
			return ep, sp, fmt.Errorf("%s: %q is not true or false", f, raw)
		}
		sp.IsOn = Bool(on)
	case FieldX:
		sp.X, err = num()
	case FieldY:
		sp.Y, err = num()
	case FieldWidth:
		sp.Width, err = num()
	case FieldHeight:
		sp.Height, err = num()
	case FieldBackgroundColor:
		sp.BackgroundColor = String(raw)
	case FieldBorderRadius:
		sp.BorderRadius, err = num()
	case FieldBorderWidth:
		sp.BorderWidth, err = num()
	case FieldBorderColor:
		sp.BorderColor = String(raw)
	case FieldFontSize:
		sp.FontSize, err = num()
	case FieldColor:
		sp.Color = String(raw)
	default:
		return ep, sp, fmt.Errorf("unknown field %q", string(f))
	}
	return ep, sp, err
}

func (f Field) fallback() int {
	switch f {
	case FieldWidth:
		return MinWidth
	case FieldHeight:
		return MinHeight
	case FieldFontSize:
		return fallbackFontSize
	}
	return 0
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
