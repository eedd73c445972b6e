package scene

// Style is the attribute record of one element. Geometry is always present;
// a nil optional field means "use the kind's default", never zero.
type Style struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`

	BackgroundColor *string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	BorderRadius    *int    `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty"`
	FontSize        *int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Color           *string `json:"color,omitempty" yaml:"color,omitempty"`
	Padding         *int    `json:"padding,omitempty" yaml:"padding,omitempty"`
	BorderWidth     *int    `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	BorderColor     *string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	IsOn            *bool   `json:"isOn,omitempty" yaml:"isOn,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// StylePatch carries the fields of a partial style update. Nil fields are
// left untouched by Apply.
type StylePatch struct {
	Width  *int `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int `json:"height,omitempty" yaml:"height,omitempty"`
	X      *int `json:"x,omitempty" yaml:"x,omitempty"`
	Y      *int `json:"y,omitempty" yaml:"y,omitempty"`

	BackgroundColor *string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	BorderRadius    *int    `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty"`
	FontSize        *int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Color           *string `json:"color,omitempty" yaml:"color,omitempty"`
	Padding         *int    `json:"padding,omitempty" yaml:"padding,omitempty"`
	BorderWidth     *int    `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	BorderColor     *string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	IsOn            *bool   `json:"isOn,omitempty" yaml:"isOn,omitempty"`
	ImageURL        *string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Int returns a pointer to v, for building optional fields.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Clone returns a deep copy that shares no pointers with s.
func (s Style) Clone() Style {
	c := s
	c.BackgroundColor = cloneString(s.BackgroundColor)
	c.BorderRadius = cloneInt(s.BorderRadius)
	c.FontSize = cloneInt(s.FontSize)
	c.Color = cloneString(s.Color)
	c.Padding = cloneInt(s.Padding)
	c.BorderWidth = cloneInt(s.BorderWidth)
	c.BorderColor = cloneString(s.BorderColor)
	c.IsOn = cloneBool(s.IsOn)
	c.ImageURL = cloneString(s.ImageURL)
	return c
}

// Apply merges the set fields of p into s and reports whether anything was
// set. Values are copied, so s never aliases the patch.
func (s *Style) Apply(p StylePatch) bool {
	changed := false
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
			changed = true
		}
	}
	setOptInt := func(dst **int, src *int) {
		if src != nil {
			*dst = cloneInt(src)
			changed = true
		}
	}
	setOptString := func(dst **string, src *string) {
		if src != nil {
			*dst = cloneString(src)
			changed = true
		}
	}

	setInt(&s.Width, p.Width)
	setInt(&s.Height, p.Height)
	setInt(&s.X, p.X)
	setInt(&s.Y, p.Y)
	setOptString(&s.BackgroundColor, p.BackgroundColor)
	setOptInt(&s.BorderRadius, p.BorderRadius)
	setOptInt(&s.FontSize, p.FontSize)
	setOptString(&s.Color, p.Color)
	setOptInt(&s.Padding, p.Padding)
	setOptInt(&s.BorderWidth, p.BorderWidth)
	setOptString(&s.BorderColor, p.BorderColor)
	if p.IsOn != nil {
		s.IsOn = cloneBool(p.IsOn)
		changed = true
	}
	setOptString(&s.ImageURL, p.ImageURL)
	return changed
}

// Editing-surface bounds for element size.
const (
	MinWidth  = 40
	MinHeight = 24
	MaxWidth  = 343
	MaxHeight = 700
)

// Clamp bounds width and height to the editing surface limits. The
// generator never calls it; it emits whatever is stored.
func Clamp(s Style) Style {
	s.Width = clampInt(s.Width, MinWidth, MaxWidth)
	s.Height = clampInt(s.Height, MinHeight, MaxHeight)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
