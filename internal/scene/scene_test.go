package scene

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddElement_MintsIDAndSelects(t *testing.T) {
	sc := New()

	btn := sc.AddElement(Button)
	assert.Equal(t, "button_1", btn.ID)
	assert.Equal(t, Button, btn.Kind)
	assert.Equal(t, "Button", btn.ContentOr(""))
	assert.Equal(t, "button_1", sc.SelectedID())

	txt := sc.AddElement(Text)
	assert.Equal(t, "text_2", txt.ID)
	assert.Equal(t, "text_2", sc.SelectedID())
	assert.Equal(t, 2, sc.Len())
}

func TestAddElement_StylesAreNotShared(t *testing.T) {
	sc := New()
	a := sc.AddElement(Button)
	b := sc.AddElement(Button)

	sc.UpdateElementStyle(a.ID, StylePatch{BackgroundColor: String("#000000")})

	gotB, ok := sc.Element(b.ID)
	require.True(t, ok)
	assert.Equal(t, "#6366f1", *gotB.Style.BackgroundColor)
	assert.Equal(t, "#6366f1", *DefaultStyle(Button).BackgroundColor)
}

func TestIDsAreNeverReused(t *testing.T) {
	sc := New()
	first := sc.AddElement(Text)
	sc.DeleteElement(first.ID)
	second := sc.AddElement(Text)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "text_2", second.ID)
}

func TestUpdateElementStyle_MergesFields(t *testing.T) {
	sc := New()
	el := sc.AddElement(Input)

	sc.UpdateElementStyle(el.ID, StylePatch{X: Int(5), Color: String("#ff0000")})

	got, ok := sc.Element(el.ID)
	require.True(t, ok)
	assert.Equal(t, 5, got.Style.X)
	assert.Equal(t, 100, got.Style.Y)
	assert.Equal(t, "#ff0000", *got.Style.Color)
	assert.Equal(t, 1, *got.Style.BorderWidth)
}

func TestUpdateElementStyle_MissingIDIsNoop(t *testing.T) {
	sc := New()
	sc.AddElement(Card)
	before := sc.Elements()

	ok := sc.UpdateElementStyle("card_99", StylePatch{Width: Int(1)})

	assert.False(t, ok)
	assert.Equal(t, before, sc.Elements())
}

func TestUpdateElement_ReplacesContent(t *testing.T) {
	sc := New()
	el := sc.AddElement(Button)

	sc.UpdateElement(el.ID, ElementPatch{Content: String("Go")})
	got, _ := sc.Element(el.ID)
	assert.Equal(t, "Go", *got.Content)

	assert.False(t, sc.UpdateElement("nope", ElementPatch{Content: String("x")}))
}

func TestDeleteElement_ClearsSelection(t *testing.T) {
	sc := New()
	a := sc.AddElement(Button)
	b := sc.AddElement(Switch)

	sc.DeleteElement(b.ID)
	assert.Equal(t, "", sc.SelectedID())
	_, ok := sc.SelectedElement()
	assert.False(t, ok)

	sc.SelectElement(a.ID)
	sc.DeleteElement("missing")
	assert.Equal(t, a.ID, sc.SelectedID())
}

func TestSelectedElement_DanglingSelection(t *testing.T) {
	sc := New()
	sc.AddElement(Icon)
	sc.SelectElement("ghost_7")

	assert.Equal(t, "ghost_7", sc.SelectedID())
	_, ok := sc.SelectedElement()
	assert.False(t, ok)
}

func TestElements_ReturnsDeepCopy(t *testing.T) {
	sc := New()
	el := sc.AddElement(Text)

	snapshot := sc.Elements()
	*snapshot[0].Style.Color = "#123456"
	*snapshot[0].Content = "changed"

	got, _ := sc.Element(el.ID)
	assert.Equal(t, "#1a1a1a", *got.Style.Color)
	assert.Equal(t, "Text Label", *got.Content)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind(" container ")
	require.NoError(t, err)
	assert.Equal(t, Container, k)

	_, err = ParseKind("slider")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestClamp(t *testing.T) {
	s := Clamp(Style{Width: 10, Height: 1000})
	assert.Equal(t, MinWidth, s.Width)
	assert.Equal(t, MaxHeight, s.Height)

	s = Clamp(Style{Width: 400, Height: 10})
	assert.Equal(t, MaxWidth, s.Width)
	assert.Equal(t, MinHeight, s.Height)
}

func TestEditableFields(t *testing.T) {
	assert.Equal(t, []Field{
		FieldContent, FieldX, FieldY, FieldWidth, FieldHeight, FieldBackgroundColor,
		FieldBorderRadius, FieldBorderWidth, FieldBorderColor, FieldFontSize, FieldColor,
	}, EditableFields(Input))

	assert.Equal(t, []Field{
		FieldIsOn, FieldX, FieldY, FieldWidth, FieldHeight, FieldBackgroundColor, FieldBorderRadius,
	}, EditableFields(Switch))

	assert.NotContains(t, EditableFields(Container), FieldContent)
}

func TestFieldPatch(t *testing.T) {
	_, sp, err := FieldWidth.Patch("120")
	require.NoError(t, err)
	assert.Equal(t, 120, *sp.Width)

	_, _, err = FieldFontSize.Patch("big")
	assert.Error(t, err)

	ep, _, err := FieldContent.Patch("Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", *ep.Content)

	_, sp, err = FieldIsOn.Patch("false")
	require.NoError(t, err)
	assert.False(t, *sp.IsOn)

	_, sp, err = FieldBorderRadius.Patch("")
	require.NoError(t, err)
	assert.Equal(t, 0, *sp.BorderRadius)
}

func TestFieldPatch_EmptyOrZeroFallsBack(t *testing.T) {
	tests := []struct {
		field Field
		raw   string
		want  func(StylePatch) *int
		value int
	}{
		{FieldWidth, "", func(p StylePatch) *int { return p.Width }, MinWidth},
		{FieldWidth, "0", func(p StylePatch) *int { return p.Width }, MinWidth},
		{FieldHeight, "", func(p StylePatch) *int { return p.Height }, MinHeight},
		{FieldFontSize, " 0 ", func(p StylePatch) *int { return p.FontSize }, 12},
		{FieldX, "", func(p StylePatch) *int { return p.X }, 0},
		{FieldWidth, "-50", func(p StylePatch) *int { return p.Width }, -50},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"="+tt.raw, func(t *testing.T) {
			_, sp, err := tt.field.Patch(tt.raw)
			require.NoError(t, err)
			require.NotNil(t, tt.want(sp))
			assert.Equal(t, tt.value, *tt.want(sp))
		})
	}
}

func TestFieldValue(t *testing.T) {
	sc := New()
	el := sc.AddElement(Switch)
	assert.Equal(t, "true", FieldIsOn.Value(el))
	assert.Equal(t, "52", FieldWidth.Value(el))
	assert.Equal(t, "", FieldFontSize.Value(el))
}

func TestStore_NotifiesOnChange(t *testing.T) {
	st := NewStore(nil)
	var revs []uint64
	st.Subscribe(func(rev uint64) { revs = append(revs, rev) })

	el := st.AddElement(Button)
	st.UpdateElementStyle(el.ID, StylePatch{X: Int(1)})
	st.UpdateElementStyle("missing", StylePatch{X: Int(1)})
	st.SelectElement(el.ID)
	st.DeleteElement(el.ID)

	assert.Equal(t, []uint64{1, 2, 3}, revs)
	assert.Equal(t, uint64(3), st.Revision())
}

func TestStore_ConcurrentAdds(t *testing.T) {
	st := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.AddElement(Text)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, el := range st.Elements() {
		assert.False(t, seen[el.ID], "duplicate id %s", el.ID)
		seen[el.ID] = true
	}
	assert.Len(t, seen, 50)
}
