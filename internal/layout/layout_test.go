package layout

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenforge/internal/codegen"
	"screenforge/internal/scene"
)

func TestLoad_YAMLAndJSONAgree(t *testing.T) {
	fromYAML, err := Load(filepath.Join("testdata", "login.yaml"))
	require.NoError(t, err)
	fromJSON, err := Load(filepath.Join("testdata", "login.json"))
	require.NoError(t, err)

	a, err := fromYAML.Build()
	require.NoError(t, err)
	b, err := fromJSON.Build()
	require.NoError(t, err)

	assert.Equal(t, a.Elements(), b.Elements())
	assert.Equal(t, codegen.Generate(a.Elements()), codegen.Generate(b.Elements()))
}

func TestBuild_MintsIDsInOrder(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "login.yaml"))
	require.NoError(t, err)

	sc, err := m.Build()
	require.NoError(t, err)

	var ids []string
	for _, el := range sc.Elements() {
		ids = append(ids, el.ID)
	}
	assert.Equal(t, []string{"text_1", "input_2", "button_3", "switch_4"}, ids)
	assert.Equal(t, "", sc.SelectedID())
}

func TestBuild_OverlaysDefaults(t *testing.T) {
	m, err := Load(filepath.Join("testdata", "login.yaml"))
	require.NoError(t, err)
	sc, err := m.Build()
	require.NoError(t, err)

	btn, ok := sc.Element("button_3")
	require.True(t, ok)
	assert.Equal(t, 327, btn.Style.Width)
	assert.Equal(t, 48, btn.Style.Height)
	assert.Equal(t, "#10b981", *btn.Style.BackgroundColor)
	assert.Equal(t, 12, *btn.Style.BorderRadius)
	assert.Equal(t, "Sign in", *btn.Content)

	sw, ok := sc.Element("switch_4")
	require.True(t, ok)
	assert.False(t, *sw.Style.IsOn)
	assert.Contains(t, codegen.Generate(sc.Elements()), "useState(false)")
}

func TestBuild_UnknownKind(t *testing.T) {
	m, err := Decode(strings.NewReader("elements:\n  - kind: text\n  - kind: slider\n"), FormatYAML)
	require.NoError(t, err)

	sc := scene.New()
	err = m.Apply(sc)
	assert.ErrorIs(t, err, scene.ErrUnknownKind)
	assert.Contains(t, err.Error(), "element 1")
	assert.Equal(t, 0, sc.Len())
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"elements":[{"kind":"text","colour":"red"}]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("elements:\n  - kind: text\n    style: {margin: 3}\n"), FormatYAML)
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	m, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	sc, err := m.Build()
	require.NoError(t, err)
	assert.Equal(t, codegen.EmptyPlaceholder, codegen.Generate(sc.Elements()))
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("screen.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFor("a/b/screen.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFor("screen.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
