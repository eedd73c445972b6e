package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenforge/internal/layout"
)

const buttonManifest = `elements:
  - kind: button
    content: Go
`

func TestNew_RejectsUnknownExtension(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "screen.toml"), "Screen.js")
	assert.ErrorIs(t, err, layout.ErrUnsupportedFormat)
}

func TestRegenerate(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "screen.yaml")
	output := filepath.Join(dir, "out", "Screen.js")
	preview := filepath.Join(dir, "out", "screen.png")
	require.NoError(t, os.WriteFile(manifest, []byte(buttonManifest), 0644))

	w, err := New(manifest, output)
	require.NoError(t, err)
	defer w.Stop()
	w.SetPreview(preview)

	require.NoError(t, w.Regenerate())

	code, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(code), "<Text style={styles.button_1Text}>Go</Text>")
	_, err = os.Stat(preview)
	assert.NoError(t, err)
}

func TestRegenerate_BadManifestKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "screen.yaml")
	output := filepath.Join(dir, "Screen.js")
	require.NoError(t, os.WriteFile(manifest, []byte(buttonManifest), 0644))

	w, err := New(manifest, output)
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Regenerate())
	before, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(manifest, []byte("elements:\n  - kind: slider\n"), 0644))
	assert.Error(t, w.Regenerate())

	after, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStart_RegeneratesOnWrite(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "screen.yaml")
	output := filepath.Join(dir, "Screen.js")
	require.NoError(t, os.WriteFile(manifest, []byte("elements: []\n"), 0644))

	w, err := New(manifest, output)
	require.NoError(t, err)
	results := make(chan error, 16)
	w.OnRegenerate = func(err error) { results <- err }
	w.Start()
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(manifest, []byte(buttonManifest), 0644))

	select {
	case err := <-results:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for regeneration")
	}

	require.Eventually(t, func() bool {
		code, err := os.ReadFile(output)
		return err == nil && len(code) > 0
	}, 5*time.Second, 20*time.Millisecond)
}
