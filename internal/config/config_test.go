package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	body := "save_directory: " + filepath.Join(dir, "out") + "\n" +
		"export_filename: Login.js\n" +
		"confirmations: false\n" +
		"server_addr: 127.0.0.1:8080\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	t.Setenv(PathEnv, path)
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.SaveDirectory)
	assert.Equal(t, "Login.js", cfg.ExportFilename)
	assert.False(t, cfg.Confirmations)
	assert.Equal(t, "127.0.0.1:8080", cfg.ServerAddr)

	assert.Equal(t, filepath.Join(dir, "out", "Login.js"), cfg.ExportPath())
	info, err := os.Stat(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PORT", "4100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4100", cfg.ServerAddr)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confirmations: [nope"), 0644))
	t.Setenv(PathEnv, path)

	_, err := Load()
	assert.Error(t, err)
}

func TestGetSavePath_NoDirectory(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Screen.js", cfg.ExportPath())
}
