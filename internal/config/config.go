// Package config loads user settings from ~/.screenforge.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"screenforge/internal/codegen"
)

// PathEnv overrides the location of the config file.
const PathEnv = "SCREENFORGE_CONFIG"

const fileName = ".screenforge.yaml"

type Config struct {
	SaveDirectory  string `yaml:"save_directory"`
	ExportFilename string `yaml:"export_filename"`
	Confirmations  bool   `yaml:"confirmations"`
	ServerAddr     string `yaml:"server_addr"`
	LogFile        string `yaml:"log_file"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		ExportFilename: codegen.Filename,
		Confirmations:  true,
		ServerAddr:     ":3000",
	}
}

// Path returns the config file location.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fileName)
}

// Load reads the config file. A missing file yields the defaults; a file
// that exists but cannot be parsed is an error.
func Load() (*Config, error) {
	cfg := Default()

	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ServerAddr = ":" + strings.TrimPrefix(port, ":")
	}
	if cfg.ExportFilename == "" {
		cfg.ExportFilename = codegen.Filename
	}
	cfg.SaveDirectory = expandPath(cfg.SaveDirectory)
	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

// GetSavePath joins filename onto the save directory, creating it.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// ExportPath is where the generated source is written.
func (c *Config) ExportPath() string {
	return c.GetSavePath(c.ExportFilename)
}

func expandPath(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(home, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
	}
	return value
}
