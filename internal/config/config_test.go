package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrixd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, ":80", cfg.Server.Listen)
	assert.Equal(t, 0.5, cfg.Display.Brightness)
	assert.Equal(t, 3, cfg.Display.Thickness)
	assert.Equal(t, "green", cfg.Splash.Color)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: "127.0.0.1:8080"
display:
  brightness: 0.8
  default_color: Red
splash:
  enabled: false
log:
  level: DEBUG
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Listen)
	assert.Equal(t, 0.8, cfg.Display.Brightness)
	assert.Equal(t, "red", cfg.Display.DefaultColor)
	assert.Equal(t, 3, cfg.Display.Thickness)
	assert.False(t, cfg.Splash.Enabled)
	assert.Equal(t, 2000, cfg.Splash.DurationMs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "display: [1, 2"))
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"listen without port":  func(c *Config) { c.Server.Listen = "80" },
		"brightness zero":      func(c *Config) { c.Display.Brightness = 0 },
		"brightness above one": func(c *Config) { c.Display.Brightness = 1.5 },
		"unknown color":        func(c *Config) { c.Display.DefaultColor = "orange" },
		"thickness too large":  func(c *Config) { c.Display.Thickness = 8 },
		"negative thickness":   func(c *Config) { c.Display.Thickness = -1 },
		"splash digit":         func(c *Config) { c.Splash.Digit = 10 },
		"splash color":         func(c *Config) { c.Splash.Color = "purple" },
		"splash duration":      func(c *Config) { c.Splash.DurationMs = -5 },
		"log level":            func(c *Config) { c.Log.Level = "verbose" },
		"log format":           func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, Validate(cfg), name)
	}
	assert.Error(t, Validate(nil))
}

func TestValidateIgnoresDisabledSplash(t *testing.T) {
	cfg := Default()
	cfg.Splash.Enabled = false
	cfg.Splash.Digit = 42
	assert.NoError(t, Validate(cfg))
}

func TestNormalizeFillsBlanks(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)
	assert.Equal(t, "white", cfg.Display.DefaultColor)
	assert.Equal(t, 3, cfg.Display.Thickness)
	assert.Equal(t, "green", cfg.Splash.Color)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	Normalize(nil)
}
