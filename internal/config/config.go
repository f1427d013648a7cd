// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
	Splash  SplashConfig  `yaml:"splash"`
	Log     LogConfig     `yaml:"log"`
}

// ---- SERVER ----

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// ---- DISPLAY ----

type DisplayConfig struct {
	Brightness   float64 `yaml:"brightness"`
	DefaultColor string  `yaml:"default_color"`
	Thickness    int     `yaml:"thickness"`
	Preview      bool    `yaml:"preview"`
}

// ---- BOOT SPLASH ----

type SplashConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Digit      int    `yaml:"digit"`
	Color      string `yaml:"color"`
	DurationMs int    `yaml:"duration_ms"`
}

// ---- LOGGING ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default matches the device's factory settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":80",
		},
		Display: DisplayConfig{
			Brightness:   0.5,
			DefaultColor: "white",
			Thickness:    3,
		},
		Splash: SplashConfig{
			Enabled:    true,
			Digit:      0,
			Color:      "green",
			DurationMs: 2000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
