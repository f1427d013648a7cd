// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Display
	if d.DefaultColor == "" {
		d.DefaultColor = "white"
	}
	d.DefaultColor = strings.ToLower(d.DefaultColor)
	if d.Thickness == 0 {
		d.Thickness = 3
	}

	s := &cfg.Splash
	if s.Color == "" {
		s.Color = "green"
	}
	s.Color = strings.ToLower(s.Color)

	l := &cfg.Log
	l.Level = strings.ToLower(l.Level)
	if l.Level == "" {
		l.Level = "info"
	}
	l.Format = strings.ToLower(l.Format)
	if l.Format == "" {
		l.Format = "text"
	}
}
