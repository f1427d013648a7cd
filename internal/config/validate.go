// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/nhdewitt/digit-matrix/internal/glyph"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// ------------------------------------------------------------
	// SERVER
	// ------------------------------------------------------------

	if _, _, err := net.SplitHostPort(cfg.Server.Listen); err != nil {
		return fmt.Errorf("server.listen %q: %w", cfg.Server.Listen, err)
	}

	// ------------------------------------------------------------
	// DISPLAY
	// ------------------------------------------------------------

	if cfg.Display.Brightness <= 0 || cfg.Display.Brightness > 1 {
		return fmt.Errorf("display.brightness must be in (0, 1], got %v", cfg.Display.Brightness)
	}

	if cfg.Display.DefaultColor != "" {
		if _, ok := glyph.LookupColor(cfg.Display.DefaultColor); !ok {
			return fmt.Errorf("display.default_color %q is not one of %s",
				cfg.Display.DefaultColor, strings.Join(glyph.ColorNames, ", "))
		}
	}

	// 0 means "use the default"
	if cfg.Display.Thickness < 0 || cfg.Display.Thickness > int(glyph.MaxThickness) {
		return fmt.Errorf("display.thickness must be between 1 and %d, got %d",
			glyph.MaxThickness, cfg.Display.Thickness)
	}

	// ------------------------------------------------------------
	// SPLASH (only checked when enabled)
	// ------------------------------------------------------------

	if cfg.Splash.Enabled {
		if _, ok := glyph.ToDigit(cfg.Splash.Digit); !ok {
			return fmt.Errorf("splash.digit must be 0-9, got %d", cfg.Splash.Digit)
		}
		if cfg.Splash.Color != "" {
			if _, ok := glyph.LookupColor(cfg.Splash.Color); !ok {
				return fmt.Errorf("splash.color %q is not a known color", cfg.Splash.Color)
			}
		}
		if cfg.Splash.DurationMs < 0 {
			return fmt.Errorf("splash.duration_ms must not be negative, got %d", cfg.Splash.DurationMs)
		}
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q: want text or json", cfg.Log.Format)
	}

	return nil
}
