package glyph

import (
	"image/color"
	"strings"
)

type Color uint8

const (
	Background Color = iota
	Red
	Green
	Blue
	White
	Yellow
	Cyan
	Magenta
)

var palette = [...]color.RGBA{
	Background: {R: 0, G: 0, B: 0, A: 0xff},
	Red:        {R: 255, G: 0, B: 0, A: 0xff},
	Green:      {R: 0, G: 255, B: 0, A: 0xff},
	Blue:       {R: 0, G: 0, B: 255, A: 0xff},
	White:      {R: 255, G: 255, B: 255, A: 0xff},
	Yellow:     {R: 255, G: 255, B: 0, A: 0xff},
	Cyan:       {R: 0, G: 255, B: 255, A: 0xff},
	Magenta:    {R: 255, G: 0, B: 255, A: 0xff},
}

var names = map[string]Color{
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"white":   White,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
}

// ColorNames lists the names accepted by ResolveColor, in display order.
var ColorNames = []string{"red", "green", "blue", "white", "yellow", "cyan", "magenta"}

// RGBA returns the fixed triple for c. Unknown values map to background.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[Background]
	}
	return palette[c]
}

func (c Color) String() string {
	if c == Background {
		return "background"
	}
	for name, v := range names {
		if v == c {
			return name
		}
	}
	return "unknown"
}

// LookupColor matches name case-insensitively against the palette.
func LookupColor(name string) (Color, bool) {
	c, ok := names[strings.ToLower(name)]
	return c, ok
}

// ResolveColor never fails: anything that is not a palette name is White.
func ResolveColor(name string) Color {
	if c, ok := LookupColor(name); ok {
		return c
	}
	return White
}
