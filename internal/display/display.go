// Package display hands finished frames to whatever shows them: a real
// panel driver, an in-memory framebuffer, or a terminal preview. Every
// backend speaks tinygo's drivers.Displayer so the same Panel sink drives
// them all.
package display

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/nhdewitt/digit-matrix/internal/glyph"
)

// Sink accepts one completed frame and makes it visible.
type Sink interface {
	Show(b *glyph.Buffer) error
}

// Panel pushes frames to a Displayer at a fixed brightness.
type Panel struct {
	dev        drivers.Displayer
	brightness float64
}

func NewPanel(dev drivers.Displayer, brightness float64) *Panel {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	return &Panel{dev: dev, brightness: brightness}
}

func (p *Panel) Show(b *glyph.Buffer) error {
	w, h := p.dev.Size()
	if int(w) < glyph.Width || int(h) < glyph.Height {
		return fmt.Errorf("display is %dx%d, need %dx%d", w, h, glyph.Width, glyph.Height)
	}

	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < glyph.Width; x++ {
			p.dev.SetPixel(int16(x), int16(y), p.scale(b[y][x].RGBA()))
		}
	}

	if err := p.dev.Display(); err != nil {
		return fmt.Errorf("display refresh: %w", err)
	}
	return nil
}

func (p *Panel) scale(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * p.brightness),
		G: uint8(float64(c.G) * p.brightness),
		B: uint8(float64(c.B) * p.brightness),
		A: c.A,
	}
}
