package glyph

import "strings"

const (
	Width  = 32
	Height = 32
)

// Buffer is one display frame. The zero value is an all-background frame.
type Buffer [Height][Width]Color

// Clear returns a frame with every pixel unset.
func Clear() Buffer {
	return Buffer{}
}

// At returns the colour at (x, y), or Background outside the frame.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Background
	}
	return b[y][x]
}

// Lit counts the pixels that are not background.
func (b *Buffer) Lit() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x] != Background {
				n++
			}
		}
	}
	return n
}

// Format draws the frame as text, one line per row.
func (b *Buffer) Format(on, off rune) string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range b {
		for x := range b[y] {
			if b[y][x] != Background {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fill sets the w×h rectangle at (x, y), clipped to the frame.
func (b *Buffer) fill(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := clampInt(x, 0, Width)
	y0 := clampInt(y, 0, Height)
	x1 := clampInt(x+w, 0, Width)
	y1 := clampInt(y+h, 0, Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b[py][px] = c
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
