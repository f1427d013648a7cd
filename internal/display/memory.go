package display

import (
	"image/color"
	"sync"
)

// Memory is a Displayer backed by a plain pixel slice. It stands in for the
// panel on hosts without one.
type Memory struct {
	mu     sync.Mutex
	width  int16
	height int16
	pix    []color.RGBA
	frames int
}

func NewMemory(width, height int16) *Memory {
	return &Memory{
		width:  width,
		height: height,
		pix:    make([]color.RGBA, int(width)*int(height)),
	}
}

func (m *Memory) Size() (x, y int16) {
	return m.width, m.height
}

func (m *Memory) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.mu.Lock()
	m.pix[int(y)*int(m.width)+int(x)] = c
	m.mu.Unlock()
}

func (m *Memory) Display() error {
	m.mu.Lock()
	m.frames++
	m.mu.Unlock()
	return nil
}

func (m *Memory) At(x, y int16) color.RGBA {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return color.RGBA{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pix[int(y)*int(m.width)+int(x)]
}

// Frames counts Display calls.
func (m *Memory) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}
