package display

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/nhdewitt/digit-matrix/internal/glyph"
)

// Terminal previews the matrix in a terminal, two cells per LED so pixels
// come out roughly square.
type Terminal struct {
	screen    tcell.Screen
	interrupt chan struct{}
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal preview: %w", err)
	}
	return NewTerminalScreen(screen), nil
}

// NewTerminalScreen wraps an already initialised screen.
func NewTerminalScreen(screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen:    screen,
		interrupt: make(chan struct{}),
	}
	screen.HideCursor()
	screen.Clear()
	go t.pollEvents()
	return t
}

func (t *Terminal) Size() (x, y int16) {
	return glyph.Width, glyph.Height
}

func (t *Terminal) SetPixel(x, y int16, c color.RGBA) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	t.screen.SetContent(int(x)*2, int(y), ' ', nil, style)
	t.screen.SetContent(int(x)*2+1, int(y), ' ', nil, style)
}

func (t *Terminal) Display() error {
	t.screen.Show()
	return nil
}

// Interrupted is closed when the user presses Ctrl+C, Esc or q. The screen
// runs in raw mode, so those keys never reach the process as a signal.
func (t *Terminal) Interrupted() <-chan struct{} {
	return t.interrupt
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				close(t.interrupt)
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
