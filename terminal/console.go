// Package terminal hosts the operator console on a tcell screen
//
// Layout, top to bottom:
//   - key legend, printed once at startup
//   - scrolling status log, newest line at the bottom
//   - one-row status bar with mode, selection and metrics
package terminal

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DefaultScrollback bounds the retained status log
const DefaultScrollback = 256

var (
	legendStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	logStyle    = tcell.StyleDefault
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	barStyle    = tcell.StyleDefault.Reverse(true)
)

// Console renders the legend, status log and status bar
// Safe for concurrent use; drawing happens on the caller of Draw
type Console struct {
	mu         sync.Mutex
	screen     tcell.Screen
	legend     []string
	log        []string
	scrollback int
	bar        string

	done      chan struct{} // closed by Close; unblocks the event pump
	pollDone  chan struct{} // closed when the event pump exits
	closeOnce sync.Once
}

// NewConsole wraps an initialized screen
func NewConsole(screen tcell.Screen) *Console {
	return &Console{
		screen:     screen,
		scrollback: DefaultScrollback,
		done:       make(chan struct{}),
		pollDone:   make(chan struct{}),
	}
}

// Open creates and initializes the process terminal screen
func Open() (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return NewConsole(screen), nil
}

// Screen returns the underlying screen
func (c *Console) Screen() tcell.Screen {
	return c.screen
}

// SetLegend replaces the legend block
func (c *Console) SetLegend(lines []string) {
	c.mu.Lock()
	c.legend = append([]string(nil), lines...)
	c.mu.Unlock()
}

// Println appends lines to the status log, dropping the oldest past the scrollback
func (c *Console) Println(lines ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = append(c.log, lines...)
	if over := len(c.log) - c.scrollback; over > 0 {
		c.log = append(c.log[:0], c.log[over:]...)
	}
}

// Lines returns a copy of the retained status log
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.log...)
}

// SetStatus replaces the status bar text
func (c *Console) SetStatus(s string) {
	c.mu.Lock()
	c.bar = s
	c.mu.Unlock()
}

// Draw repaints the whole screen and shows it
func (c *Console) Draw() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.screen.Clear()
	w, h := c.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	y := 0
	for _, line := range c.legend {
		if y >= h-1 {
			break
		}
		drawText(c.screen, 0, y, w, line, legendStyle)
		y++
	}
	if len(c.legend) > 0 && y < h-1 {
		y++ // gap
	}

	// Tail of the log that fits between legend and bar
	rows := h - 1 - y
	start := 0
	if rows < len(c.log) {
		start = len(c.log) - rows
	}
	if rows > 0 {
		for _, line := range c.log[start:] {
			style := logStyle
			if isError(line) {
				style = errorStyle
			}
			drawText(c.screen, 0, y, w, line, style)
			y++
		}
	}

	for x := 0; x < w; x++ {
		c.screen.SetContent(x, h-1, ' ', nil, barStyle)
	}
	drawText(c.screen, 0, h-1, w, c.bar, barStyle)

	c.screen.Show()
}

// Sync redraws after a resize
func (c *Console) Sync() {
	c.screen.Sync()
	c.Draw()
}

// Events polls screen events on a goroutine until Close
// The returned channel is closed when polling stops; call at most once
func (c *Console) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		defer close(c.pollDone)
		defer close(ch)
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			// Nobody may be reading after the host loop quits
			select {
			case ch <- ev:
			case <-c.done:
				return
			}
		}
	}()
	return ch
}

// Close stops the event pump and finalizes the screen; safe to call repeatedly
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.screen.Fini()
	})
}

func isError(line string) bool {
	return strings.HasPrefix(line, "error:")
}

// drawText writes s at (x, y), clipped to width w
func drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
}
