package input

import (
	"github.com/gdamore/tcell/v2"
)

// Frame is the set of actions whose keys were pressed during one frame
type Frame struct {
	pressed [actionCount]bool
	// AnyKey is set when any key was pressed, bound or not
	AnyKey bool
}

// FrameOf builds a frame from actions; used by hosts without a terminal
func FrameOf(actions ...Action) Frame {
	var f Frame
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

// Press records a key press bound to a
func (f *Frame) Press(a Action) {
	f.AnyKey = true
	if a != ActionNone && a < actionCount {
		f.pressed[a] = true
	}
}

// Has reports whether a was pressed this frame
func (f Frame) Has(a Action) bool {
	return a < actionCount && f.pressed[a]
}

// Empty reports whether no key was pressed
func (f Frame) Empty() bool {
	return !f.AnyKey
}

// Collector accumulates terminal key events between frame ticks
// Repeated presses of the same key inside one frame count once
type Collector struct {
	keyTable *KeyTable
	frame    Frame
	resized  bool
}

// NewCollector creates a collector using kt; nil selects the default bindings
func NewCollector(kt *KeyTable) *Collector {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Collector{keyTable: kt}
}

// KeyTable returns the active bindings
func (c *Collector) KeyTable() *KeyTable {
	return c.keyTable
}

// Add folds a terminal event into the pending frame
// Returns the decoded action for key events, ActionNone otherwise
func (c *Collector) Add(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := c.keyTable.Lookup(ev)
		c.frame.Press(a)
		return a
	case *tcell.EventResize:
		c.resized = true
	}
	return ActionNone
}

// Resized reports whether a resize arrived since the last Flush
func (c *Collector) Resized() bool {
	return c.resized
}

// Flush returns the pending frame and starts a new one
func (c *Collector) Flush() Frame {
	f := c.frame
	c.frame = Frame{}
	c.resized = false
	return f
}
