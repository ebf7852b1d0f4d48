package window

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/surface"
)

// Window is an open window owned by a Headless backend
type Window struct {
	Handle  Handle
	Config  Config
	Surface *surface.ImageSurface
}

// Headless is an in-process Backend backed by CPU image surfaces
// Safe for concurrent use; the engine creates/closes while the compositor reads
type Headless struct {
	mu      sync.RWMutex
	base    Config
	primary *surface.ImageSurface
	windows map[Handle]*Window
	order   []Handle // creation order for Windows()
}

// NewHeadless creates a backend whose primary window uses base
func NewHeadless(base Config) *Headless {
	return &Headless{
		base:    base,
		primary: surface.NewImageSurface(pixels(base.Width), pixels(base.Height)),
		windows: make(map[Handle]*Window),
	}
}

// Base returns the base window configuration
func (b *Headless) Base() Config {
	return b.base
}

// Create allocates a surface sized from cfg
func (b *Headless) Create(cfg Config) (Handle, error) {
	w, h := pixels(cfg.Width), pixels(cfg.Height)
	if w <= 0 || h <= 0 {
		return Handle{}, fmt.Errorf("create window %q: invalid size %vx%v", cfg.Title, cfg.Width, cfg.Height)
	}

	handle := NewHandle()
	win := &Window{
		Handle:  handle,
		Config:  cfg,
		Surface: surface.NewImageSurface(w, h),
	}

	b.mu.Lock()
	b.windows[handle] = win
	b.order = append(b.order, handle)
	b.mu.Unlock()

	return handle, nil
}

// Close releases the surface behind h
func (b *Headless) Close(h Handle) error {
	b.mu.Lock()
	win, ok := b.windows[h]
	if ok {
		delete(b.windows, h)
		for i, oh := range b.order {
			if oh == h {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("close %s: %w", h, ErrUnknownHandle)
	}
	return win.Surface.Close()
}

// Primary returns the shared output surface
func (b *Headless) Primary() *surface.ImageSurface {
	return b.primary
}

// Surface returns the surface for target t
func (b *Headless) Surface(t Target) (*surface.ImageSurface, error) {
	h, ok := t.Handle()
	if !ok {
		return b.primary, nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	win, ok := b.windows[h]
	if !ok {
		return nil, fmt.Errorf("surface %s: %w", h, ErrUnknownHandle)
	}
	return win.Surface, nil
}

// Windows returns the open dedicated windows in creation order
func (b *Headless) Windows() []Window {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Window, 0, len(b.order))
	for _, h := range b.order {
		out = append(out, *b.windows[h])
	}
	return out
}

// Len returns the number of open dedicated windows
func (b *Headless) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.windows)
}

func pixels(v float64) int {
	return int(v)
}
