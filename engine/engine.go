// Package engine applies operator commands to the camera registry once per frame
package engine

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/layercam/audio"
	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/status"
	"github.com/lixenwraith/layercam/window"
)

const (
	// DefaultGap is the horizontal spacing between tiled dedicated windows
	DefaultGap = 20.0
	// DefaultOffsetY is the top edge of tiled dedicated windows
	DefaultOffsetY = 500.0
)

// Layout positions dedicated windows in multi-window mode
type Layout struct {
	Gap     float64
	OffsetY float64
}

// DefaultLayout returns the standard left-to-right tiling
func DefaultLayout() Layout {
	return Layout{Gap: DefaultGap, OffsetY: DefaultOffsetY}
}

// CuePlayer receives feedback cues; audio.Player satisfies it
type CuePlayer interface {
	Play(audio.Cue)
}

type silentCues struct{}

func (silentCues) Play(audio.Cue) {}

// Engine owns the single writer path into the camera registry
// Not safe for concurrent use; readers use Registry.Published
type Engine struct {
	registry *camera.Registry
	backend  window.Backend
	layout   Layout
	logger   *slog.Logger
	cues     CuePlayer

	status *status.Registry
	// Cached metric pointers
	commands  *atomic.Int64
	toggles   *atomic.Int64
	failures  *atomic.Int64
	mode      *status.AtomicString
	selection *status.AtomicString
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger; default discards
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLayout overrides the dedicated window tiling
func WithLayout(l Layout) Option {
	return func(e *Engine) { e.layout = l }
}

// WithCues routes feedback cues to p
func WithCues(p CuePlayer) Option {
	return func(e *Engine) {
		if p != nil {
			e.cues = p
		}
	}
}

// WithStatus publishes counters into r
func WithStatus(r *status.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.status = r
		}
	}
}

// New creates an engine over reg, opening dedicated windows through backend
func New(reg *camera.Registry, backend window.Backend, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		backend:  backend,
		layout:   DefaultLayout(),
		logger:   slog.New(slog.DiscardHandler),
		cues:     silentCues{},
		status:   status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.commands = e.status.Ints.Get(status.KeyCommands)
	e.toggles = e.status.Ints.Get(status.KeyWindowToggles)
	e.failures = e.status.Ints.Get(status.KeyErrors)
	e.mode = e.status.Strings.Get(status.KeyWindowMode)
	e.selection = e.status.Strings.Get(status.KeySelection)
	e.mode.Store(Single.String())
	e.selection.Store(camera.RoleNone.String())

	return e
}

// Registry returns the camera registry
func (e *Engine) Registry() *camera.Registry {
	return e.registry
}

// Status returns the metrics registry
func (e *Engine) Status() *status.Registry {
	return e.status
}
