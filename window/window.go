// Package window models output surfaces cameras present to
// Handles are opaque; the backend owns the surfaces behind them
package window

import (
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownHandle is returned when a backend is asked about a window it does not own
var ErrUnknownHandle = errors.New("unknown window handle")

// Handle identifies a dedicated window
type Handle uuid.UUID

// NewHandle allocates a fresh random handle
func NewHandle() Handle {
	return Handle(uuid.New())
}

// String returns the canonical UUID form
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// IsZero reports whether h was never allocated
func (h Handle) IsZero() bool {
	return uuid.UUID(h) == uuid.Nil
}

// Target is the surface a camera presents to: the shared primary window or a dedicated one
// The zero value is the primary window
type Target struct {
	handle Handle
}

// Primary returns the shared output target
func Primary() Target {
	return Target{}
}

// Dedicated returns a target bound to the window h
func Dedicated(h Handle) Target {
	return Target{handle: h}
}

// IsPrimary reports whether the target is the shared window
func (t Target) IsPrimary() bool {
	return t.handle.IsZero()
}

// Handle returns the dedicated window handle; ok is false for the primary target
func (t Target) Handle() (Handle, bool) {
	if t.IsPrimary() {
		return Handle{}, false
	}
	return t.handle, true
}

// String returns "primary" or the dedicated handle
func (t Target) String() string {
	if t.IsPrimary() {
		return "primary"
	}
	return t.handle.String()
}

// Position is a window's top-left corner in desktop coordinates
type Position struct {
	X, Y float64
}

// Config describes a window to create
type Config struct {
	Title    string
	Width    float64
	Height   float64
	Position Position
}

// Backend is the windowing collaborator
type Backend interface {
	// Base returns the configuration dedicated windows are sized from
	Base() Config
	// Create opens a window and returns its handle
	Create(cfg Config) (Handle, error)
	// Close releases the window behind h
	Close(h Handle) error
}
