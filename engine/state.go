package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/window"
)

// ErrInvariantViolation is returned when window bookkeeping disagrees with the window mode
var ErrInvariantViolation = errors.New("invariant violation")

// WindowMode selects shared or per-camera output windows
type WindowMode uint8

const (
	Single WindowMode = iota
	Multi
)

// String returns "single" or "multi"
func (m WindowMode) String() string {
	if m == Multi {
		return "multi"
	}
	return "single"
}

// State is the process-wide configuration state injected into each frame step
// Owned by the host loop; only the Engine mutates it
type State struct {
	// Selection is the camera commands act on; RoleNone until the first select
	Selection camera.Role

	// Mode is the current window routing mode
	Mode WindowMode

	// Surfaces maps each role to its dedicated window; populated only in Multi
	Surfaces map[camera.Role]window.Handle
}

// NewState returns the startup state: no selection, single window
func NewState() *State {
	return &State{
		Selection: camera.RoleNone,
		Mode:      Single,
		Surfaces:  make(map[camera.Role]window.Handle),
	}
}

// Check verifies the surface map agrees with the mode for the given roles
// Single: map empty. Multi: exactly one distinct handle per role
func (s *State) Check(roles []camera.Role) error {
	switch s.Mode {
	case Single:
		if len(s.Surfaces) != 0 {
			return fmt.Errorf("single mode holds %d dedicated windows: %w", len(s.Surfaces), ErrInvariantViolation)
		}
	case Multi:
		if len(s.Surfaces) != len(roles) {
			return fmt.Errorf("multi mode holds %d windows for %d cameras: %w", len(s.Surfaces), len(roles), ErrInvariantViolation)
		}
		seen := make(map[window.Handle]camera.Role, len(roles))
		for _, role := range roles {
			h, ok := s.Surfaces[role]
			if !ok {
				return fmt.Errorf("no window recorded for %s: %w", role, ErrInvariantViolation)
			}
			if other, dup := seen[h]; dup {
				return fmt.Errorf("%s and %s share window %s: %w", other, role, h, ErrInvariantViolation)
			}
			seen[h] = role
		}
	default:
		return fmt.Errorf("unknown window mode %d: %w", s.Mode, ErrInvariantViolation)
	}
	return nil
}
