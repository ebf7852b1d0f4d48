package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/layercam/audio"
	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/window"
)

// Transition describes a completed window mode toggle
type Transition struct {
	From, To WindowMode
	// Windows opened (Single→Multi) or closed (Multi→Single), registry order
	Windows []window.Handle
}

// String formats the status line
func (t Transition) String() string {
	if t.To == Multi {
		return fmt.Sprintf("window mode: %s (%d windows)", t.To, len(t.Windows))
	}
	return fmt.Sprintf("window mode: %s", t.To)
}

// ToggleWindowMode moves every camera between the primary window and dedicated windows
// On error the state and registry are left as they were, except that close
// failures during Multi→Single are reported after the transition completes
func (e *Engine) ToggleWindowMode(s *State) (Transition, error) {
	roles := e.registry.Roles()
	if err := s.Check(roles); err != nil {
		return Transition{}, fmt.Errorf("toggle window mode: %w", err)
	}

	var (
		t   Transition
		err error
	)
	if s.Mode == Single {
		t, err = e.openWindows(s, roles)
	} else {
		t, err = e.closeWindows(s, roles)
	}
	if t.From == t.To {
		// Aborted before any change
		return t, err
	}

	e.toggles.Add(1)
	e.mode.Store(s.Mode.String())
	if t.To == Multi {
		e.cues.Play(audio.CueWindowOpen)
	} else {
		e.cues.Play(audio.CueWindowClose)
	}
	e.logger.Info("window mode changed", "from", t.From, "to", t.To, "windows", len(t.Windows))
	return t, err
}

// openWindows creates one dedicated window per camera, tiled left to right
// All windows are created before any camera is rebound; a failed create
// closes the windows already opened
func (e *Engine) openWindows(s *State, roles []camera.Role) (Transition, error) {
	base := e.backend.Base()
	created := make([]window.Handle, 0, len(roles))

	for i, role := range roles {
		cfg := window.Config{
			Title:  role.String(),
			Width:  base.Width,
			Height: base.Height,
			Position: window.Position{
				X: (base.Width + e.layout.Gap) * float64(i),
				Y: e.layout.OffsetY,
			},
		}
		h, err := e.backend.Create(cfg)
		if err != nil {
			errs := []error{fmt.Errorf("open %s window: %w", role, err)}
			for _, opened := range created {
				if cerr := e.backend.Close(opened); cerr != nil {
					errs = append(errs, fmt.Errorf("rollback close %s: %w", opened, cerr))
				}
			}
			return Transition{From: Single, To: Single}, errors.Join(errs...)
		}
		created = append(created, h)
	}

	for i, role := range roles {
		// Roles come from the registry, lookup cannot fail
		_ = e.registry.SetTarget(role, window.Dedicated(created[i]))
		s.Surfaces[role] = created[i]
	}
	s.Mode = Multi

	return Transition{From: Single, To: Multi, Windows: created}, nil
}

// closeWindows releases every dedicated window and rebinds cameras to the primary window
func (e *Engine) closeWindows(s *State, roles []camera.Role) (Transition, error) {
	closed := make([]window.Handle, 0, len(roles))
	var errs []error

	for _, role := range roles {
		h, ok := s.Surfaces[role]
		if !ok {
			// Check guarantees presence; reaching here means state changed underneath us
			return Transition{From: Multi, To: Multi}, fmt.Errorf("close %s window: %w", role, ErrInvariantViolation)
		}
		closed = append(closed, h)
	}

	for i, role := range roles {
		h := closed[i]
		delete(s.Surfaces, role)
		if err := e.backend.Close(h); err != nil {
			errs = append(errs, fmt.Errorf("close %s window: %w", role, err))
		}
		_ = e.registry.SetTarget(role, window.Primary())
	}
	s.Mode = Single

	return Transition{From: Multi, To: Single, Windows: closed}, errors.Join(errs...)
}
