package engine

import (
	"fmt"

	"github.com/lixenwraith/layercam/audio"
	"github.com/lixenwraith/layercam/camera"
)

// Field names the camera attribute a command changed
type Field uint8

const (
	FieldActive Field = iota
	FieldPriority
	FieldLayer
)

// Change describes the effect of one configuration command
type Change struct {
	Role  camera.Role
	Field Field
	// New state of the camera after the command
	Camera camera.Camera
}

// String formats the status line, e.g. "Scene: priority changed to mid"
func (c Change) String() string {
	switch c.Field {
	case FieldActive:
		return fmt.Sprintf("%s: is_active changed to %t", c.Role, c.Camera.Active)
	case FieldPriority:
		return fmt.Sprintf("%s: priority changed to %s", c.Role, camera.TierLabel(c.Camera.Priority))
	case FieldLayer:
		return fmt.Sprintf("%s: layer changed to %d", c.Role, c.Camera.Layer)
	}
	return fmt.Sprintf("%s: changed", c.Role)
}

// Select makes role the target of subsequent commands
// Fails with camera.ErrNotFound if no camera exists for role
func (e *Engine) Select(s *State, role camera.Role) error {
	if !e.registry.Has(role) {
		return fmt.Errorf("select %s: %w", role, camera.ErrNotFound)
	}
	s.Selection = role
	e.selection.Store(role.String())
	e.cues.Play(audio.CueSelect)
	e.logger.Debug("target selected", "role", role)
	return nil
}

// Current returns the selected role, RoleNone before any selection
func (e *Engine) Current(s *State) camera.Role {
	return s.Selection
}

// ToggleActive flips the selected camera's active flag
// ok is false when nothing is selected
func (e *Engine) ToggleActive(s *State) (Change, bool, error) {
	return e.mutate(s, FieldActive, func(c camera.Camera) error {
		return e.registry.SetActive(c.Role, !c.Active)
	})
}

// CyclePriority advances the selected camera's priority by one tier
func (e *Engine) CyclePriority(s *State) (Change, bool, error) {
	return e.mutate(s, FieldPriority, func(c camera.Camera) error {
		return e.registry.SetPriority(c.Role, camera.NextPriority(c.Priority))
	})
}

// CycleLayer advances the selected camera's layer
func (e *Engine) CycleLayer(s *State) (Change, bool, error) {
	return e.mutate(s, FieldLayer, func(c camera.Camera) error {
		return e.registry.SetLayer(c.Role, camera.NextLayer(c.Layer))
	})
}

// ReportOrder formats the composite order of the working state
func (e *Engine) ReportOrder() string {
	return "current order: " + camera.FormatOrder(e.registry.Snapshot())
}

func (e *Engine) mutate(s *State, field Field, apply func(camera.Camera) error) (Change, bool, error) {
	if s.Selection == camera.RoleNone {
		return Change{}, false, nil
	}

	cam, err := e.registry.Get(s.Selection)
	if err != nil {
		return Change{}, false, err
	}
	if err := apply(cam); err != nil {
		return Change{}, false, err
	}
	cam, err = e.registry.Get(s.Selection)
	if err != nil {
		return Change{}, false, err
	}

	ch := Change{Role: cam.Role, Field: field, Camera: cam}
	e.commands.Add(1)
	e.cues.Play(audio.CueCommand)
	e.logger.Debug("camera changed", "role", cam.Role, "priority", cam.Priority, "active", cam.Active, "layer", cam.Layer)
	return ch, true, nil
}
