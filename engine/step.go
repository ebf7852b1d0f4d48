package engine

import (
	"github.com/lixenwraith/layercam/audio"
	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/input"
)

// Report is the operator-visible outcome of one frame
type Report struct {
	// Lines are status lines in emission order
	Lines []string
	// Errors are recognized failures; each also appears in Lines
	Errors []error
	// Quit is set when a quit key was pressed
	Quit bool
}

// selectActions are applied in this order; a later selection in the same frame wins
var selectActions = []struct {
	action input.Action
	role   camera.Role
}{
	{input.ActionSelectForeground, camera.Foreground},
	{input.ActionSelectScene, camera.Scene},
	{input.ActionSelectBackground, camera.Background},
}

// Step applies one frame of input to s and publishes the resulting registry state
// Order: selection, mutations, window toggle, order report
func (e *Engine) Step(s *State, f input.Frame) Report {
	var r Report

	for _, sel := range selectActions {
		if f.Has(sel.action) {
			r.fail(e, e.Select(s, sel.role))
		}
	}

	commands := []struct {
		action input.Action
		run    func(*State) (Change, bool, error)
	}{
		{input.ActionToggleActive, e.ToggleActive},
		{input.ActionCyclePriority, e.CyclePriority},
		{input.ActionCycleLayer, e.CycleLayer},
	}
	for _, cmd := range commands {
		if !f.Has(cmd.action) {
			continue
		}
		ch, ok, err := cmd.run(s)
		if err != nil {
			r.fail(e, err)
			continue
		}
		if ok {
			r.Lines = append(r.Lines, ch.String())
		}
	}

	if f.Has(input.ActionToggleWindowMode) {
		t, err := e.ToggleWindowMode(s)
		if t.From != t.To {
			r.Lines = append(r.Lines, t.String())
		}
		r.fail(e, err)
	}

	if f.AnyKey {
		r.Lines = append(r.Lines, e.ReportOrder())
	}

	r.Quit = f.Has(input.ActionQuit)

	e.registry.Publish()
	return r
}

// fail records err as a status line; nil is ignored
func (r *Report) fail(e *Engine, err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err)
	r.Lines = append(r.Lines, "error: "+err.Error())
	e.failures.Add(1)
	e.cues.Play(audio.CueError)
	e.logger.Warn("command failed", "error", err)
}
