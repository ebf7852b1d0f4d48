package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/config"
	"github.com/lixenwraith/layercam/engine"
	"github.com/lixenwraith/layercam/input"
	"github.com/lixenwraith/layercam/render"
	"github.com/lixenwraith/layercam/status"
	"github.com/lixenwraith/layercam/terminal"
	"github.com/lixenwraith/layercam/window"
)

const (
	frameInterval = 16 * time.Millisecond
	// EWMA weight for the frame time readout
	frameSmoothing = 0.1
)

// app wires the engine, compositor and metrics for one session
type app struct {
	engine     *engine.Engine
	state      *engine.State
	backend    *window.Headless
	compositor *render.Compositor
	collector  *input.Collector
	status     *status.Registry
	logger     *slog.Logger

	frames  *atomic.Int64
	frameMs *status.AtomicFloat
}

func newApp(cfg config.Config, kt *input.KeyTable, cues engine.CuePlayer, logger *slog.Logger) *app {
	reg := status.NewRegistry()
	backend := window.NewHeadless(cfg.Base())

	a := &app{
		engine: engine.New(camera.DefaultRegistry(), backend,
			engine.WithLogger(logger),
			engine.WithLayout(cfg.Layout()),
			engine.WithCues(cues),
			engine.WithStatus(reg),
		),
		state:      engine.NewState(),
		backend:    backend,
		compositor: render.NewCompositor(backend, nil),
		collector:  input.NewCollector(kt),
		status:     reg,
		logger:     logger,
		frames:     reg.Ints.Get(status.KeyFrames),
		frameMs:    reg.Floats.Get(status.KeyFrameMillis),
	}
	reg.Bools.Get(status.KeyAudio).Store(cfg.Audio.Enabled)
	return a
}

// legend lists the key bindings shown at startup
func (a *app) legend() []string {
	return a.collector.KeyTable().Legend()
}

// frame steps the engine on f and composites the published snapshot
func (a *app) frame(f input.Frame) engine.Report {
	start := time.Now()

	r := a.engine.Step(a.state, f)
	if _, err := a.compositor.RenderFrame(a.engine.Registry().Published()); err != nil {
		a.logger.Warn("render failed", "error", err)
	}

	a.frames.Add(1)
	a.frameMs.Smooth(float64(time.Since(start).Microseconds())/1000, frameSmoothing)
	return r
}

// runConsole drives frames from terminal input until quit or screen close
func (a *app) runConsole(con *terminal.Console) {
	events := con.Events()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	con.SetLegend(a.legend())
	con.SetStatus(a.status.Line())
	con.Draw()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.collector.Add(ev)

		case <-ticker.C:
			if a.collector.Resized() {
				con.Sync()
			}
			r := a.frame(a.collector.Flush())
			con.Println(r.Lines...)
			con.SetStatus(a.status.Line())
			con.Draw()
			if r.Quit {
				return
			}
		}
	}
}

// runScript drives n frames from a key script without a terminal
// Lines are written to w as they would appear in the status log
func (a *app) runScript(w io.Writer, script []input.Frame, n int) {
	for _, line := range a.legend() {
		fmt.Fprintln(w, line)
	}
	if n < len(script) {
		n = len(script)
	}
	for i := 0; i < n; i++ {
		var f input.Frame
		if i < len(script) {
			f = script[i]
		}
		r := a.frame(f)
		for _, line := range r.Lines {
			fmt.Fprintln(w, line)
		}
		if r.Quit {
			break
		}
	}
	fmt.Fprintln(w, a.status.Line())
}

// parseScript splits s into frames on whitespace; each rune of a token is
// one key press in that frame and "." stands for a frame with no keys
func parseScript(s string, kt *input.KeyTable) []input.Frame {
	var frames []input.Frame
	for _, tok := range strings.Fields(s) {
		var f input.Frame
		if tok != "." {
			for _, r := range tok {
				f.Press(kt.Lookup(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
			}
		}
		frames = append(frames, f)
	}
	return frames
}
