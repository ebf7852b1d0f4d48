package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lixenwraith/layercam/camera"
	"github.com/lixenwraith/layercam/window"
)

// Pass records what one output surface received in a frame
type Pass struct {
	Target window.Target
	// Order lists the cameras composited, first drawn first
	Order []camera.Camera
}

// Compositor draws each active camera's layer onto its target surface
// Reads published camera snapshots only; never mutates camera state
type Compositor struct {
	src     SurfaceSource
	content Content
	clear   color.Color
}

// NewCompositor creates a compositor drawing content onto surfaces from src
func NewCompositor(src SurfaceSource, content Content) *Compositor {
	if content == nil {
		content = DefaultContent()
	}
	return &Compositor{
		src:     src,
		content: content,
		clear:   color.Black,
	}
}

// RenderFrame composites cams onto their targets
// Targets are visited in order of first appearance in cams; the primary
// surface is always cleared even when no camera targets it
// A target whose surface cannot be resolved is skipped and reported
func (c *Compositor) RenderFrame(cams []camera.Camera) ([]Pass, error) {
	groups := make(map[window.Target][]camera.Camera)
	targets := []window.Target{window.Primary()}
	groups[window.Primary()] = nil
	for _, cam := range cams {
		if _, seen := groups[cam.Target]; !seen {
			targets = append(targets, cam.Target)
		}
		groups[cam.Target] = append(groups[cam.Target], cam)
	}

	passes := make([]Pass, 0, len(targets))
	var errs []error
	for _, t := range targets {
		dst, err := c.src.Surface(t)
		if err != nil {
			errs = append(errs, fmt.Errorf("render target %s: %w", t, err))
			continue
		}

		dst.Clear(c.clear)
		ordered := camera.Order(groups[t])
		for _, cam := range ordered {
			if p, ok := c.content[cam.Layer]; ok {
				p.Paint(dst)
			}
		}
		if err := dst.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("flush %s: %w", t, err))
		}
		passes = append(passes, Pass{Target: t, Order: ordered})
	}

	return passes, errors.Join(errs...)
}
