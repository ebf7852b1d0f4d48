// Package render composites camera layers onto their output surfaces
package render

import (
	"github.com/gogpu/gg/surface"

	"github.com/lixenwraith/layercam/window"
)

// LayerPainter draws the content bound to one render layer
type LayerPainter interface {
	Paint(dst surface.Surface)
}

// PainterFunc adapts a function to LayerPainter
type PainterFunc func(dst surface.Surface)

// Paint calls f(dst)
func (f PainterFunc) Paint(dst surface.Surface) { f(dst) }

// SurfaceSource resolves camera targets to drawable surfaces
// window.Headless satisfies it
type SurfaceSource interface {
	Surface(t window.Target) (*surface.ImageSurface, error)
}
