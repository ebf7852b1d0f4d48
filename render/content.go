package render

import (
	"image/color"

	"github.com/gogpu/gg/surface"
)

// Scene content colors per layer
var (
	ForegroundColor = color.RGBA{R: 255, A: 255}
	SceneColor      = color.RGBA{G: 255, A: 255}
	BackgroundColor = color.RGBA{B: 255, A: 255}
)

// Content maps render layers to the content drawn on them
// Layers without an entry draw nothing
type Content map[int]LayerPainter

// DefaultContent returns the startup scene:
// layer 1 a red panel over the left half, layer 2 a green square in the
// centre, layer 3 a full blue backdrop
func DefaultContent() Content {
	return Content{
		1: PainterFunc(func(dst surface.Surface) {
			fillRect(dst, 0, 0, float64(dst.Width())/2, float64(dst.Height()), ForegroundColor)
		}),
		2: PainterFunc(func(dst surface.Surface) {
			w, h := float64(dst.Width()), float64(dst.Height())
			side := min(w, h) / 3
			fillRect(dst, (w-side)/2, (h-side)/2, side, side, SceneColor)
		}),
		3: PainterFunc(func(dst surface.Surface) {
			fillRect(dst, 0, 0, float64(dst.Width()), float64(dst.Height()), BackgroundColor)
		}),
	}
}

func fillRect(dst surface.Surface, x, y, w, h float64, c color.Color) {
	p := surface.NewPath()
	p.Rectangle(x, y, w, h)
	dst.Fill(p, surface.DefaultFillStyle().WithColor(c))
}
