package renderers

import (
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

type valued interface{ Value() float64 }

// ProgressBarRenderer fills the track with TrackColor and the completed
// fraction with HighlightColor, left to right for Horizontal bars and
// bottom to top for Vertical ones.
type ProgressBarRenderer struct{}

// Target implements render.Renderer.
func (ProgressBarRenderer) Target() *widget.Kind { return widget.KindProgressBar }

// Render implements render.Renderer.
func (ProgressBarRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}
	cv := pc.Canvas()
	pc.Brush(theme.TrackColor).FillRect(cv, r.X, r.Y, r.W, r.H)

	v := 0.0
	if vc, ok := c.(valued); ok {
		v = min(max(vc.Value(), 0), 1)
	}
	if v == 0 {
		return
	}

	bar := pc.Brush(theme.HighlightColor)
	if c.State().Has(widget.StateDisabled) {
		bar = pc.Brush(theme.DisabledColor)
	}
	if orientationOf(c) == widget.Vertical {
		h := r.H * v
		bar.FillRect(cv, r.X, r.Bottom()-h, r.W, h)
		return
	}
	bar.FillRect(cv, r.X, r.Y, r.W*v, r.H)
}
