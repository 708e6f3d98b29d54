package renderers

import (
	"math"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

// SplitterHandle is the thickness of the splitter handle in logical units.
const SplitterHandle = 35

// SplitterRenderer fills the splitter handle with HighlightColor.
type SplitterRenderer struct{}

// Target implements render.Renderer.
func (SplitterRenderer) Target() *widget.Kind { return widget.KindSplitter }

// Render implements render.Renderer.
func (SplitterRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}
	h := HandleRect(r, orientationOf(c), pc.Dp(SplitterHandle))
	pc.Brush(theme.HighlightColor).FillRect(pc.Canvas(), h.X, h.Y, h.W, h.H)
}

// HandleRect returns the handle of a splitter occupying r. The handle is
// thickness wide across the main axis, clamped to the cross-axis extent,
// centered on the cross axis and spanning the whole main axis: full width
// for Horizontal, full height for Vertical.
func HandleRect(r geom.Rect, o widget.Orientation, thickness float64) geom.Rect {
	if o == widget.Vertical {
		t := math.Min(thickness, r.W)
		return geom.XYWH(r.X+(r.W-t)/2, r.Y, t, r.H)
	}
	t := math.Min(thickness, r.H)
	return geom.XYWH(r.X, r.Y+(r.H-t)/2, r.W, t)
}
