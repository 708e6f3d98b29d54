package renderers

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

// LabelRenderer draws the label text left-aligned with its baseline one
// descent above the bottom edge.
type LabelRenderer struct{}

// Target implements render.Renderer.
func (LabelRenderer) Target() *widget.Kind { return widget.KindLabel }

// Render implements render.Renderer.
func (LabelRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}
	s := captionOf(c)
	if s == "" {
		return
	}

	key := foregroundKey(c)
	l, isLabel := c.(*widget.Label)
	if isLabel && l.Color != "" && key != theme.DisabledColor {
		key = l.Color
	}

	face := pc.Typeface()
	size := fontSize(pc)
	baseline := r.Bottom() - face.Metrics(size).Descent
	frame := geom.LTRB(r.X, baseline-size, r.Right(), baseline)

	pc.Canvas().Save()
	defer pc.Canvas().Restore()
	pc.Canvas().ClipRect(r)
	if isLabel {
		pc.Brush(key).Text(pc.Canvas(), s, frame, face, size, l.Decoration)
		return
	}
	pc.Brush(key).Text(pc.Canvas(), s, frame, face, size, 0)
}
