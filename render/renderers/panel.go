package renderers

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

// PanelRenderer fills the panel background and strokes its border.
// Controls that reach it through kind fallback but are not a
// *widget.Panel get BackgroundColor and no border.
type PanelRenderer struct{}

// Target implements render.Renderer.
func (PanelRenderer) Target() *widget.Kind { return widget.KindPanel }

// Render implements render.Renderer.
func (PanelRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}

	bg, border, style := theme.BackgroundColor, false, paint.StrokeSolid
	if p, ok := c.(*widget.Panel); ok {
		bg, border, style = p.Background, p.Border, p.BorderStyle
	}
	if bg != "" {
		pc.Brush(bg).FillRect(pc.Canvas(), r.X, r.Y, r.W, r.H)
	}
	if !border {
		return
	}

	bw := pc.Dp(pc.Theme().Metric(theme.BorderWidth, 1))
	if bw*2 >= r.W || bw*2 >= r.H {
		return
	}
	outline := geom.NewPath()
	in := r.Inset(bw / 2)
	outline.Rectangle(in.X, in.Y, in.W, in.H)
	pc.Brush(theme.BorderColor).Stroke(pc.Canvas(), outline, bw, style, borderCap(style), paint.LineJoinMiter)
}

// borderCap returns the cap that keeps zero-length dots visible.
func borderCap(style paint.StrokeStyle) paint.LineCap {
	if style == paint.StrokeDotted {
		return paint.LineCapRound
	}
	return paint.LineCapButt
}
