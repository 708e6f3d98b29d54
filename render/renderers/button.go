package renderers

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

// Logical sizes used by the button family.
const (
	focusInset      = 3
	toggleIndicator = 3
	checkBoxSize    = 16
	checkBoxGap     = 6
	checkMarkWidth  = 2
)

// ButtonRenderer draws a rounded face colored by state, a border, a dotted
// focus ring and the centered caption.
type ButtonRenderer struct{}

// Target implements render.Renderer.
func (ButtonRenderer) Target() *widget.Kind { return widget.KindButton }

// Render implements render.Renderer.
func (ButtonRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}
	drawButtonFace(pc, c.State(), r)
	drawCaption(pc, captionOf(c), r, foregroundKey(c))
}

func faceKey(s widget.State) string {
	switch {
	case s.Has(widget.StateDisabled):
		return theme.ControlColor
	case s.Has(widget.StatePressed), s.Has(widget.StateChecked):
		return theme.PressedColor
	case s.Has(widget.StateHovered):
		return theme.HoverColor
	}
	return theme.ControlColor
}

func drawButtonFace(pc *render.Context, s widget.State, r geom.Rect) {
	cv := pc.Canvas()
	radius := pc.Dp(pc.Theme().Metric(theme.CornerRadius, 4))
	bw := pc.Dp(pc.Theme().Metric(theme.BorderWidth, 1))

	face := geom.NewPath()
	face.RoundedRectangle(r.X, r.Y, r.W, r.H, radius)
	pc.Brush(faceKey(s)).Fill(cv, face)

	if bw > 0 && r.W > bw && r.H > bw {
		in := r.Inset(bw / 2)
		border := geom.NewPath()
		border.RoundedRectangle(in.X, in.Y, in.W, in.H, radius)
		pc.Brush(theme.BorderColor).Stroke(cv, border, bw, paint.StrokeSolid, paint.LineCapButt, paint.LineJoinMiter)
	}

	if s.Has(widget.StateFocused) {
		ring := r.Inset(pc.Dp(focusInset))
		if ring.Empty() {
			return
		}
		p := geom.NewPath()
		p.RoundedRectangle(ring.X, ring.Y, ring.W, ring.H, radius/2)
		pc.Brush(theme.HighlightColor).Stroke(cv, p, pc.Dp(1), paint.StrokeDotted, paint.LineCapRound, paint.LineJoinRound)
	}
}

// ToggleButtonRenderer draws a button with a HighlightColor bar along the
// bottom edge while checked.
type ToggleButtonRenderer struct{}

// Target implements render.Renderer.
func (ToggleButtonRenderer) Target() *widget.Kind { return widget.KindToggleButton }

// Render implements render.Renderer.
func (ToggleButtonRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}
	drawButtonFace(pc, c.State(), r)
	if checkedOf(c) {
		h := min(pc.Dp(toggleIndicator), r.H)
		pc.Brush(theme.HighlightColor).FillRect(pc.Canvas(), r.X, r.Bottom()-h, r.W, h)
	}
	drawCaption(pc, captionOf(c), r, foregroundKey(c))
}

// CheckBoxRenderer draws a square box at the left edge, a check mark when
// checked, and the caption to the right of the box.
type CheckBoxRenderer struct{}

// Target implements render.Renderer.
func (CheckBoxRenderer) Target() *widget.Kind { return widget.KindCheckBox }

// Render implements render.Renderer.
func (CheckBoxRenderer) Render(c widget.Control, pc *render.Context) {
	r, ok := deviceBounds(c, pc)
	if !ok {
		return
	}
	cv := pc.Canvas()
	size := min(pc.Dp(checkBoxSize), r.H, r.W)
	box := geom.XYWH(r.X, r.Y+(r.H-size)/2, size, size)
	bw := pc.Dp(pc.Theme().Metric(theme.BorderWidth, 1))

	checked := checkedOf(c)
	fill := theme.ControlColor
	if checked {
		fill = theme.HighlightColor
	}
	pc.Brush(fill).FillRect(cv, box.X, box.Y, box.W, box.H)

	if bw > 0 && size > bw {
		in := box.Inset(bw / 2)
		outline := geom.NewPath()
		outline.Rectangle(in.X, in.Y, in.W, in.H)
		pc.Brush(theme.BorderColor).Stroke(cv, outline, bw, paint.StrokeSolid, paint.LineCapButt, paint.LineJoinMiter)
	}

	if checked {
		mark := geom.NewPath()
		mark.MoveTo(box.X+size*0.22, box.Y+size*0.52)
		mark.LineTo(box.X+size*0.42, box.Y+size*0.72)
		mark.LineTo(box.X+size*0.78, box.Y+size*0.3)
		pc.Brush(theme.BackgroundColor).Stroke(cv, mark, pc.Dp(checkMarkWidth), paint.StrokeSolid, paint.LineCapRound, paint.LineJoinRound)
	}

	text := captionOf(c)
	if text == "" {
		return
	}
	fs := fontSize(pc)
	face := pc.Typeface()
	m := face.Metrics(fs)
	baseline := r.Y + (r.H+m.Ascent-m.Descent)/2
	drawTextAt(pc, face, text, box.Right()+pc.Dp(checkBoxGap), baseline, fs, foregroundKey(c))
}
