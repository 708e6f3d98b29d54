package raster

import (
	"math"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/text"
)

// Decoration geometry relative to the text size.
const (
	fakeBoldRatio      = 1.0 / 24
	underlineOffset    = 0.12
	strikeOffset       = 0.28
	decorationMinWidth = 1.0
	decorationRatio    = 1.0 / 16
)

// DrawText implements paint.Canvas. Glyph outlines are filled; SkewX
// shears them around the baseline, FlagFakeBold additionally strokes the
// outlines, and the underline and strike-through flags add rules spanning
// the measured advance.
func (c *Canvas) DrawText(s string, x, y float64, p *paint.Paint) {
	if s == "" || !(p.TextSize > 0) {
		return
	}
	face := p.Typeface
	if face == nil {
		face = text.Default()
	}

	m := geom.Identity()
	if p.SkewX != 0 {
		m = geom.Shear(-p.SkewX, 0)
	}
	outline := face.RunPath(s, p.TextSize, x, y, m)
	if !outline.IsEmpty() {
		c.DrawPath(outline, withStyle(p, paint.StyleFill))
		if p.Flags.Has(paint.FlagFakeBold) {
			bold := *p
			bold.Style = paint.StyleStroke
			bold.StrokeWidth = p.TextSize * fakeBoldRatio
			bold.Join = paint.LineJoinRound
			bold.Dash = nil
			c.DrawPath(outline, &bold)
		}
	}

	if !p.Flags.Has(paint.FlagUnderline) && !p.Flags.Has(paint.FlagStrikeThrough) {
		return
	}
	width := face.Measure(s, p.TextSize)
	thick := math.Max(decorationMinWidth, p.TextSize*decorationRatio)
	rule := withStyle(p, paint.StyleFill)
	if p.Flags.Has(paint.FlagUnderline) {
		c.DrawRect(geom.XYWH(x, y+p.TextSize*underlineOffset, width, thick), rule)
	}
	if p.Flags.Has(paint.FlagStrikeThrough) {
		c.DrawRect(geom.XYWH(x, y-p.TextSize*strikeOffset-thick/2, width, thick), rule)
	}
}

// withStyle returns p itself when it already has style st, or a copy.
func withStyle(p *paint.Paint, st paint.Style) *paint.Paint {
	if p.Style == st {
		return p
	}
	cp := *p
	cp.Style = st
	return &cp
}
