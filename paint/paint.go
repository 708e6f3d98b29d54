package paint

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/ui/text"
)

// Style selects whether geometry is filled or stroked.
type Style int

const (
	// StyleFill fills the interior of the geometry.
	StyleFill Style = iota
	// StyleStroke outlines the geometry with the paint's stroke settings.
	StyleStroke
)

// Flags are boolean paint options.
type Flags uint8

const (
	// FlagAntialias enables anti-aliased edges.
	FlagAntialias Flags = 1 << iota
	// FlagFakeBold emboldens glyph outlines synthetically.
	FlagFakeBold
	// FlagUnderline draws a line under text runs.
	FlagUnderline
	// FlagStrikeThrough draws a line through text runs.
	FlagStrikeThrough
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Paint is the per-call drawing description handed to a Canvas: color or
// shader, fill/stroke geometry settings, and text settings.
//
// Paints are pooled. Acquire one with AcquirePaint and Release it when the
// draw call returns; a canvas must not retain a *Paint past the call.
type Paint struct {
	Color Color
	// Shader, when set, overrides Color with a per-pixel color.
	Shader Shader

	Style       Style
	StrokeWidth float64
	Cap         LineCap
	Join        LineJoin
	MiterLimit  float64
	// Dash is nil for solid strokes.
	Dash *Dash

	Typeface *text.Typeface
	TextSize float64
	// SkewX leans glyphs horizontally; positive values lean tops right.
	SkewX float64

	Flags Flags
}

// reset restores the defaults: opaque black antialiased 1px fill.
func (p *Paint) reset() {
	*p = Paint{
		Color:       Black,
		StrokeWidth: 1,
		MiterLimit:  4,
		TextSize:    12,
		Flags:       FlagAntialias,
	}
}

// ColorAt returns the paint color at device position (x, y).
func (p *Paint) ColorAt(x, y float64) Color {
	if p.Shader != nil {
		return p.Shader.ColorAt(x, y)
	}
	return p.Color
}

var (
	paintPool = sync.Pool{New: func() any { return new(Paint) }}
	livePaint atomic.Int64
)

// AcquirePaint returns a Paint reset to its defaults.
// The caller owns it until Release.
func AcquirePaint() *Paint {
	p := paintPool.Get().(*Paint)
	p.reset()
	livePaint.Add(1)
	return p
}

// Release returns p to the pool. p must not be used afterwards.
func (p *Paint) Release() {
	p.Shader = nil
	p.Dash = nil
	p.Typeface = nil
	livePaint.Add(-1)
	paintPool.Put(p)
}

// LivePaints reports how many acquired paints have not been released yet.
// It exists for leak checks in tests and diagnostics.
func LivePaints() int64 {
	return livePaint.Load()
}
