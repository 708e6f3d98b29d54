package render

import (
	"math"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/theme"
)

// Context is the state of one paint pass: the borrowed canvas, the
// logical-to-device scale, the current logical origin and the theme in
// effect. Clipping is delegated to the canvas.
//
// A Context is created per pass and must not be kept across frames.
type Context struct {
	canvas paint.Canvas
	scale  float64

	// origin is the device position of the current logical (0, 0).
	origin geom.Point
	theme  *theme.Theme
	stack  []frame
}

type frame struct {
	origin geom.Point
	theme  *theme.Theme
}

// ContextOption configures a Context during creation.
type ContextOption func(*contextOptions)

type contextOptions struct {
	theme  *theme.Theme
	origin geom.Point
}

// WithTheme sets the theme used by controls without an override.
// The default is theme.Light().
func WithTheme(t *theme.Theme) ContextOption {
	return func(o *contextOptions) {
		o.theme = t
	}
}

// WithOrigin places logical (0, 0) at the given device position.
func WithOrigin(x, y float64) ContextOption {
	return func(o *contextOptions) {
		o.origin = geom.Pt(x, y)
	}
}

// NewContext creates a paint context over canvas. scale converts logical
// units to device pixels; non-positive or non-finite values mean 1.
func NewContext(canvas paint.Canvas, scale float64, opts ...ContextOption) *Context {
	o := contextOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.theme == nil {
		o.theme = theme.Light()
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	return &Context{
		canvas: canvas,
		scale:  scale,
		origin: o.origin,
		theme:  o.theme,
	}
}

// Canvas returns the canvas being painted.
func (pc *Context) Canvas() paint.Canvas { return pc.canvas }

// Scale returns the logical-to-device factor.
func (pc *Context) Scale() float64 { return pc.scale }

// Dp converts a logical length to device pixels.
func (pc *Context) Dp(v float64) float64 { return v * pc.scale }

// DevicePoint converts a logical point to device space.
func (pc *Context) DevicePoint(p geom.Point) geom.Point {
	return geom.Pt(pc.origin.X+p.X*pc.scale, pc.origin.Y+p.Y*pc.scale)
}

// DeviceRect converts a logical rectangle to device space. Negative sizes
// are preserved so that renderers can detect them.
func (pc *Context) DeviceRect(r geom.Rect) geom.Rect {
	p := pc.DevicePoint(geom.Pt(r.X, r.Y))
	return geom.XYWH(p.X, p.Y, r.W*pc.scale, r.H*pc.scale)
}

// Theme returns the theme in effect.
func (pc *Context) Theme() *theme.Theme { return pc.theme }

// SetTheme replaces the theme until the matching Restore.
func (pc *Context) SetTheme(t *theme.Theme) {
	if t != nil {
		pc.theme = t
	}
}

// Typeface returns the theme's typeface.
func (pc *Context) Typeface() *text.Typeface { return pc.theme.Typeface() }

// Brush returns the theme brush for a color key.
func (pc *Context) Brush(key string) paint.Brush { return pc.theme.Brush(key) }

// Save pushes the origin, theme and canvas clip.
func (pc *Context) Save() {
	pc.stack = append(pc.stack, frame{origin: pc.origin, theme: pc.theme})
	pc.canvas.Save()
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are
// ignored.
func (pc *Context) Restore() {
	if len(pc.stack) == 0 {
		return
	}
	f := pc.stack[len(pc.stack)-1]
	pc.stack = pc.stack[:len(pc.stack)-1]
	pc.origin, pc.theme = f.origin, f.theme
	pc.canvas.Restore()
}

// Translate moves the logical origin by (dx, dy) logical units.
func (pc *Context) Translate(dx, dy float64) {
	pc.origin = pc.DevicePoint(geom.Pt(dx, dy))
}

// ClipRect intersects the canvas clip with the logical rectangle r.
func (pc *Context) ClipRect(r geom.Rect) {
	pc.canvas.ClipRect(pc.DeviceRect(r))
}
