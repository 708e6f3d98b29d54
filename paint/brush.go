package paint

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/text"
)

// Brush is a paint strategy: it knows how to fill, stroke and draw text
// with its own color rules. Brushes are immutable values and may be shared
// freely.
type Brush interface {
	// Fill fills path with antialiasing.
	Fill(c Canvas, path *geom.Path)
	// FillRect fills the rectangle (x, y, w, h). Empty rectangles draw nothing.
	FillRect(c Canvas, x, y, w, h float64)
	// Stroke outlines path. style selects a dash pattern derived from width;
	// cap and join are passed through unchanged.
	Stroke(c Canvas, path *geom.Path, width float64, style StrokeStyle, cap LineCap, join LineJoin)
	// Text draws s left-aligned with its baseline on the bottom edge of
	// frame.
	Text(c Canvas, s string, frame geom.Rect, face *text.Typeface, size float64, dec Decoration)
}

// SolidBrush paints with a single color.
type SolidBrush struct {
	Color Color
}

// Solid creates a SolidBrush.
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

func (b SolidBrush) apply(p *Paint) { p.Color = b.Color }

// Fill implements Brush.
func (b SolidBrush) Fill(c Canvas, path *geom.Path) { fill(c, path, b.apply) }

// FillRect implements Brush.
func (b SolidBrush) FillRect(c Canvas, x, y, w, h float64) { fillRect(c, x, y, w, h, b.apply) }

// Stroke implements Brush.
func (b SolidBrush) Stroke(c Canvas, path *geom.Path, width float64, style StrokeStyle, lc LineCap, lj LineJoin) {
	stroke(c, path, width, style, lc, lj, b.apply)
}

// Text implements Brush.
func (b SolidBrush) Text(c Canvas, s string, frame geom.Rect, face *text.Typeface, size float64, dec Decoration) {
	drawText(c, s, frame, face, size, dec, b.apply)
}

// GradientBrush paints with a Shader, typically a *LinearGradient.
type GradientBrush struct {
	Shader Shader
}

// Gradient creates a brush from a shader.
func Gradient(s Shader) GradientBrush {
	return GradientBrush{Shader: s}
}

func (b GradientBrush) apply(p *Paint) { p.Shader = b.Shader }

// Fill implements Brush.
func (b GradientBrush) Fill(c Canvas, path *geom.Path) { fill(c, path, b.apply) }

// FillRect implements Brush.
func (b GradientBrush) FillRect(c Canvas, x, y, w, h float64) { fillRect(c, x, y, w, h, b.apply) }

// Stroke implements Brush.
func (b GradientBrush) Stroke(c Canvas, path *geom.Path, width float64, style StrokeStyle, lc LineCap, lj LineJoin) {
	stroke(c, path, width, style, lc, lj, b.apply)
}

// Text implements Brush.
func (b GradientBrush) Text(c Canvas, s string, frame geom.Rect, face *text.Typeface, size float64, dec Decoration) {
	drawText(c, s, frame, face, size, dec, b.apply)
}

// The helpers below own the Paint for exactly one canvas call.

func fill(c Canvas, path *geom.Path, apply func(*Paint)) {
	if path.IsEmpty() {
		return
	}
	p := AcquirePaint()
	defer p.Release()
	apply(p)
	p.Style = StyleFill
	c.DrawPath(path, p)
}

func fillRect(c Canvas, x, y, w, h float64, apply func(*Paint)) {
	r := geom.XYWH(x, y, w, h)
	if r.Empty() {
		return
	}
	p := AcquirePaint()
	defer p.Release()
	apply(p)
	p.Style = StyleFill
	c.DrawRect(r, p)
}

func stroke(c Canvas, path *geom.Path, width float64, style StrokeStyle, lc LineCap, lj LineJoin, apply func(*Paint)) {
	if path.IsEmpty() || !(width > 0) {
		return
	}
	p := AcquirePaint()
	defer p.Release()
	apply(p)
	p.Style = StyleStroke
	p.StrokeWidth = width
	p.Cap = lc
	p.Join = lj
	p.Dash = DashFor(style, width)
	c.DrawPath(path, p)
}

func drawText(c Canvas, s string, frame geom.Rect, face *text.Typeface, size float64, dec Decoration, apply func(*Paint)) {
	if s == "" {
		return
	}
	p := AcquirePaint()
	defer p.Release()
	apply(p)
	p.Style = StyleFill
	p.Typeface = face
	p.TextSize = size
	dec.apply(p)
	c.DrawText(s, frame.Left(), frame.Bottom(), p)
}
