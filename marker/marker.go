package marker

import (
	"math"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/text"
)

// Frame is what a marker needs to draw itself: the canvas, the viewport
// and the logical-to-device scale.
type Frame struct {
	Canvas paint.Canvas
	View   Viewport
	Scale  float64
}

// Device converts a position to device coordinates.
func (f Frame) Device(ll LatLng) geom.Point {
	return f.View.ToView(ll).Mul(f.Scale)
}

// Marker is a symbol anchored at a geographic position.
type Marker interface {
	// Position returns the anchor.
	Position() LatLng
	// Z orders markers; higher values draw on top.
	Z() int
	// Bounds returns the device rectangle the marker may touch.
	Bounds(f Frame) geom.Rect
	// Draw paints the marker.
	Draw(f Frame)
}

// Pin is a teardrop whose tip sits on the position.
type Pin struct {
	At LatLng
	// Height is the pin height in logical pixels; 0 means 32.
	Height float64
	Fill   paint.Brush
	// Outline and Dot are optional.
	Outline paint.Brush
	Dot     paint.Brush
	ZIndex  int
}

const defaultPinHeight = 32

// Position implements Marker.
func (p *Pin) Position() LatLng { return p.At }

// Z implements Marker.
func (p *Pin) Z() int { return p.ZIndex }

func (p *Pin) geometry(f Frame) (tip geom.Point, head geom.Point, r float64) {
	h := p.Height
	if !(h > 0) {
		h = defaultPinHeight
	}
	h *= f.Scale
	tip = f.Device(p.At)
	r = h * 0.32
	head = geom.Pt(tip.X, tip.Y-h+r)
	return tip, head, r
}

// Bounds implements Marker.
func (p *Pin) Bounds(f Frame) geom.Rect {
	tip, head, r := p.geometry(f)
	return geom.LTRB(head.X-r, head.Y-r, head.X+r, tip.Y)
}

// Draw implements Marker.
func (p *Pin) Draw(f Frame) {
	if p.Fill == nil {
		return
	}
	tip, head, r := p.geometry(f)

	// Both subpaths wind the same way so their overlap stays filled.
	path := geom.NewPath()
	path.Circle(head.X, head.Y, r)
	k := r * 0.8
	path.MoveTo(tip.X, tip.Y)
	path.LineTo(head.X-k, head.Y+r*0.6)
	path.LineTo(head.X+k, head.Y+r*0.6)
	path.Close()
	p.Fill.Fill(f.Canvas, path)

	if p.Outline != nil {
		p.Outline.Stroke(f.Canvas, path, f.Scale, paint.StrokeSolid, paint.LineCapRound, paint.LineJoinRound)
	}
	if p.Dot != nil {
		dot := geom.NewPath()
		dot.Circle(head.X, head.Y, r*0.4)
		p.Dot.Fill(f.Canvas, dot)
	}
}

// Circle is a ground circle with a radius in meters, so it grows and
// shrinks with the zoom level.
type Circle struct {
	Center       LatLng
	RadiusMeters float64
	// Fill and Stroke are optional.
	Fill        paint.Brush
	Stroke      paint.Brush
	StrokeWidth float64
	StrokeStyle paint.StrokeStyle
	ZIndex      int
}

// Position implements Marker.
func (c *Circle) Position() LatLng { return c.Center }

// Z implements Marker.
func (c *Circle) Z() int { return c.ZIndex }

// Radius returns the device radius in f.
func (c *Circle) Radius(f Frame) float64 {
	if !(c.RadiusMeters > 0) {
		return 0
	}
	return c.RadiusMeters / MetersPerPixel(c.Center.Lat, f.View.WorldSize()) * f.Scale
}

// Bounds implements Marker.
func (c *Circle) Bounds(f Frame) geom.Rect {
	at := f.Device(c.Center)
	r := c.Radius(f) + c.StrokeWidth*f.Scale/2
	return geom.LTRB(at.X-r, at.Y-r, at.X+r, at.Y+r)
}

// Draw implements Marker.
func (c *Circle) Draw(f Frame) {
	r := c.Radius(f)
	if r <= 0 || math.IsInf(r, 0) {
		return
	}
	at := f.Device(c.Center)
	path := geom.NewPath()
	path.Circle(at.X, at.Y, r)
	if c.Fill != nil {
		c.Fill.Fill(f.Canvas, path)
	}
	if c.Stroke != nil && c.StrokeWidth > 0 {
		c.Stroke.Stroke(f.Canvas, path, c.StrokeWidth*f.Scale, c.StrokeStyle, paint.LineCapRound, paint.LineJoinRound)
	}
}

// Label is a text run whose baseline starts at the position plus Offset.
type Label struct {
	At   LatLng
	Text string
	// Offset is in logical pixels.
	Offset     geom.Point
	Brush      paint.Brush
	Typeface   *text.Typeface
	Size       float64
	Decoration paint.Decoration
	ZIndex     int
}

// Position implements Marker.
func (l *Label) Position() LatLng { return l.At }

// Z implements Marker.
func (l *Label) Z() int { return l.ZIndex }

func (l *Label) face() *text.Typeface {
	if l.Typeface == nil {
		return text.Default()
	}
	return l.Typeface
}

func (l *Label) size(f Frame) float64 {
	s := l.Size
	if !(s > 0) {
		s = 12
	}
	return s * f.Scale
}

// Bounds implements Marker.
func (l *Label) Bounds(f Frame) geom.Rect {
	size := l.size(f)
	at := f.Device(l.At).Add(l.Offset.Mul(f.Scale))
	w := l.face().Measure(l.Text, size)
	m := l.face().Metrics(size)
	return geom.LTRB(at.X, at.Y-m.Ascent, at.X+w, at.Y+m.Descent)
}

// Draw implements Marker.
func (l *Label) Draw(f Frame) {
	if l.Brush == nil || l.Text == "" {
		return
	}
	size := l.size(f)
	at := f.Device(l.At).Add(l.Offset.Mul(f.Scale))
	w := l.face().Measure(l.Text, size)
	l.Brush.Text(f.Canvas, l.Text, geom.LTRB(at.X, at.Y-size, at.X+w, at.Y), l.face(), size, l.Decoration)
}
