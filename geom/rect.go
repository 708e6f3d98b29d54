package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle given by its origin and size.
// A rectangle with a non-positive width or height is empty.
type Rect struct {
	X, Y, W, H float64
}

// XYWH creates a Rect from its origin and size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// LTRB creates a Rect from its edges.
func LTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Left returns the minimum X.
func (r Rect) Left() float64 { return r.X }

// Top returns the minimum Y.
func (r Rect) Top() float64 { return r.Y }

// Right returns the maximum X.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the maximum Y.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle covers no area.
// NaN sizes are treated as empty.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Contains reports whether p lies inside r (right/bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale returns r with origin and size multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, W: r.W * s, H: r.H * s}
}

// Inset returns r shrunk by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Intersect returns the largest rectangle contained in both r and s.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	l := math.Max(r.X, s.X)
	t := math.Max(r.Y, s.Y)
	rt := math.Min(r.Right(), s.Right())
	b := math.Min(r.Bottom(), s.Bottom())
	if rt <= l || b <= t {
		return Rect{}
	}
	return LTRB(l, t, rt, b)
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return LTRB(
		math.Min(r.X, s.X), math.Min(r.Y, s.Y),
		math.Max(r.Right(), s.Right()), math.Max(r.Bottom(), s.Bottom()),
	)
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
