package geom

import "math"

// Verb identifies the operation of a path element.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath at Pts[0].
	VerbMoveTo Verb = iota
	// VerbLineTo draws a line to Pts[0].
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier with control Pts[0] to Pts[1].
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier with controls Pts[0], Pts[1] to Pts[2].
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

var verbNames = [...]string{
	VerbMoveTo:  "MoveTo",
	VerbLineTo:  "LineTo",
	VerbQuadTo:  "QuadTo",
	VerbCubicTo: "CubicTo",
	VerbClose:   "Close",
}

// String returns the verb name.
func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "Unknown"
}

// Element is a single path operation.
type Element struct {
	Verb Verb
	Pts  [3]Point
}

// Path represents a vector path made of one or more subpaths.
type Path struct {
	elements []Element
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]Element, 0, 8)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, Element{Verb: VerbMoveTo, Pts: [3]Point{pt}})
	p.start, p.current = pt, pt
}

// LineTo draws a line to (x, y). Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, Element{Verb: VerbLineTo, Pts: [3]Point{pt}})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, Element{Verb: VerbQuadTo, Pts: [3]Point{Pt(cx, cy), pt}})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, Element{Verb: VerbCubicTo, Pts: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), pt}})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Element{Verb: VerbClose})
	p.current = p.start
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []Element {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of all points, control points included.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range p.elements {
		for _, pt := range e.Pts[:e.Verb.points()] {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return LTRB(minX, minY, maxX, maxY)
}

// Transform returns a new path with every point transformed by m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]Element, len(p.elements))}
	for i, e := range p.elements {
		for j := 0; j < e.Verb.points(); j++ {
			e.Pts[j] = m.TransformPoint(e.Pts[j])
		}
		out.elements[i] = e
	}
	out.start = m.TransformPoint(p.start)
	out.current = m.TransformPoint(p.current)
	return out
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{elements: make([]Element, len(p.elements)), start: p.start, current: p.current}
	copy(out.elements, p.elements)
	return out
}

func (v Verb) points() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// circleK is 4/3 * (sqrt(2) - 1), the cubic Bezier circle constant.
const circleK = 0.5522847498307936

// Ellipse adds a closed ellipse subpath.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox, oy := rx*circleK, ry*circleK
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a closed circle subpath.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// RoundedRectangle adds a rectangle with corners of radius r.
// The radius is clamped to half of the smaller side.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	o := r * (1 - circleK)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-o, y, x+w, y+o, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-o, x+w-o, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+o, y+h, x, y+h-o, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+o, x+o, y, x+r, y)
	p.Close()
}
