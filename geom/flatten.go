package geom

import "math"

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// DefaultTolerance is the flattening tolerance in device units.
const DefaultTolerance = 0.25

// maxCurveSegments bounds the subdivision of a single curve.
const maxCurveSegments = 256

// Flatten converts the path into polylines, replacing curves by line
// segments whose deviation from the curve stays near tolerance.
// Subpaths consisting of a lone MoveTo are kept as single-point polylines so
// that strokers can still draw caps for them.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var out []Polyline
	var cur *Polyline
	var last Point

	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, e := range p.elements {
		switch e.Verb {
		case VerbMoveTo:
			flush()
			cur = &Polyline{Points: []Point{e.Pts[0]}}
			last = e.Pts[0]
		case VerbLineTo:
			if cur == nil {
				cur = &Polyline{Points: []Point{last}}
			}
			cur.Points = append(cur.Points, e.Pts[0])
			last = e.Pts[0]
		case VerbQuadTo:
			if cur == nil {
				cur = &Polyline{Points: []Point{last}}
			}
			n := segmentsFor(last.Distance(e.Pts[0])+e.Pts[0].Distance(e.Pts[1]), tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, quadAt(last, e.Pts[0], e.Pts[1], float64(i)/float64(n)))
			}
			last = e.Pts[1]
		case VerbCubicTo:
			if cur == nil {
				cur = &Polyline{Points: []Point{last}}
			}
			n := segmentsFor(last.Distance(e.Pts[0])+e.Pts[0].Distance(e.Pts[1])+e.Pts[1].Distance(e.Pts[2]), tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, cubicAt(last, e.Pts[0], e.Pts[1], e.Pts[2], float64(i)/float64(n)))
			}
			last = e.Pts[2]
		case VerbClose:
			if cur != nil {
				cur.Closed = true
				last = cur.Points[0]
				flush()
			}
		}
	}
	flush()
	return out
}

// segmentsFor estimates the number of line segments for a curve whose control
// polygon has the given length.
func segmentsFor(length, tolerance float64) int {
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	switch {
	case n < 1:
		return 1
	case n > maxCurveSegments:
		return maxCurveSegments
	}
	return n
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
