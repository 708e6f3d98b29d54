package raster

import (
	"math"
	"slices"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
)

// piece is an open or closed run of points to be stroked. tangent orients
// the caps of single-point pieces, which arise from zero-length dashes.
type piece struct {
	pts     []geom.Point
	closed  bool
	tangent geom.Point
}

func (pc *piece) add(pt geom.Point) {
	if n := len(pc.pts); n > 0 && pc.pts[n-1] == pt {
		return
	}
	pc.pts = append(pc.pts, pt)
}

// strokePolylines expands polylines into polygons covering the stroke
// described by p. All polygons share one winding so that overlaps between
// segments, joins and caps accumulate instead of cancelling.
func strokePolylines(lines []geom.Polyline, p *paint.Paint) [][]geom.Point {
	hw := p.StrokeWidth / 2
	if !(hw > 0) {
		return nil
	}

	var pieces []piece
	for _, l := range lines {
		if p.Dash != nil {
			pieces = append(pieces, dashPolyline(l, p.Dash)...)
			continue
		}
		pc := piece{closed: l.Closed}
		for _, pt := range l.Points {
			pc.add(pt)
		}
		if pc.closed && len(pc.pts) > 1 && pc.pts[0] == pc.pts[len(pc.pts)-1] {
			pc.pts = pc.pts[:len(pc.pts)-1]
		}
		pieces = append(pieces, pc)
	}

	s := stroker{hw: hw, cap: p.Cap, join: p.Join, miterLimit: p.MiterLimit}
	for _, pc := range pieces {
		s.piece(pc)
	}
	return s.out
}

type stroker struct {
	hw         float64
	cap        paint.LineCap
	join       paint.LineJoin
	miterLimit float64
	out        [][]geom.Point
}

func (s *stroker) emit(poly []geom.Point) {
	if signedArea(poly) < 0 {
		slices.Reverse(poly)
	}
	s.out = append(s.out, poly)
}

func (s *stroker) piece(pc piece) {
	pts := pc.pts
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		s.dot(pts[0], pc.tangent)
		return
	case pc.closed && len(pts) == 2:
		pc.closed = false
	}

	n := len(pts)
	segs := n - 1
	if pc.closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		s.segment(pts[i], pts[(i+1)%n])
	}

	if pc.closed {
		for i := 0; i < n; i++ {
			prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			s.joint(cur, cur.Sub(prev).Normalize(), next.Sub(cur).Normalize())
		}
		return
	}
	for i := 1; i < n-1; i++ {
		s.joint(pts[i], pts[i].Sub(pts[i-1]).Normalize(), pts[i+1].Sub(pts[i]).Normalize())
	}
	s.capAt(pts[0], pts[0].Sub(pts[1]).Normalize())
	s.capAt(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize())
}

func (s *stroker) segment(a, b geom.Point) {
	d := b.Sub(a).Normalize()
	nrm := d.Perp().Mul(s.hw)
	s.emit([]geom.Point{a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm)})
}

// joint fills the wedge on the outside of the turn at v from direction d0
// to direction d1.
func (s *stroker) joint(v, d0, d1 geom.Point) {
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-9 && d0.Dot(d1) > 0 {
		return
	}
	if s.join == paint.LineJoinRound {
		s.emit(circle(v, s.hw))
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := d0.Perp().Mul(s.hw * side)
	n1 := d1.Perp().Mul(s.hw * side)

	if s.join == paint.LineJoinMiter {
		mid := n0.Add(n1)
		if l := mid.Length(); l > 1e-9 {
			// cos of half the turn angle.
			cosHalf := l / (2 * s.hw)
			if cosHalf > 0 && 1/cosHalf <= s.miterLimit {
				tip := v.Add(mid.Mul(s.hw / cosHalf / l))
				s.emit([]geom.Point{v, v.Add(n0), tip, v.Add(n1)})
				return
			}
		}
	}
	s.emit([]geom.Point{v, v.Add(n0), v.Add(n1)})
}

// capAt adds the cap at endpoint e whose outward direction is d.
func (s *stroker) capAt(e, d geom.Point) {
	switch s.cap {
	case paint.LineCapRound:
		s.emit(circle(e, s.hw))
	case paint.LineCapSquare:
		nrm := d.Perp().Mul(s.hw)
		ext := d.Mul(s.hw)
		s.emit([]geom.Point{e.Add(nrm), e.Add(nrm).Add(ext), e.Sub(nrm).Add(ext), e.Sub(nrm)})
	}
}

// dot draws the caps of a zero-length piece. Butt caps draw nothing.
func (s *stroker) dot(c, tangent geom.Point) {
	switch s.cap {
	case paint.LineCapRound:
		s.emit(circle(c, s.hw))
	case paint.LineCapSquare:
		d := tangent.Normalize()
		if d == (geom.Point{}) {
			d = geom.Pt(1, 0)
		}
		nrm := d.Perp().Mul(s.hw)
		ext := d.Mul(s.hw)
		s.emit([]geom.Point{
			c.Add(nrm).Sub(ext),
			c.Add(nrm).Add(ext),
			c.Sub(nrm).Add(ext),
			c.Sub(nrm).Sub(ext),
		})
	}
}

func circle(c geom.Point, r float64) []geom.Point {
	n := int(math.Ceil(r * 2))
	n = min(max(n, 12), 96)
	pts := make([]geom.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

func signedArea(pts []geom.Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
