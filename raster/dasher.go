package raster

import (
	"math"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
)

// dashPolyline splits l into the "on" intervals of d. Zero-length intervals
// produce single-point pieces carrying the direction of the segment they
// fall on, so caps can still turn them into dots.
func dashPolyline(l geom.Polyline, d *paint.Dash) []piece {
	iv := d.Intervals()
	period := d.PatternLength()
	if len(iv) == 0 || !(period > 0) || len(l.Points) == 0 {
		return nil
	}

	pts := l.Points
	if l.Closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	i, rem, on := 0, iv[0], true
	off := math.Mod(d.Offset, period)
	if off < 0 {
		off += period
	}
	for off > 0 {
		if off >= rem {
			off -= rem
			i = (i + 1) % len(iv)
			rem, on = iv[i], !on
		} else {
			rem -= off
			off = 0
		}
	}

	var out []piece
	var cur *piece
	if on {
		cur = &piece{}
		cur.add(pts[0])
	}

	for k := 0; k+1 < len(pts); k++ {
		a, b := pts[k], pts[k+1]
		seg := b.Sub(a)
		length := seg.Length()
		if length == 0 {
			continue
		}
		dir := seg.Mul(1 / length)

		pos := 0.0
		for {
			for rem <= 0 {
				at := a.Add(dir.Mul(pos))
				if on {
					cur.add(at)
					cur.tangent = dir
					out = append(out, *cur)
					cur = nil
				} else {
					cur = &piece{tangent: dir}
					cur.add(at)
				}
				on = !on
				i = (i + 1) % len(iv)
				rem = iv[i]
			}
			if pos >= length {
				break
			}
			step := math.Min(rem, length-pos)
			pos += step
			rem -= step
		}
		if on {
			cur.add(b)
			cur.tangent = dir
		}
	}

	// A dash that would start exactly at the end has no extent.
	if on && cur != nil && len(cur.pts) > 1 {
		out = append(out, *cur)
	}
	return out
}
