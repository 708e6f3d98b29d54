package paint

import (
	"math"
	"sort"

	"github.com/gogpu/ui/geom"
)

// Shader computes a color per device position.
type Shader interface {
	ColorAt(x, y float64) Color
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color
}

// LinearGradient interpolates stops along the line from Start to End and
// pads with the edge colors beyond it.
type LinearGradient struct {
	Start, End geom.Point
	stops      []ColorStop
}

// NewLinearGradient creates a gradient. Stops are copied and sorted by
// offset.
func NewLinearGradient(start, end geom.Point, stops ...ColorStop) *LinearGradient {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return &LinearGradient{Start: start, End: end, stops: sorted}
}

// ColorAt implements Shader.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	switch len(g.stops) {
	case 0:
		return Transparent
	case 1:
		return g.stops[0].Color
	}

	d := g.End.Sub(g.Start)
	var t float64
	if l2 := d.Dot(d); l2 > 0 {
		t = geom.Pt(x, y).Sub(g.Start).Dot(d) / l2
	}
	t = math.Max(0, math.Min(1, t))

	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return a.Color.Lerp(b.Color, (t-a.Offset)/span)
		}
	}
	return g.stops[len(g.stops)-1].Color
}
