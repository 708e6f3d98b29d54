package marker

import (
	"math"

	"github.com/gogpu/ui/geom"
)

// TileSize is the width of a zoom-0 world in logical pixels.
const TileSize = 256

// Viewport is the visible part of the map: the geographic center, the zoom
// level and the size of the view in logical pixels.
type Viewport struct {
	Center LatLng
	Zoom   float64
	Width  float64
	Height float64
}

// WorldSize returns the width of the whole world at the viewport's zoom,
// in logical pixels.
func (v Viewport) WorldSize() float64 {
	return TileSize * math.Exp2(v.Zoom)
}

// ToView converts ll to logical view coordinates, origin at the top-left
// corner of the view.
func (v Viewport) ToView(ll LatLng) geom.Point {
	ws := v.WorldSize()
	p := Project(ll).Mul(ws)
	c := Project(v.Center).Mul(ws)
	return geom.Pt(p.X-c.X+v.Width/2, p.Y-c.Y+v.Height/2)
}

// FromView converts logical view coordinates back to a position.
func (v Viewport) FromView(p geom.Point) LatLng {
	ws := v.WorldSize()
	c := Project(v.Center).Mul(ws)
	w := geom.Pt(p.X+c.X-v.Width/2, p.Y+c.Y-v.Height/2)
	return Unproject(w.Mul(1 / ws))
}

// MetersPerPixel returns the ground resolution at the view center.
func (v Viewport) MetersPerPixel() float64 {
	return MetersPerPixel(v.Center.Lat, v.WorldSize())
}

// Rect returns the view rectangle in logical coordinates.
func (v Viewport) Rect() geom.Rect {
	return geom.XYWH(0, 0, v.Width, v.Height)
}
