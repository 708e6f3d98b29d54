// Package marker draws map markers on top of a slippy-map viewport.
//
// Markers are simple consumers of the brush and canvas layer: a Viewport
// projects geographic positions to device space with the spherical
// Mercator projection, and an Overlay draws its markers in z order,
// skipping those that fall outside the canvas.
package marker

import (
	"fmt"
	"math"

	"github.com/gogpu/ui/geom"
)

// MaxLatitude is the latitude limit of the square Mercator world.
const MaxLatitude = 85.05112878

// EarthRadius is the WGS84 equatorial radius in meters.
const EarthRadius = 6378137.0

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat, Lng float64
}

// String returns the position as "lat,lng".
func (ll LatLng) String() string {
	return fmt.Sprintf("%.6f,%.6f", ll.Lat, ll.Lng)
}

// Project maps ll to normalized world coordinates: x and y in [0, 1], with
// (0, 0) at the north-west corner. Latitudes are clamped to ±MaxLatitude.
func Project(ll LatLng) geom.Point {
	lat := math.Max(-MaxLatitude, math.Min(MaxLatitude, ll.Lat))
	sin := math.Sin(lat * math.Pi / 180)
	x := (ll.Lng + 180) / 360
	y := 0.5 - math.Log((1+sin)/(1-sin))/(4*math.Pi)
	return geom.Pt(x, y)
}

// Unproject is the inverse of Project.
func Unproject(p geom.Point) LatLng {
	lng := p.X*360 - 180
	n := math.Pi - 2*math.Pi*p.Y
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return LatLng{Lat: lat, Lng: lng}
}

// MetersPerPixel returns the ground resolution at latitude lat for a world
// that is worldSize pixels wide.
func MetersPerPixel(lat, worldSize float64) float64 {
	return math.Cos(lat*math.Pi/180) * 2 * math.Pi * EarthRadius / worldSize
}
