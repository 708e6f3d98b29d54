package marker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/raster"
	"github.com/gogpu/ui/recording"
)

func TestProject(t *testing.T) {
	tests := []struct {
		ll   LatLng
		want geom.Point
	}{
		{LatLng{0, 0}, geom.Pt(0.5, 0.5)},
		{LatLng{0, -180}, geom.Pt(0, 0.5)},
		{LatLng{MaxLatitude, 180}, geom.Pt(1, 0)},
		{LatLng{-90, 0}, geom.Pt(0.5, 1)},
	}
	for _, tt := range tests {
		got := Project(tt.ll)
		assert.InDelta(t, tt.want.X, got.X, 1e-6, tt.ll.String())
		assert.InDelta(t, tt.want.Y, got.Y, 1e-6, tt.ll.String())
	}
}

func TestUnproject_RoundTrip(t *testing.T) {
	for _, ll := range []LatLng{{52.52, 13.405}, {-33.8688, 151.2093}, {0, 0}, {64.1466, -21.9426}} {
		got := Unproject(Project(ll))
		assert.InDelta(t, ll.Lat, got.Lat, 1e-9)
		assert.InDelta(t, ll.Lng, got.Lng, 1e-9)
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{Center: LatLng{48.8566, 2.3522}, Zoom: 10, Width: 800, Height: 600}

	c := v.ToView(v.Center)
	assert.InDelta(t, 400, c.X, 1e-9)
	assert.InDelta(t, 300, c.Y, 1e-9)

	back := v.FromView(geom.Pt(123, 456))
	p := v.ToView(back)
	assert.InDelta(t, 123, p.X, 1e-6)
	assert.InDelta(t, 456, p.Y, 1e-6)

	assert.Equal(t, 256*1024.0, v.WorldSize())
	// Ground resolution halves per zoom level.
	v2 := v
	v2.Zoom = 11
	assert.InDelta(t, v.MetersPerPixel()/2, v2.MetersPerPixel(), 1e-9)
}

func TestCircle_Radius(t *testing.T) {
	v := Viewport{Center: LatLng{0, 0}, Zoom: 0, Width: 256, Height: 256}
	f := Frame{View: v, Scale: 2}

	equator := 2 * math.Pi * EarthRadius
	c := &Circle{Center: LatLng{0, 0}, RadiusMeters: equator / 4}
	assert.InDelta(t, 64*2, c.Radius(f), 1e-6)

	c.RadiusMeters = -1
	assert.Zero(t, c.Radius(f))
}

func TestOverlay_ZOrder(t *testing.T) {
	v := Viewport{Center: LatLng{0, 0}, Zoom: 3, Width: 200, Height: 200}
	red, blue, green := paint.Solid(paint.Red), paint.Solid(paint.Blue), paint.Solid(paint.Green)

	var o Overlay
	top := &Pin{At: LatLng{0, 0}, Fill: red, ZIndex: 10}
	bottom := &Pin{At: LatLng{0, 0}, Fill: blue, ZIndex: -1}
	middle := &Circle{Center: LatLng{0, 0}, RadiusMeters: 100000, Fill: green}
	o.Add(top, bottom, middle)

	rec := recording.NewRecorder(200, 200)
	require.Equal(t, 3, o.Draw(rec, v, 1))

	draws := rec.Draws()
	require.Len(t, draws, 3)
	var colors []paint.Color
	for _, d := range draws {
		colors = append(colors, d.(recording.DrawPathCommand).Paint.Color)
	}
	assert.Equal(t, []paint.Color{paint.Blue, paint.Green, paint.Red}, colors)

	assert.True(t, o.Remove(middle))
	assert.False(t, o.Remove(middle))
	assert.Equal(t, 2, o.Len())
}

func TestOverlay_Culling(t *testing.T) {
	v := Viewport{Center: LatLng{0, 0}, Zoom: 5, Width: 100, Height: 100}

	var o Overlay
	o.Add(
		&Pin{At: LatLng{0, 0}, Fill: paint.Solid(paint.Red)},
		&Pin{At: LatLng{40, 100}, Fill: paint.Solid(paint.Red)},
		&Label{At: LatLng{-40, -100}, Text: "far away", Brush: paint.Solid(paint.Black)},
	)

	rec := recording.NewRecorder(100, 100)
	assert.Equal(t, 1, o.Draw(rec, v, 1))
	assert.Len(t, rec.Draws(), 1)
}

func TestPin_Bounds(t *testing.T) {
	v := Viewport{Center: LatLng{0, 0}, Zoom: 1, Width: 100, Height: 100}
	p := &Pin{At: LatLng{0, 0}, Height: 20}

	b := p.Bounds(Frame{View: v, Scale: 1})
	assert.InDelta(t, 50, b.Bottom(), 1e-9, "the tip sits on the position")
	assert.InDelta(t, 30, b.Top(), 1e-9)
	assert.InDelta(t, 50, b.Center().X, 1e-9)

	b2 := p.Bounds(Frame{View: v, Scale: 2})
	assert.InDelta(t, 2*b.H, b2.H, 1e-9)
}

func TestLabel_Draw(t *testing.T) {
	v := Viewport{Center: LatLng{0, 0}, Zoom: 1, Width: 200, Height: 100}
	l := &Label{
		At:         LatLng{0, 0},
		Text:       "Here",
		Offset:     geom.Pt(8, -4),
		Brush:      paint.Solid(paint.Black),
		Decoration: paint.Italic,
	}

	rec := recording.NewRecorder(200, 100)
	l.Draw(Frame{Canvas: rec, View: v, Scale: 1})

	draws := rec.Draws()
	require.Len(t, draws, 1)
	tc := draws[0].(recording.DrawTextCommand)
	assert.Equal(t, "Here", tc.Text)
	assert.InDelta(t, 108, tc.X, 1e-9)
	assert.InDelta(t, 46, tc.Y, 1e-9)
	assert.Equal(t, paint.ItalicSkew, tc.Paint.SkewX)
}

func TestCircle_DashedOutlineOnRaster(t *testing.T) {
	v := Viewport{Center: LatLng{0, 0}, Zoom: 0, Width: 256, Height: 256}
	equator := 2 * math.Pi * EarthRadius
	c := &Circle{
		Center:       LatLng{0, 0},
		RadiusMeters: equator / 8, // 32px
		Stroke:       paint.Solid(paint.Black),
		StrokeWidth:  2,
		StrokeStyle:  paint.StrokeDashed,
	}

	cv := raster.NewCanvas(256, 256)
	var o Overlay
	o.Add(c)
	require.Equal(t, 1, o.Draw(cv, v, 1))

	// Some pixels on the ring are inked, some are in gaps, the center is
	// empty.
	inked, empty := 0, 0
	for i := 0; i < 360; i++ {
		a := float64(i) * math.Pi / 180
		x := int(128 + 32*math.Cos(a))
		y := int(128 + 32*math.Sin(a))
		if cv.At(x, y).A > 128 {
			inked++
		} else {
			empty++
		}
	}
	assert.Positive(t, inked)
	assert.Positive(t, empty)
	assert.Zero(t, cv.At(128, 128).A)
}
