package marker

import (
	"slices"
	"sync"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
)

// Overlay is a z-ordered layer of markers. Markers with equal Z draw in
// insertion order. An Overlay is safe for concurrent use; drawing works on
// a snapshot of the markers.
type Overlay struct {
	mu      sync.Mutex
	markers []Marker
}

// Add appends markers.
func (o *Overlay) Add(ms ...Marker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.markers = append(o.markers, ms...)
}

// Remove deletes m and reports whether it was present.
func (o *Overlay) Remove(m Marker) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	i := slices.Index(o.markers, m)
	if i < 0 {
		return false
	}
	o.markers = slices.Delete(o.markers, i, i+1)
	return true
}

// Len returns the number of markers.
func (o *Overlay) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.markers)
}

// Markers returns the markers in draw order.
func (o *Overlay) Markers() []Marker {
	o.mu.Lock()
	ms := slices.Clone(o.markers)
	o.mu.Unlock()
	slices.SortStableFunc(ms, func(a, b Marker) int { return a.Z() - b.Z() })
	return ms
}

// Draw paints the markers visible in view onto cv and returns how many
// were drawn. Markers whose bounds miss the canvas are skipped.
func (o *Overlay) Draw(cv paint.Canvas, view Viewport, scale float64) int {
	if !(scale > 0) {
		scale = 1
	}
	f := Frame{Canvas: cv, View: view, Scale: scale}
	w, h := cv.Size()
	screen := geom.XYWH(0, 0, float64(w), float64(h))

	drawn := 0
	for _, m := range o.Markers() {
		if screen.Intersect(m.Bounds(f)).Empty() {
			continue
		}
		m.Draw(f)
		drawn++
	}
	ui.Logger().Debug("marker: overlay drawn", "markers", o.Len(), "drawn", drawn)
	return drawn
}
