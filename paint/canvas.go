package paint

import "github.com/gogpu/ui/geom"

// Canvas is a drawing target in device coordinates.
//
// Implementations must treat every *Paint as borrowed for the duration of
// the call only. Save and Restore bracket clip changes; ClipRect intersects
// the current clip with r.
type Canvas interface {
	// Size returns the device size of the canvas in pixels.
	Size() (w, h int)

	Save()
	Restore()
	ClipRect(r geom.Rect)

	// DrawLine strokes a single segment with p's stroke settings.
	DrawLine(x0, y0, x1, y1 float64, p *Paint)
	// DrawRect fills or strokes r according to p.Style.
	DrawRect(r geom.Rect, p *Paint)
	// DrawPath fills or strokes path according to p.Style.
	DrawPath(path *geom.Path, p *Paint)
	// DrawText draws s left-aligned with its baseline origin at (x, y).
	DrawText(s string, x, y float64, p *Paint)
}
