// Package renderers provides the renderers for the built-in widget kinds.
//
// Importing the package registers them into render.Default:
//
//	import _ "github.com/gogpu/ui/render/renderers"
//
// Use Register to populate a private registry instead.
package renderers

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/text"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

func init() {
	Register(render.Default)
}

// Register adds one renderer per built-in kind to reg. It panics if reg
// already has a renderer for any of them.
func Register(reg *render.Registry) {
	for _, r := range All() {
		reg.Register(r)
	}
}

// All returns fresh instances of the built-in renderers.
func All() []render.Renderer {
	return []render.Renderer{
		PanelRenderer{},
		SplitterRenderer{},
		ButtonRenderer{},
		ToggleButtonRenderer{},
		CheckBoxRenderer{},
		LabelRenderer{},
		ProgressBarRenderer{},
	}
}

// Optional control properties. Renderers reached through kind fallback
// may be handed custom control types, so they ask for behavior rather
// than concrete types.
type (
	oriented interface{ Orientation() widget.Orientation }
	captioned interface{ Text() string }
	checkable interface{ Checked() bool }
)

func orientationOf(c widget.Control) widget.Orientation {
	if o, ok := c.(oriented); ok {
		return o.Orientation()
	}
	return widget.Horizontal
}

func captionOf(c widget.Control) string {
	if t, ok := c.(captioned); ok {
		return t.Text()
	}
	return ""
}

func checkedOf(c widget.Control) bool {
	if ch, ok := c.(checkable); ok {
		return ch.Checked()
	}
	return c.State().Has(widget.StateChecked)
}

// deviceBounds returns the control's device rectangle and whether it has
// a positive area.
func deviceBounds(c widget.Control, pc *render.Context) (geom.Rect, bool) {
	r := pc.DeviceRect(c.Bounds())
	return r, r.W > 0 && r.H > 0
}

func fontSize(pc *render.Context) float64 {
	return pc.Dp(pc.Theme().Metric(theme.FontSize, 13))
}

func foregroundKey(c widget.Control) string {
	if c.State().Has(widget.StateDisabled) {
		return theme.DisabledColor
	}
	return theme.ForegroundColor
}

// drawCaption draws s horizontally centered in r with its baseline placed
// so that the em box is vertically centered.
func drawCaption(pc *render.Context, s string, r geom.Rect, key string) {
	if s == "" {
		return
	}
	face := pc.Typeface()
	size := fontSize(pc)
	m := face.Metrics(size)
	w := face.Measure(s, size)
	baseline := r.Y + (r.H+m.Ascent-m.Descent)/2
	frame := geom.LTRB(r.X+(r.W-w)/2, baseline-size, r.X+(r.W+w)/2, baseline)
	pc.Brush(key).Text(pc.Canvas(), s, frame, face, size, 0)
}

// drawTextAt draws s left-aligned with its baseline at (x, baseline).
func drawTextAt(pc *render.Context, face *text.Typeface, s string, x, baseline, size float64, key string) {
	if s == "" {
		return
	}
	w := face.Measure(s, size)
	frame := geom.LTRB(x, baseline-size, x+w, baseline)
	pc.Brush(key).Text(pc.Canvas(), s, frame, face, size, 0)
}
