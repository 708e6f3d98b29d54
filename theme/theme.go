// Package theme maps named keys to colors, metrics and brushes.
//
// Renderers never hard-code colors; they ask the theme of the current paint
// pass for a brush by key:
//
//	b := pc.Theme().Brush(theme.HighlightColor)
//	b.FillRect(pc.Canvas(), x, y, w, h)
//
// Light and Dark return built-in themes. Load reads a YAML or TOML file that
// overrides a built-in base, and Watch reloads it whenever it changes on
// disk.
package theme

import (
	"maps"
	"sync"

	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/text"
)

// Color keys.
const (
	BackgroundColor = "BackgroundColor"
	ForegroundColor = "ForegroundColor"
	ControlColor    = "ControlColor"
	HoverColor      = "HoverColor"
	PressedColor    = "PressedColor"
	BorderColor     = "BorderColor"
	HighlightColor  = "HighlightColor"
	AccentColor     = "AccentColor"
	DisabledColor   = "DisabledColor"
	TrackColor      = "TrackColor"
)

// Metric keys, in logical units.
const (
	BorderWidth  = "BorderWidth"
	FontSize     = "FontSize"
	CornerRadius = "CornerRadius"
	Padding      = "Padding"
)

// Missing is the color returned for unknown keys. It is loud on purpose so
// that a misspelt key shows up on screen.
var Missing = paint.Hex("#FF00FF")

// Theme is an immutable set of named colors and metrics plus a typeface.
// Brushes are created lazily and cached; a Theme is safe for concurrent use.
type Theme struct {
	name    string
	colors  map[string]paint.Color
	metrics map[string]float64
	face    *text.Typeface

	mu      sync.RWMutex
	brushes map[string]paint.SolidBrush
}

// New creates a theme from the given tables. The maps are copied.
// A nil typeface selects text.Default().
func New(name string, colors map[string]paint.Color, metrics map[string]float64, face *text.Typeface) *Theme {
	return &Theme{
		name:    name,
		colors:  maps.Clone(colors),
		metrics: maps.Clone(metrics),
		face:    face,
		brushes: make(map[string]paint.SolidBrush),
	}
}

// Name returns the theme name.
func (t *Theme) Name() string { return t.name }

// Color returns the color for key and whether the key is defined.
func (t *Theme) Color(key string) (paint.Color, bool) {
	c, ok := t.colors[key]
	return c, ok
}

// Brush returns a cached solid brush for key. Unknown keys paint Missing.
func (t *Theme) Brush(key string) paint.Brush {
	t.mu.RLock()
	b, ok := t.brushes[key]
	t.mu.RUnlock()
	if ok {
		return b
	}

	c, ok := t.colors[key]
	if !ok {
		c = Missing
	}
	b = paint.Solid(c)

	t.mu.Lock()
	t.brushes[key] = b
	t.mu.Unlock()
	return b
}

// Metric returns the metric for key, or def if it is not defined.
func (t *Theme) Metric(key string, def float64) float64 {
	if v, ok := t.metrics[key]; ok {
		return v
	}
	return def
}

// Typeface returns the theme's typeface.
func (t *Theme) Typeface() *text.Typeface {
	if t.face == nil {
		return text.Default()
	}
	return t.face
}

// Keys returns the defined color keys in no particular order.
func (t *Theme) Keys() []string {
	keys := make([]string, 0, len(t.colors))
	for k := range t.colors {
		keys = append(keys, k)
	}
	return keys
}

// With returns a copy of t with the given colors and metrics overriding
// its own.
func (t *Theme) With(name string, colors map[string]paint.Color, metrics map[string]float64) *Theme {
	c := maps.Clone(t.colors)
	maps.Copy(c, colors)
	m := maps.Clone(t.metrics)
	maps.Copy(m, metrics)
	return New(name, c, m, t.face)
}
