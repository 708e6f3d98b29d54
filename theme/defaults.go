package theme

import (
	"sync"

	"github.com/gogpu/ui/paint"
)

var defaultMetrics = map[string]float64{
	BorderWidth:  1,
	FontSize:     13,
	CornerRadius: 4,
	Padding:      6,
}

var (
	lightOnce, darkOnce sync.Once
	light, dark         *Theme
)

// Light returns the built-in light theme.
func Light() *Theme {
	lightOnce.Do(func() {
		light = New("light", map[string]paint.Color{
			BackgroundColor: paint.Hex("#F5F5F5"),
			ForegroundColor: paint.Hex("#1F1F1F"),
			ControlColor:    paint.Hex("#E0E0E0"),
			HoverColor:      paint.Hex("#D5D5D5"),
			PressedColor:    paint.Hex("#BDBDBD"),
			BorderColor:     paint.Hex("#9E9E9E"),
			HighlightColor:  paint.Hex("#3D8BFD"),
			AccentColor:     paint.Hex("#1E66D0"),
			DisabledColor:   paint.Hex("#A8A8A8"),
			TrackColor:      paint.Hex("#CFCFCF"),
		}, defaultMetrics, nil)
	})
	return light
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	darkOnce.Do(func() {
		dark = New("dark", map[string]paint.Color{
			BackgroundColor: paint.Hex("#1E1E1E"),
			ForegroundColor: paint.Hex("#E6E6E6"),
			ControlColor:    paint.Hex("#333333"),
			HoverColor:      paint.Hex("#3D3D3D"),
			PressedColor:    paint.Hex("#505050"),
			BorderColor:     paint.Hex("#5A5A5A"),
			HighlightColor:  paint.Hex("#4C9AFF"),
			AccentColor:     paint.Hex("#7AB4FF"),
			DisabledColor:   paint.Hex("#6B6B6B"),
			TrackColor:      paint.Hex("#2A2A2A"),
		}, defaultMetrics, nil)
	})
	return dark
}

// Builtin returns the built-in theme with the given name ("light" or
// "dark").
func Builtin(name string) (*Theme, bool) {
	switch name {
	case "light", "":
		return Light(), true
	case "dark":
		return Dark(), true
	}
	return nil, false
}
