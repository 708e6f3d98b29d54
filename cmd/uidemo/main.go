// Command uidemo renders a sample widget tree and map overlay to a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/marker"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/raster"
	"github.com/gogpu/ui/render"
	_ "github.com/gogpu/ui/render/renderers"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

const toolbarHeight = 140

func main() {
	var (
		width   = flag.Int("width", 640, "logical width")
		height  = flag.Int("height", 420, "logical height")
		scale   = flag.Float64("scale", 1, "device pixels per logical pixel")
		output  = flag.String("output", "uidemo.png", "output file")
		themeID = flag.String("theme", "light", `built-in theme ("light", "dark") or a .yaml/.toml theme file`)
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	th, err := loadTheme(*themeID)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	w, h := float64(*width), float64(*height)
	root := buildTree(w, h)

	cv := raster.NewCanvas(int(w**scale), int(h**scale))
	if err := render.NewPainter(nil).Paint(cv, root, *scale, render.WithTheme(th)); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}
	drawMap(cv, w, h, *scale, th)

	if err := cv.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d @%gx, theme %s)\n", *output, *width, *height, *scale, th.Name())
}

func loadTheme(id string) (*theme.Theme, error) {
	if t, ok := theme.Builtin(id); ok {
		return t, nil
	}
	return theme.Load(id)
}

func buildTree(w, h float64) widget.Control {
	title := widget.NewLabel(geom.XYWH(16, 12, w-32, 28), "Storage")
	title.Decoration = paint.Bold | paint.Underline

	open := widget.NewButton(geom.XYWH(16, 52, 112, 32), "Open…")
	open.SetState(widget.StateFocused)
	save := widget.NewButton(geom.XYWH(140, 52, 112, 32), "Save As…")
	save.SetState(widget.StateDisabled)
	pin := widget.NewToggleButton(geom.XYWH(264, 52, 112, 32), "Pin", true)
	grid := widget.NewCheckBox(geom.XYWH(392, 56, 140, 24), "Show grid", false)
	progress := widget.NewProgressBar(geom.XYWH(16, 100, w-32, 12), widget.Horizontal, 0.62)

	toolbar := widget.NewPanel(geom.XYWH(0, 0, w, toolbarHeight), title, open, save, pin, grid, progress)
	toolbar.Border = true

	split := widget.NewSplitter(geom.XYWH(0, toolbarHeight, w, 8), widget.Horizontal)
	side := widget.NewProgressBar(geom.XYWH(w-28, toolbarHeight+20, 12, h-toolbarHeight-40), widget.Vertical, 0.35)

	return widget.NewPanel(geom.XYWH(0, 0, w, h), toolbar, split, side)
}

func drawMap(cv *raster.Canvas, w, h, scale float64, th *theme.Theme) {
	top := toolbarHeight + 8.0
	view := marker.Viewport{
		Center: marker.LatLng{Lat: 48.2, Lng: 11.0},
		Zoom:   5,
		Width:  w,
		Height: h + top,
	}

	var o marker.Overlay
	accent := th.Brush(theme.AccentColor)
	o.Add(
		&marker.Circle{
			Center:       marker.LatLng{Lat: 48.137, Lng: 11.575},
			RadiusMeters: 120_000,
			Fill:         paint.Solid(paint.Hex("#3D7EFF40")),
			Stroke:       accent,
			StrokeWidth:  2,
			StrokeStyle:  paint.StrokeDashed,
		},
		&marker.Pin{At: marker.LatLng{Lat: 48.137, Lng: 11.575}, Fill: accent, Dot: paint.Solid(paint.White), ZIndex: 1},
		&marker.Pin{At: marker.LatLng{Lat: 52.52, Lng: 13.405}, Fill: th.Brush(theme.HighlightColor), ZIndex: 1},
		&marker.Label{
			At:     marker.LatLng{Lat: 52.52, Lng: 13.405},
			Text:   "Berlin",
			Offset: geom.Pt(10, -8),
			Brush:  th.Brush(theme.ForegroundColor),
			ZIndex: 2,
		},
	)

	cv.Save()
	defer cv.Restore()
	cv.ClipRect(geom.XYWH(0, top*scale, w*scale, (h-top)*scale))
	o.Draw(cv, view, scale)
}
