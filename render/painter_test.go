package render

import (
	"errors"
	"testing"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/theme"
	"github.com/gogpu/ui/widget"
)

// rectRenderer records the device rectangle and theme of each control.
type rectRenderer struct {
	target *widget.Kind
	rects  []geom.Rect
	themes []*theme.Theme
}

func (r *rectRenderer) Target() *widget.Kind { return r.target }

func (r *rectRenderer) Render(c widget.Control, pc *Context) {
	r.rects = append(r.rects, pc.DeviceRect(c.Bounds()))
	r.themes = append(r.themes, pc.Theme())
}

func TestPainter_TranslatesChildren(t *testing.T) {
	reg := NewRegistry()
	panels := &rectRenderer{target: widget.KindPanel}
	buttons := &rectRenderer{target: widget.KindButton}
	reg.Register(panels)
	reg.Register(buttons)

	inner := widget.NewPanel(geom.XYWH(10, 10, 50, 50),
		widget.NewButton(geom.XYWH(5, 5, 20, 10), "b"),
	)
	root := widget.NewPanel(geom.XYWH(100, 0, 200, 200), inner)

	rec := recording.NewRecorder(600, 600)
	if err := NewPainter(reg).Paint(rec, root, 2); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	wantPanels := []geom.Rect{geom.XYWH(200, 0, 400, 400), geom.XYWH(220, 20, 100, 100)}
	if len(panels.rects) != len(wantPanels) {
		t.Fatalf("panel renders = %d, want %d", len(panels.rects), len(wantPanels))
	}
	for i, want := range wantPanels {
		if panels.rects[i] != want {
			t.Errorf("panel %d rect = %v, want %v", i, panels.rects[i], want)
		}
	}
	if len(buttons.rects) != 1 || buttons.rects[0] != geom.XYWH(230, 30, 40, 20) {
		t.Errorf("button rects = %v, want [(230,30 40x20)]", buttons.rects)
	}

	if got := rec.Clip(); got != geom.XYWH(0, 0, 600, 600) {
		t.Errorf("clip after Paint = %v, want full canvas", got)
	}
}

func TestPainter_FallbackAndThemeOverride(t *testing.T) {
	reg := NewRegistry()
	panels := &rectRenderer{target: widget.KindPanel}
	buttons := &rectRenderer{target: widget.KindButton}
	reg.Register(panels)
	reg.Register(buttons)

	toggle := widget.NewToggleButton(geom.XYWH(0, 0, 10, 10), "t", true)
	toggle.SetTheme(theme.Dark())
	plain := widget.NewButton(geom.XYWH(0, 20, 10, 10), "p")
	root := widget.NewPanel(geom.XYWH(0, 0, 100, 100), toggle, plain)

	if err := NewPainter(reg).Paint(recording.NewRecorder(100, 100), root, 1); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(buttons.themes) != 2 {
		t.Fatalf("button renders = %d, want 2 (toggle falls back)", len(buttons.themes))
	}
	if buttons.themes[0] != theme.Dark() {
		t.Error("toggle did not paint with its theme override")
	}
	if buttons.themes[1] != theme.Light() {
		t.Error("theme override leaked to the next sibling")
	}
}

func TestPainter_NoRenderer(t *testing.T) {
	reg := NewRegistry()
	panels := &rectRenderer{target: widget.KindPanel}
	reg.Register(panels)

	root := widget.NewPanel(geom.XYWH(0, 0, 100, 100),
		widget.NewSplitter(geom.XYWH(0, 40, 100, 20), widget.Horizontal),
		widget.NewPanel(geom.XYWH(0, 60, 100, 40)),
	)

	err := NewPainter(reg).Paint(recording.NewRecorder(100, 100), root, 1)
	var nre *NoRendererError
	if !errors.As(err, &nre) || nre.Kind != widget.KindSplitter {
		t.Fatalf("Paint() error = %v, want *NoRendererError for Splitter", err)
	}
	if len(panels.rects) != 1 {
		t.Errorf("panel renders = %d, want 1 (paint stops at the splitter)", len(panels.rects))
	}
}

func TestNewPainter_Default(t *testing.T) {
	if p := NewPainter(nil); p.reg != Default {
		t.Error("NewPainter(nil) does not use Default")
	}
}
