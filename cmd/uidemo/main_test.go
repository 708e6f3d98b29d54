package main

import (
	"testing"

	"github.com/gogpu/ui/raster"
	"github.com/gogpu/ui/render"
	"github.com/gogpu/ui/theme"
)

func TestDemoRenders(t *testing.T) {
	for _, name := range []string{"light", "dark"} {
		th, err := loadTheme(name)
		if err != nil {
			t.Fatal(err)
		}
		cv := raster.NewCanvas(320, 240)
		if err := render.NewPainter(nil).Paint(cv, buildTree(320, 240), 1, render.WithTheme(th)); err != nil {
			t.Fatalf("%s: Paint() error = %v", name, err)
		}
		drawMap(cv, 320, 240, 1, th)

		bg, _ := th.Color(theme.BackgroundColor)
		if got := cv.At(300, 230); got.A == 0 {
			t.Errorf("%s: pixel not painted, background %v", name, bg)
		}
	}

	if _, err := loadTheme("/does/not/exist.yaml"); err == nil {
		t.Error("missing theme file accepted")
	}
}
