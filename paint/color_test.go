package paint

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/ui/geom"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Red, false},
		{"00ff00", Green, false},
		{"#00F", Blue, false},
		{"#0000", Transparent, false},
		{"#FFFFFF80", RGBA(1, 1, 1, 128.0/255), false},
		{"#GG0000", Color{}, true},
		{"#12345", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if Hex("nope") != Black {
		t.Error("Hex of malformed input should be black")
	}
}

func TestColor_RoundTrip(t *testing.T) {
	c := Hex("#3D8BFDCC")
	if got := c.String(); got != "#3D8BFDCC" {
		t.Errorf("String() = %q", got)
	}
	n := c.NRGBA()
	if back := FromColor(n); math.Abs(back.R-c.R) > 1e-9 {
		t.Errorf("FromColor(NRGBA()) = %v, want %v", back, c)
	}
	if FromColor(color.White) != White {
		t.Error("FromColor(white) != White")
	}
}

func TestLinearGradient_ColorAt(t *testing.T) {
	g := NewLinearGradient(geom.Pt(0, 0), geom.Pt(100, 0),
		ColorStop{Offset: 1, Color: White},
		ColorStop{Offset: 0, Color: Black},
	)
	tests := []struct {
		x    float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{25, 0.25},
		{100, 1},
		{150, 1},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.x, 42).R; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ColorAt(%v).R = %v, want %v", tt.x, got, tt.want)
		}
	}
	if (&LinearGradient{}).ColorAt(0, 0) != Transparent {
		t.Error("gradient without stops should be transparent")
	}
}

func TestDashFor(t *testing.T) {
	if DashFor(StrokeSolid, 3) != nil {
		t.Error("solid stroke should have no dash")
	}
	if DashFor(StrokeDashed, 0) != nil {
		t.Error("zero width should have no dash")
	}
	d := DashFor(StrokeDotted, 4)
	if d.Array[0] != 0 || d.Array[1] != 8 {
		t.Errorf("dotted w=4 = %v, want [0 8]", d.Array)
	}
	if NewDash(0, 0) != nil {
		t.Error("all-zero dash should be nil")
	}
	if got := NewDash(5).Intervals(); len(got) != 2 || got[1] != 5 {
		t.Errorf("odd dash intervals = %v, want [5 5]", got)
	}
	if s := NewDash(1, 2).Scale(2); s.Array[1] != 4 {
		t.Errorf("Scale(2) = %v", s.Array)
	}
}

func TestAcquirePaint_Defaults(t *testing.T) {
	p := AcquirePaint()
	p.Color = Red
	p.Flags = FlagFakeBold
	p.Release()

	q := AcquirePaint()
	defer q.Release()
	if q.Color != Black || q.Flags != FlagAntialias || q.StrokeWidth != 1 {
		t.Errorf("AcquirePaint() did not reset state: %+v", q)
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	if c.A != 0.25 || c.R != Red.R || c.G != Red.G || c.B != Red.B {
		t.Errorf("Red.WithAlpha(0.25) = %v", c)
	}
	if Red.A != 1 {
		t.Error("WithAlpha modified the receiver")
	}
}
