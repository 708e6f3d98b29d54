package paint_test

import (
	"testing"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/recording"
	"github.com/gogpu/ui/text"
)

func line() *geom.Path {
	p := geom.NewPath()
	p.MoveTo(0, 10)
	p.LineTo(100, 10)
	return p
}

func onlyPathDraw(t *testing.T, rec *recording.Recorder) recording.DrawPathCommand {
	t.Helper()
	draws := rec.Draws()
	if len(draws) != 1 {
		t.Fatalf("recorded %d draws, want 1", len(draws))
	}
	cmd, ok := draws[0].(recording.DrawPathCommand)
	if !ok {
		t.Fatalf("draw is %T, want DrawPathCommand", draws[0])
	}
	return cmd
}

func TestSolidBrush_StrokeDashPatterns(t *testing.T) {
	tests := []struct {
		name   string
		style  paint.StrokeStyle
		width  float64
		want   []float64
		period float64
	}{
		{"solid", paint.StrokeSolid, 2, nil, 0},
		{"dotted w=1", paint.StrokeDotted, 1, []float64{0, 2}, 2},
		{"dotted w=3", paint.StrokeDotted, 3, []float64{0, 6}, 6},
		{"dashed w=1", paint.StrokeDashed, 1, []float64{6, 2}, 8},
		{"dashed w=2.5", paint.StrokeDashed, 2.5, []float64{15, 5}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder(100, 20)
			paint.Solid(paint.Red).Stroke(rec, line(), tt.width, tt.style, paint.LineCapRound, paint.LineJoinBevel)

			ps := onlyPathDraw(t, rec).Paint
			if ps.Style != paint.StyleStroke {
				t.Errorf("Style = %v, want StyleStroke", ps.Style)
			}
			if ps.StrokeWidth != tt.width {
				t.Errorf("StrokeWidth = %v, want %v", ps.StrokeWidth, tt.width)
			}
			if ps.Cap != paint.LineCapRound || ps.Join != paint.LineJoinBevel {
				t.Errorf("cap/join = %v/%v, want passthrough Round/Bevel", ps.Cap, ps.Join)
			}
			if tt.want == nil {
				if ps.Dash != nil {
					t.Errorf("Dash = %v, want nil", ps.Dash)
				}
				return
			}
			if ps.Dash == nil {
				t.Fatal("Dash = nil")
			}
			got := ps.Dash.Intervals()
			if len(got) != len(tt.want) {
				t.Fatalf("Intervals() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Intervals()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if ps.Dash.PatternLength() != tt.period {
				t.Errorf("PatternLength() = %v, want %v", ps.Dash.PatternLength(), tt.period)
			}
		})
	}
}

func TestSolidBrush_FillRect(t *testing.T) {
	rec := recording.NewRecorder(50, 50)
	b := paint.Solid(paint.Blue)

	b.FillRect(rec, 5, 6, 7, 8)
	b.FillRect(rec, 0, 0, -3, 10)
	b.FillRect(rec, 0, 0, 10, 0)

	draws := rec.Draws()
	if len(draws) != 1 {
		t.Fatalf("recorded %d draws, want only the non-empty rect", len(draws))
	}
	cmd := draws[0].(recording.DrawRectCommand)
	if cmd.Rect != geom.XYWH(5, 6, 7, 8) {
		t.Errorf("Rect = %v", cmd.Rect)
	}
	if cmd.Paint.Style != paint.StyleFill || !cmd.Paint.Flags.Has(paint.FlagAntialias) {
		t.Errorf("fill paint = %+v, want antialiased fill", cmd.Paint)
	}
	if cmd.Paint.Color != paint.Blue {
		t.Errorf("Color = %v, want blue", cmd.Paint.Color)
	}
}

func TestBrush_Text(t *testing.T) {
	face := text.Default()
	tests := []struct {
		name      string
		dec       paint.Decoration
		wantBold  bool
		wantSkew  float64
		wantUnder bool
	}{
		{"plain", 0, false, 0, false},
		{"bold", paint.Bold, true, 0, false},
		{"italic", paint.Italic, false, paint.ItalicSkew, false},
		{"all", paint.Bold | paint.Italic | paint.Underline, true, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder(200, 50)
			paint.Solid(paint.Black).Text(rec, "Label", geom.XYWH(10, 5, 100, 20), face, 14, tt.dec)

			draws := rec.Draws()
			if len(draws) != 1 {
				t.Fatalf("recorded %d draws", len(draws))
			}
			cmd := draws[0].(recording.DrawTextCommand)
			if cmd.X != 10 || cmd.Y != 25 {
				t.Errorf("baseline origin = (%v,%v), want frame bottom-left (10,25)", cmd.X, cmd.Y)
			}
			if cmd.Paint.Typeface != face || cmd.Paint.TextSize != 14 {
				t.Errorf("typeface/size not passed through: %+v", cmd.Paint)
			}
			if got := cmd.Paint.Flags.Has(paint.FlagFakeBold); got != tt.wantBold {
				t.Errorf("FakeBold = %v, want %v", got, tt.wantBold)
			}
			if cmd.Paint.SkewX != tt.wantSkew {
				t.Errorf("SkewX = %v, want %v", cmd.Paint.SkewX, tt.wantSkew)
			}
			if got := cmd.Paint.Flags.Has(paint.FlagUnderline); got != tt.wantUnder {
				t.Errorf("Underline = %v, want %v", got, tt.wantUnder)
			}
		})
	}
}

func TestBrush_ReleasesPaints(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	before := paint.LivePaints()

	brushes := []paint.Brush{
		paint.Solid(paint.Red),
		paint.Gradient(paint.NewLinearGradient(geom.Pt(0, 0), geom.Pt(100, 0),
			paint.ColorStop{Offset: 0, Color: paint.Black},
			paint.ColorStop{Offset: 1, Color: paint.White})),
	}
	for _, b := range brushes {
		p := geom.NewPath()
		p.Circle(50, 50, 10)
		b.Fill(rec, p)
		b.FillRect(rec, 0, 0, 10, 10)
		b.Stroke(rec, p, 2, paint.StrokeDashed, paint.LineCapButt, paint.LineJoinMiter)
		b.Text(rec, "x", geom.XYWH(0, 0, 10, 10), text.Default(), 10, paint.Bold)
	}

	if after := paint.LivePaints(); after != before {
		t.Errorf("brushes leaked %d paints", after-before)
	}
	if n := len(rec.Draws()); n != 8 {
		t.Errorf("recorded %d draws, want 8", n)
	}
}

func TestBrush_DegenerateInputs(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	b := paint.Solid(paint.Red)
	b.Fill(rec, geom.NewPath())
	b.Stroke(rec, line(), 0, paint.StrokeSolid, paint.LineCapButt, paint.LineJoinMiter)
	b.Text(rec, "", geom.XYWH(0, 0, 10, 10), text.Default(), 10, 0)
	if n := len(rec.Draws()); n != 0 {
		t.Errorf("degenerate inputs produced %d draws", n)
	}
}

func TestDecoration_String(t *testing.T) {
	if got := (paint.Bold | paint.Underline).String(); got != "Bold|Underline" {
		t.Errorf("String() = %q", got)
	}
	if got := paint.Decoration(0).String(); got != "None" {
		t.Errorf("String() = %q", got)
	}
}
