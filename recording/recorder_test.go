package recording

import (
	"testing"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdClipRect, "ClipRect"},
		{CmdDrawText, "DrawText"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRecorder_SnapshotOutlivesPaint(t *testing.T) {
	rec := NewRecorder(100, 100)

	p := paint.AcquirePaint()
	p.Color = paint.Red
	p.Dash = paint.NewDash(4, 2)
	rec.DrawRect(geom.XYWH(1, 2, 3, 4), p)
	p.Dash.Array[0] = 99
	p.Release()

	draws := rec.Draws()
	if len(draws) != 1 {
		t.Fatalf("len(Draws()) = %d, want 1", len(draws))
	}
	cmd := draws[0].(DrawRectCommand)
	if cmd.Paint.Color != paint.Red {
		t.Errorf("recorded color = %v, want red", cmd.Paint.Color)
	}
	if cmd.Paint.Dash.Array[0] != 4 {
		t.Errorf("recorded dash mutated through caller: %v", cmd.Paint.Dash.Array)
	}
}

func TestRecorder_ClipStack(t *testing.T) {
	rec := NewRecorder(100, 50)
	rec.Save()
	rec.ClipRect(geom.XYWH(10, 10, 200, 20))
	if got := rec.Clip(); got != geom.XYWH(10, 10, 90, 20) {
		t.Errorf("Clip() = %v", got)
	}
	rec.Restore()
	if got := rec.Clip(); got != geom.XYWH(0, 0, 100, 50) {
		t.Errorf("Clip() after Restore = %v", got)
	}
	rec.Restore() // unbalanced, must not panic
	if n := len(rec.Commands()); n != 4 {
		t.Errorf("len(Commands()) = %d, want 4", n)
	}
	if len(rec.Draws()) != 0 {
		t.Error("clip commands must not appear in Draws()")
	}
}

func TestRecorder_Playback(t *testing.T) {
	src := NewRecorder(64, 64)
	src.Save()
	src.ClipRect(geom.XYWH(0, 0, 32, 32))
	path := geom.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 10)

	p := paint.AcquirePaint()
	p.Style = paint.StyleStroke
	p.StrokeWidth = 3
	src.DrawPath(path, p)
	src.DrawLine(0, 0, 5, 5, p)
	src.DrawText("hi", 1, 20, p)
	p.Release()
	src.Restore()

	dst := NewRecorder(64, 64)
	before := paint.LivePaints()
	src.Playback(dst)
	if after := paint.LivePaints(); after != before {
		t.Errorf("Playback leaked %d paints", after-before)
	}

	if len(dst.Commands()) != len(src.Commands()) {
		t.Fatalf("replayed %d commands, want %d", len(dst.Commands()), len(src.Commands()))
	}
	for i, c := range dst.Commands() {
		if c.Type() != src.Commands()[i].Type() {
			t.Errorf("command %d = %v, want %v", i, c.Type(), src.Commands()[i].Type())
		}
	}
	if w := dst.Draws()[0].(DrawPathCommand).Paint.StrokeWidth; w != 3 {
		t.Errorf("replayed stroke width = %v, want 3", w)
	}

	dst.Reset()
	if len(dst.Commands()) != 0 {
		t.Error("Reset() left commands behind")
	}
}
