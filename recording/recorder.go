package recording

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
)

// Recorder is a paint.Canvas that appends a Command for every call.
// It tracks the effective clip so that callers can query it, but it never
// discards draw calls that fall outside the clip.
type Recorder struct {
	width, height int
	commands      []Command
	clip          geom.Rect
	clipStack     []geom.Rect
}

var _ paint.Canvas = (*Recorder)(nil)

// NewRecorder creates a Recorder for a canvas of the given device size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		clip:     geom.XYWH(0, 0, float64(width), float64(height)),
	}
}

// Size implements paint.Canvas.
func (r *Recorder) Size() (int, int) { return r.width, r.height }

// Save implements paint.Canvas.
func (r *Recorder) Save() {
	r.clipStack = append(r.clipStack, r.clip)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements paint.Canvas. An unbalanced Restore is recorded but
// leaves the clip unchanged.
func (r *Recorder) Restore() {
	if n := len(r.clipStack); n > 0 {
		r.clip = r.clipStack[n-1]
		r.clipStack = r.clipStack[:n-1]
	}
	r.commands = append(r.commands, RestoreCommand{})
}

// ClipRect implements paint.Canvas.
func (r *Recorder) ClipRect(rect geom.Rect) {
	r.clip = r.clip.Intersect(rect)
	r.commands = append(r.commands, ClipRectCommand{Rect: rect})
}

// Clip returns the current effective clip.
func (r *Recorder) Clip() geom.Rect { return r.clip }

// DrawLine implements paint.Canvas.
func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p *paint.Paint) {
	r.commands = append(r.commands, DrawLineCommand{P0: geom.Pt(x0, y0), P1: geom.Pt(x1, y1), Paint: snapshot(p)})
}

// DrawRect implements paint.Canvas.
func (r *Recorder) DrawRect(rect geom.Rect, p *paint.Paint) {
	r.commands = append(r.commands, DrawRectCommand{Rect: rect, Paint: snapshot(p)})
}

// DrawPath implements paint.Canvas.
func (r *Recorder) DrawPath(path *geom.Path, p *paint.Paint) {
	r.commands = append(r.commands, DrawPathCommand{Path: path.Clone(), Paint: snapshot(p)})
}

// DrawText implements paint.Canvas.
func (r *Recorder) DrawText(s string, x, y float64, p *paint.Paint) {
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Paint: snapshot(p)})
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Draws returns only the drawing commands, skipping clip state commands.
func (r *Recorder) Draws() []Command {
	var out []Command
	for _, c := range r.commands {
		switch c.Type() {
		case CmdDrawLine, CmdDrawRect, CmdDrawPath, CmdDrawText:
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded commands and the clip stack.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.clipStack = r.clipStack[:0]
	r.clip = geom.XYWH(0, 0, float64(r.width), float64(r.height))
}

// Playback replays the recorded commands onto dst in order.
func (r *Recorder) Playback(dst paint.Canvas) {
	for _, c := range r.commands {
		replay(dst, c)
	}
}

func replay(dst paint.Canvas, c Command) {
	switch c := c.(type) {
	case SaveCommand:
		dst.Save()
	case RestoreCommand:
		dst.Restore()
	case ClipRectCommand:
		dst.ClipRect(c.Rect)
	case DrawLineCommand:
		withPaint(c.Paint, func(p *paint.Paint) { dst.DrawLine(c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, p) })
	case DrawRectCommand:
		withPaint(c.Paint, func(p *paint.Paint) { dst.DrawRect(c.Rect, p) })
	case DrawPathCommand:
		withPaint(c.Paint, func(p *paint.Paint) { dst.DrawPath(c.Path, p) })
	case DrawTextCommand:
		withPaint(c.Paint, func(p *paint.Paint) { dst.DrawText(c.Text, c.X, c.Y, p) })
	}
}

func withPaint(s PaintState, draw func(*paint.Paint)) {
	p := paint.AcquirePaint()
	defer p.Release()
	s.restoreInto(p)
	draw(p)
}
