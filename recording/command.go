package recording

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSave     CommandType = iota // Save clip state
	CmdRestore                     // Restore clip state
	CmdClipRect                    // Intersect clip with a rectangle
	CmdDrawLine                    // Stroke a segment
	CmdDrawRect                    // Fill or stroke a rectangle
	CmdDrawPath                    // Fill or stroke a path
	CmdDrawText                    // Draw a text run
)

var commandTypeNames = [...]string{
	CmdSave:     "Save",
	CmdRestore:  "Restore",
	CmdClipRect: "ClipRect",
	CmdDrawLine: "DrawLine",
	CmdDrawRect: "DrawRect",
	CmdDrawPath: "DrawPath",
	CmdDrawText: "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
}

// PaintState is an owned snapshot of a paint.Paint taken at record time.
// The recorded paint itself goes back to its pool when the call returns.
type PaintState struct {
	Color       paint.Color
	Shader      paint.Shader
	Style       paint.Style
	StrokeWidth float64
	Cap         paint.LineCap
	Join        paint.LineJoin
	MiterLimit  float64
	Dash        *paint.Dash
	Typeface    *text.Typeface
	TextSize    float64
	SkewX       float64
	Flags       paint.Flags
}

func snapshot(p *paint.Paint) PaintState {
	return PaintState{
		Color:       p.Color,
		Shader:      p.Shader,
		Style:       p.Style,
		StrokeWidth: p.StrokeWidth,
		Cap:         p.Cap,
		Join:        p.Join,
		MiterLimit:  p.MiterLimit,
		Dash:        p.Dash.Clone(),
		Typeface:    p.Typeface,
		TextSize:    p.TextSize,
		SkewX:       p.SkewX,
		Flags:       p.Flags,
	}
}

// restoreInto copies the snapshot onto a freshly acquired paint.
func (s PaintState) restoreInto(p *paint.Paint) {
	p.Color = s.Color
	p.Shader = s.Shader
	p.Style = s.Style
	p.StrokeWidth = s.StrokeWidth
	p.Cap = s.Cap
	p.Join = s.Join
	p.MiterLimit = s.MiterLimit
	p.Dash = s.Dash
	p.Typeface = s.Typeface
	p.TextSize = s.TextSize
	p.SkewX = s.SkewX
	p.Flags = s.Flags
}

// SaveCommand saves the clip state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved clip state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// ClipRectCommand intersects the clip with Rect.
type ClipRectCommand struct {
	Rect geom.Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// DrawLineCommand strokes the segment P0-P1.
type DrawLineCommand struct {
	P0, P1 geom.Point
	Paint  PaintState
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawRectCommand fills or strokes Rect.
type DrawRectCommand struct {
	Rect  geom.Rect
	Paint PaintState
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawPathCommand fills or strokes Path. Path is a private copy.
type DrawPathCommand struct {
	Path  *geom.Path
	Paint PaintState
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawTextCommand draws Text with its baseline origin at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Paint PaintState
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
