package paint

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	}
	return "Unknown"
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the join name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	}
	return "Unknown"
}

// StrokeStyle selects a dash pattern derived from the stroke width.
type StrokeStyle int

const (
	// StrokeSolid draws a continuous line.
	StrokeSolid StrokeStyle = iota
	// StrokeDashed draws dashes 6 widths long separated by 2-width gaps.
	StrokeDashed
	// StrokeDotted draws zero-length dashes every 2 widths; the cap turns
	// each one into a dot.
	StrokeDotted
)

// String returns the style name.
func (s StrokeStyle) String() string {
	switch s {
	case StrokeSolid:
		return "Solid"
	case StrokeDashed:
		return "Dashed"
	case StrokeDotted:
		return "Dotted"
	}
	return "Unknown"
}

const (
	dashOn    = 6
	dashOff   = 2
	dotPeriod = 2
)

// DashFor returns the dash pattern for a style at the given stroke width.
// Solid strokes and non-positive widths have no pattern.
func DashFor(style StrokeStyle, width float64) *Dash {
	if width <= 0 {
		return nil
	}
	switch style {
	case StrokeDashed:
		return NewDash(dashOn*width, dashOff*width)
	case StrokeDotted:
		return NewDash(0, dotPeriod*width)
	}
	return nil
}
