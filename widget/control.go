// Package widget defines the control tree consumed by the renderers.
//
// Controls are plain data: geometry in logical units relative to the
// parent, state flags, an optional theme override, and whatever visual
// properties their kind needs. Layout and input handling live elsewhere;
// this package only describes what a control looks like right now.
package widget

import (
	"strings"

	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/theme"
)

// Control is a node of the widget tree.
type Control interface {
	// Kind returns the control's type tag.
	Kind() *Kind
	// Bounds returns the client rectangle in the parent's logical
	// coordinate space.
	Bounds() geom.Rect
	// State returns the visual state flags.
	State() State
	// Theme returns the control's theme override, or nil to inherit.
	Theme() *theme.Theme
}

// Container is a control with children.
type Container interface {
	Control
	Children() []Control
}

// State is a set of visual state flags.
type State uint8

const (
	StateDisabled State = 1 << iota
	StateHovered
	StatePressed
	StateFocused
	StateChecked
)

var stateNames = [...]string{"Disabled", "Hovered", "Pressed", "Focused", "Checked"}

// Has reports whether all flags of s2 are set.
func (s State) Has(s2 State) bool { return s&s2 == s2 }

// String returns the set flags joined by "|", or "Normal".
func (s State) String() string {
	if s == 0 {
		return "Normal"
	}
	var parts []string
	for i, name := range stateNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Orientation is the main axis of a control.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Base holds the fields every control shares. Embed it and add a Kind
// method.
type Base struct {
	bounds geom.Rect
	state  State
	theme  *theme.Theme
}

// Bounds implements Control.
func (b *Base) Bounds() geom.Rect { return b.bounds }

// SetBounds moves or resizes the control.
func (b *Base) SetBounds(r geom.Rect) { b.bounds = r }

// State implements Control.
func (b *Base) State() State { return b.state }

// SetState replaces the state flags.
func (b *Base) SetState(s State) { b.state = s }

// Theme implements Control.
func (b *Base) Theme() *theme.Theme { return b.theme }

// SetTheme sets a theme override for this control and its descendants.
func (b *Base) SetTheme(t *theme.Theme) { b.theme = t }
