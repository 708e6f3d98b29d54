package widget

import (
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/paint"
	"github.com/gogpu/ui/theme"
)

// Panel is a container that fills its bounds with a theme color and
// optionally outlines them.
type Panel struct {
	Base
	children []Control

	// Background is the theme color key of the fill. Empty draws no
	// background.
	Background string
	// Border outlines the panel with BorderColor in BorderStyle.
	Border      bool
	BorderStyle paint.StrokeStyle
}

// NewPanel creates a panel with the default background.
func NewPanel(bounds geom.Rect, children ...Control) *Panel {
	p := &Panel{Background: theme.BackgroundColor}
	p.bounds = bounds
	p.children = append(p.children, children...)
	return p
}

// Kind implements Control.
func (*Panel) Kind() *Kind { return KindPanel }

// Children implements Container.
func (p *Panel) Children() []Control { return p.children }

// Add appends children.
func (p *Panel) Add(children ...Control) { p.children = append(p.children, children...) }

// Splitter is the draggable bar between two panes. Horizontal splitters
// separate panes stacked vertically and span the full width.
type Splitter struct {
	Base
	orientation Orientation
}

// NewSplitter creates a splitter.
func NewSplitter(bounds geom.Rect, o Orientation) *Splitter {
	s := &Splitter{orientation: o}
	s.bounds = bounds
	return s
}

// Kind implements Control.
func (*Splitter) Kind() *Kind { return KindSplitter }

// Orientation returns the splitter orientation.
func (s *Splitter) Orientation() Orientation { return s.orientation }

// Button is a push button with a text caption.
type Button struct {
	Base
	text string
}

// NewButton creates a button.
func NewButton(bounds geom.Rect, text string) *Button {
	b := &Button{text: text}
	b.bounds = bounds
	return b
}

// Kind implements Control.
func (*Button) Kind() *Kind { return KindButton }

// Text returns the caption.
func (b *Button) Text() string { return b.text }

// SetText replaces the caption.
func (b *Button) SetText(s string) { b.text = s }

// ToggleButton is a button that stays pressed while checked.
type ToggleButton struct {
	Button
}

// NewToggleButton creates a toggle button.
func NewToggleButton(bounds geom.Rect, text string, checked bool) *ToggleButton {
	t := &ToggleButton{Button: Button{text: text}}
	t.bounds = bounds
	t.SetChecked(checked)
	return t
}

// Kind implements Control.
func (*ToggleButton) Kind() *Kind { return KindToggleButton }

// Checked reports whether the toggle is on.
func (t *ToggleButton) Checked() bool { return t.state.Has(StateChecked) }

// SetChecked switches the toggle on or off.
func (t *ToggleButton) SetChecked(on bool) {
	if on {
		t.state |= StateChecked
	} else {
		t.state &^= StateChecked
	}
}

// CheckBox is a toggle drawn as a box with a check mark and a caption.
type CheckBox struct {
	ToggleButton
}

// NewCheckBox creates a check box.
func NewCheckBox(bounds geom.Rect, text string, checked bool) *CheckBox {
	c := &CheckBox{}
	c.text = text
	c.bounds = bounds
	c.SetChecked(checked)
	return c
}

// Kind implements Control.
func (*CheckBox) Kind() *Kind { return KindCheckBox }

// Label is a single line of static text.
type Label struct {
	Base
	text string

	// Decoration styles the text.
	Decoration paint.Decoration
	// Color is the theme color key of the text.
	Color string
}

// NewLabel creates a label drawn with ForegroundColor.
func NewLabel(bounds geom.Rect, text string) *Label {
	l := &Label{text: text, Color: theme.ForegroundColor}
	l.bounds = bounds
	return l
}

// Kind implements Control.
func (*Label) Kind() *Kind { return KindLabel }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(s string) { l.text = s }

// ProgressBar shows a fraction of completed work along its main axis.
type ProgressBar struct {
	Base
	orientation Orientation
	value       float64
}

// NewProgressBar creates a progress bar. value is clamped to [0, 1].
func NewProgressBar(bounds geom.Rect, o Orientation, value float64) *ProgressBar {
	p := &ProgressBar{orientation: o}
	p.bounds = bounds
	p.SetValue(value)
	return p
}

// Kind implements Control.
func (*ProgressBar) Kind() *Kind { return KindProgressBar }

// Orientation returns the main axis.
func (p *ProgressBar) Orientation() Orientation { return p.orientation }

// Value returns the completed fraction in [0, 1].
func (p *ProgressBar) Value() float64 { return p.value }

// SetValue sets the completed fraction, clamped to [0, 1]. NaN counts as 0.
func (p *ProgressBar) SetValue(v float64) {
	switch {
	case !(v > 0):
		v = 0
	case v > 1:
		v = 1
	}
	p.value = v
}
