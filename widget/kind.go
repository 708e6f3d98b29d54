package widget

// Kind is the stable type tag of a control. Kinds form a single-inheritance
// hierarchy through their parent link; renderer lookup walks it from the
// most derived kind towards KindControl.
//
// Kinds are compared by identity. Create them once, as package-level
// variables.
type Kind struct {
	name   string
	parent *Kind
}

// NewKind declares a kind derived from parent. A nil parent makes a root
// kind; application kinds should derive from KindControl or one of its
// descendants.
func NewKind(name string, parent *Kind) *Kind {
	return &Kind{name: name, parent: parent}
}

// Name returns the kind name.
func (k *Kind) Name() string { return k.name }

// Parent returns the base kind, or nil for a root.
func (k *Kind) Parent() *Kind { return k.parent }

// IsA reports whether k is other or derives from it.
func (k *Kind) IsA(other *Kind) bool {
	for c := k; c != nil; c = c.parent {
		if c == other {
			return true
		}
	}
	return false
}

// String returns the kind path from the root, e.g. "Control/Button/ToggleButton".
func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	if k.parent == nil {
		return k.name
	}
	return k.parent.String() + "/" + k.name
}

// Built-in kinds.
var (
	KindControl      = NewKind("Control", nil)
	KindPanel        = NewKind("Panel", KindControl)
	KindSplitter     = NewKind("Splitter", KindControl)
	KindButton       = NewKind("Button", KindControl)
	KindToggleButton = NewKind("ToggleButton", KindButton)
	KindCheckBox     = NewKind("CheckBox", KindToggleButton)
	KindLabel        = NewKind("Label", KindControl)
	KindProgressBar  = NewKind("ProgressBar", KindControl)
)
