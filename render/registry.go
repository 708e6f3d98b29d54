package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/widget"
)

// Renderer paints one kind of control.
//
// Render reads the control's visual state and draws it through pc. It must
// not modify the control and must draw nothing for empty or negative
// geometry. Renderers are shared by every control of their kind and should
// hold no per-call state.
type Renderer interface {
	// Target returns the kind this renderer is registered for.
	Target() *widget.Kind

	// Render paints c. Its bounds are in the logical coordinate space of
	// pc; use pc.DeviceRect to convert them.
	Render(c widget.Control, pc *Context)
}

// ErrNoRendererRegistered is matched by every *NoRendererError.
var ErrNoRendererRegistered = errors.New("render: no renderer registered")

// NoRendererError reports a control kind whose whole ancestry lacks a
// renderer.
type NoRendererError struct {
	Kind *widget.Kind
}

func (e *NoRendererError) Error() string {
	return fmt.Sprintf("render: no renderer registered for %s", e.Kind)
}

// Unwrap returns ErrNoRendererRegistered.
func (e *NoRendererError) Unwrap() error { return ErrNoRendererRegistered }

// Registry maps control kinds to renderers.
//
// Registration is static: renderers are registered once, typically from
// init functions, and a kind may have at most one renderer.
type Registry struct {
	mu        sync.RWMutex
	renderers map[*widget.Kind]Renderer
}

// Default is the registry used by NewPainter(nil). Importing
// render/renderers populates it with the built-in renderers.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[*widget.Kind]Renderer)}
}

// Register adds r under r.Target(). It panics if r or its target is nil
// or the target already has a renderer, like database/sql.Register does
// for drivers.
func (reg *Registry) Register(r Renderer) {
	if r == nil {
		panic("render: Register renderer is nil")
	}
	kind := r.Target()
	if kind == nil {
		panic("render: Register renderer has nil target kind")
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, dup := reg.renderers[kind]; dup {
		panic("render: Register called twice for kind " + kind.String())
	}
	reg.renderers[kind] = r
}

// Unregister removes the renderer registered for exactly kind, if any, and
// reports whether one was removed. Ancestor registrations are untouched.
func (reg *Registry) Unregister(kind *widget.Kind) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	_, ok := reg.renderers[kind]
	delete(reg.renderers, kind)
	return ok
}

// Resolve returns the renderer for kind or its nearest registered
// ancestor.
func (reg *Registry) Resolve(kind *widget.Kind) (Renderer, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	for k := kind; k != nil; k = k.Parent() {
		if r, ok := reg.renderers[k]; ok {
			if k != kind {
				ui.Logger().Debug("render: renderer fallback", "kind", kind.Name(), "using", k.Name())
			}
			return r, nil
		}
	}
	return nil, &NoRendererError{Kind: kind}
}

// MustResolve is like Resolve but panics if no renderer is found.
func (reg *Registry) MustResolve(kind *widget.Kind) Renderer {
	r, err := reg.Resolve(kind)
	if err != nil {
		panic(err)
	}
	return r
}

// Kinds returns the kinds with a registered renderer, sorted by their
// hierarchy path.
func (reg *Registry) Kinds() []*widget.Kind {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	kinds := make([]*widget.Kind, 0, len(reg.renderers))
	for k := range reg.renderers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].String() < kinds[j].String() })
	return kinds
}
