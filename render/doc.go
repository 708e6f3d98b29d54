// Package render paints control trees onto a paint.Canvas.
//
// # Architecture
//
// Every control kind has exactly one Renderer, kept in a Registry keyed by
// widget.Kind. Resolution walks the kind hierarchy from the most derived
// kind to its ancestors and returns the first registered renderer, so a
// custom control deriving from widget.KindButton is painted as a button
// until it gets a renderer of its own.
//
//	Painter.Paint(canvas, root, scale)
//	    │
//	    ├── NewContext(canvas, scale)       per pass, borrows the canvas
//	    │
//	    └── for each control, depth first
//	        ├── Registry.Resolve(c.Kind())  exact kind, then parents
//	        ├── Renderer.Render(c, pc)      brushes → canvas primitives
//	        └── clip + translate into the children
//
// The built-in renderers live in render/renderers and register themselves
// into Default when that package is imported.
//
// # Errors
//
// A kind with no renderer anywhere in its ancestry is a programming error.
// Resolve reports it as a *NoRendererError matching ErrNoRendererRegistered,
// Painter.Paint stops at the first such control and returns it, and
// MustResolve panics with it.
//
// # Thread Safety
//
// A Registry is safe for concurrent use. A Context belongs to a single
// paint pass on a single goroutine.
package render
