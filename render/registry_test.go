package render

import (
	"errors"
	"testing"

	"github.com/gogpu/ui/widget"
)

// stubRenderer records the controls it was asked to paint.
type stubRenderer struct {
	target *widget.Kind
	calls  []widget.Control
}

func (s *stubRenderer) Target() *widget.Kind { return s.target }

func (s *stubRenderer) Render(c widget.Control, _ *Context) { s.calls = append(s.calls, c) }

func TestRegistry_ResolveExact(t *testing.T) {
	reg := NewRegistry()
	button := &stubRenderer{target: widget.KindButton}
	toggle := &stubRenderer{target: widget.KindToggleButton}
	reg.Register(button)
	reg.Register(toggle)

	tests := []struct {
		kind *widget.Kind
		want Renderer
	}{
		{widget.KindButton, button},
		{widget.KindToggleButton, toggle},
		{widget.KindCheckBox, toggle},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Name(), func(t *testing.T) {
			got, err := reg.Resolve(tt.kind)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got.Target(), tt.want.Target())
			}
			if !tt.kind.IsA(got.Target()) {
				t.Errorf("target %v is not an ancestor of %v", got.Target(), tt.kind)
			}
		})
	}
}

func TestRegistry_FallbackAfterUnregister(t *testing.T) {
	reg := NewRegistry()
	button := &stubRenderer{target: widget.KindButton}
	toggle := &stubRenderer{target: widget.KindToggleButton}
	reg.Register(button)
	reg.Register(toggle)

	if !reg.Unregister(widget.KindToggleButton) {
		t.Fatal("Unregister() = false, want true")
	}
	if reg.Unregister(widget.KindToggleButton) {
		t.Error("second Unregister() = true, want false")
	}

	got, err := reg.Resolve(widget.KindToggleButton)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != button {
		t.Errorf("Resolve() = %v, want the button renderer", got.Target())
	}
}

func TestRegistry_NoRenderer(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubRenderer{target: widget.KindButton})

	_, err := reg.Resolve(widget.KindSplitter)
	if !errors.Is(err, ErrNoRendererRegistered) {
		t.Fatalf("Resolve() error = %v, want ErrNoRendererRegistered", err)
	}
	var nre *NoRendererError
	if !errors.As(err, &nre) || nre.Kind != widget.KindSplitter {
		t.Errorf("error = %#v, want *NoRendererError for Splitter", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustResolve() did not panic")
		}
	}()
	reg.MustResolve(widget.KindSplitter)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		r    Renderer
	}{
		{"nil renderer", nil},
		{"nil target", &stubRenderer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			NewRegistry().Register(tt.r)
		})
	}

	t.Run("duplicate", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(&stubRenderer{target: widget.KindLabel})
		defer func() {
			if recover() == nil {
				t.Error("duplicate Register() did not panic")
			}
		}()
		reg.Register(&stubRenderer{target: widget.KindLabel})
	})
}

func TestRegistry_Kinds(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubRenderer{target: widget.KindToggleButton})
	reg.Register(&stubRenderer{target: widget.KindButton})

	kinds := reg.Kinds()
	if len(kinds) != 2 || kinds[0] != widget.KindButton || kinds[1] != widget.KindToggleButton {
		t.Errorf("Kinds() = %v", kinds)
	}
}
