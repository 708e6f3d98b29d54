package storage

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/ui"
)

// State is the resolution state of a Composite.
type State int

const (
	// Unresolved means no factory has been called yet.
	Unresolved State = iota
	// Resolving means a factory walk is in progress.
	Resolving
	// Resolved means a backend was found and is memoized.
	Resolved
	// Unavailable means every factory declined. It is terminal.
	Unavailable
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Resolving:
		return "Resolving"
	case Resolved:
		return "Resolved"
	case Unavailable:
		return "Unavailable"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Composite is a Provider that forwards to the first available backend
// among its factories. Factories are walked at most once, in order, on the
// first call that needs a backend; concurrent first callers share that
// walk. A Composite is safe for concurrent use.
type Composite struct {
	factories []Factory
	group     singleflight.Group

	mu      sync.Mutex
	state   State
	backend Provider
}

// NewComposite returns a Composite over factories in priority order. Nil
// factories are skipped.
func NewComposite(factories ...Factory) *Composite {
	c := &Composite{factories: make([]Factory, 0, len(factories))}
	for _, f := range factories {
		if f != nil {
			c.factories = append(c.factories, f)
		}
	}
	return c
}

// Name returns "composite".
func (c *Composite) Name() string { return "composite" }

// State returns the current resolution state.
func (c *Composite) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Backend returns the resolved backend without triggering resolution.
func (c *Composite) Backend() (Provider, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backend, c.state == Resolved
}

// CanOpen reports true: a Composite only knows its backend's capabilities
// after resolution, and resolution is deferred to the first operation.
func (c *Composite) CanOpen() bool { return true }

// CanSave reports true for the same reason as CanOpen.
func (c *Composite) CanSave() bool { return true }

// CanPickFolder reports true for the same reason as CanOpen.
func (c *Composite) CanPickFolder() bool { return true }

// cached returns the outcome of a finished walk. done is false while the
// Composite is Unresolved or Resolving.
func (c *Composite) cached() (p Provider, done bool, err error) {
	switch c.state {
	case Resolved:
		return c.backend, true, nil
	case Unavailable:
		return nil, true, ErrNoBackendAvailable
	}
	return nil, false, nil
}

// Resolve returns the memoized backend, walking the factories if this is
// the first call. A caller whose ctx ends stops waiting, but the walk
// itself runs to completion for the benefit of later calls.
func (c *Composite) Resolve(ctx context.Context) (Provider, error) {
	c.mu.Lock()
	p, done, err := c.cached()
	c.mu.Unlock()
	if done {
		return p, err
	}

	ch := c.group.DoChan("resolve", func() (any, error) {
		return c.walk(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Provider), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Composite) walk(ctx context.Context) (Provider, error) {
	c.mu.Lock()
	if p, done, err := c.cached(); done {
		c.mu.Unlock()
		return p, err
	}
	c.state = Resolving
	c.mu.Unlock()

	log := ui.Logger()
	for i, f := range c.factories {
		p, err := probe(ctx, f)
		switch {
		case err != nil:
			log.Warn("storage: backend factory failed", "index", i, "err", err)
			continue
		case p == nil:
			log.Debug("storage: backend unavailable", "index", i)
			continue
		}

		c.mu.Lock()
		c.state, c.backend = Resolved, p
		c.mu.Unlock()
		log.Info("storage: backend resolved", "backend", p.Name(), "index", i)
		return p, nil
	}

	c.mu.Lock()
	c.state = Unavailable
	c.mu.Unlock()
	log.Warn("storage: no backend available", "factories", len(c.factories))
	return nil, ErrNoBackendAvailable
}

// probe runs f, turning a panic into an error so one broken backend
// cannot take down the walk.
func probe(ctx context.Context, f Factory) (p Provider, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("storage: backend factory panicked: %v", r)
		}
	}()
	return f(ctx)
}

// OpenFilePicker resolves the backend and forwards.
func (c *Composite) OpenFilePicker(ctx context.Context, opts OpenOptions) ([]*File, error) {
	p, err := c.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return p.OpenFilePicker(ctx, opts)
}

// SaveFilePicker resolves the backend and forwards.
func (c *Composite) SaveFilePicker(ctx context.Context, opts SaveOptions) (*File, error) {
	p, err := c.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return p.SaveFilePicker(ctx, opts)
}

// OpenFolderPicker resolves the backend and forwards.
func (c *Composite) OpenFolderPicker(ctx context.Context, opts FolderOptions) ([]*Folder, error) {
	p, err := c.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return p.OpenFolderPicker(ctx, opts)
}

// FileFromBookmark resolves the backend and forwards.
func (c *Composite) FileFromBookmark(ctx context.Context, token string) (*File, error) {
	p, err := c.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return p.FileFromBookmark(ctx, token)
}

// FolderFromBookmark resolves the backend and forwards.
func (c *Composite) FolderFromBookmark(ctx context.Context, token string) (*Folder, error) {
	p, err := c.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return p.FolderFromBookmark(ctx, token)
}

var _ Provider = (*Composite)(nil)
