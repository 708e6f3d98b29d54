package storage

import (
	"context"
	"sort"
	"sync"
)

// RegistryEntry represents a registered storage backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines probe order (higher = probed first).
	// Standard priorities:
	//   - 100: desktop portals
	//   - 50: external dialog helpers
	//   - 10: scripted or in-memory backends
	Priority int

	// Factory probes for and creates the backend.
	Factory Factory
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered storage backends.
//
// Backends register themselves from init so that importing a backend
// package is enough to make it a candidate:
//
//	import _ "github.com/gogpu/ui/storage/portal"
//
//	p := storage.NewDefault()
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewDefault.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// NewDefault returns a Composite over every backend in the global
// registry, in priority order.
func NewDefault() *Composite {
	return globalRegistry.NewComposite()
}

// Register adds a backend to this registry. A nil factory is ignored.
func (r *Registry) Register(name string, priority int, factory Factory) {
	if factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[name] = &RegistryEntry{
		Name:     name,
		Priority: priority,
		Factory:  factory,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.sorted()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// Factories returns the registered factories in priority order. Factory
// errors are wrapped in a BackendError naming the backend.
func (r *Registry) Factories() []Factory {
	r.mu.RLock()
	entries := r.sorted()
	r.mu.RUnlock()

	fs := make([]Factory, len(entries))
	for i, e := range entries {
		fs[i] = named(e.Name, e.Factory)
	}
	return fs
}

// NewComposite returns a Composite over this registry's backends. The
// set of backends is fixed when NewComposite is called.
func (r *Registry) NewComposite() *Composite {
	return NewComposite(r.Factories()...)
}

func named(name string, f Factory) Factory {
	return func(ctx context.Context) (Provider, error) {
		p, err := f(ctx)
		if err != nil {
			return nil, &BackendError{Backend: name, Op: "probe", Err: err}
		}
		return p, nil
	}
}

// sorted returns entries by priority (highest first), then by name.
// Must be called with lock held.
func (r *Registry) sorted() []RegistryEntry {
	entries := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
