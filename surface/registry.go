// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/graphpaper/internal/logging"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered surface implementation.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	//   - 10: rasterizing software backends
	//   - 1: non-rendering backends (recorders)
	Priority int

	// Factory creates surface instances.
	Factory Factory
}

// Registry maps backend names to surface factories.
//
// The registry lets display backends pick a rendering surface by name
// without importing its package:
//
//	func init() {
//	    surface.Register("svg", 5, newSVGSurface)
//	}
//
//	s, err := surface.NewSurfaceByName("svg", DefaultOptions(800, 600))
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

var globalRegistry = NewRegistry()

// Register adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Names returns the globally registered backend names, highest priority first.
func Names() []string {
	return globalRegistry.Names()
}

// NewSurface creates a surface using the best global backend.
func NewSurface(opts Options) (Surface, error) {
	return globalRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a surface using a specific global backend.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	if factory == nil {
		panic("surface: Register factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: factory}
}

// Unregister removes a backend from this registry.
// If the backend is not registered, this is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Lookup returns a registered backend.
func (r *Registry) Lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// Names returns backend names sorted by priority, highest first. Ties
// are broken by name so the order is stable.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Priority != all[j].Priority {
			return all[i].Priority > all[j].Priority
		}
		return all[i].Name < all[j].Name
	})

	names := make([]string, len(all))
	for i, b := range all {
		names[i] = b.Name
	}
	return names
}

// NewSurface tries each backend in priority order and returns the first
// surface that could be created.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Names()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	logging.Logger().Debug("surface: creating", "backend", name, "width", opts.Width, "height", opts.Height)
	return b.Factory(opts)
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface backends are registered.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrClosed is returned by operations that need a live surface.
	ErrClosed = errors.New("surface: surface is closed")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// init registers the built-in surfaces. "image" rasterizes with gg and is
// preferred; "recorder" keeps only the display list.
func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		s := NewImageSurface(opts.Width, opts.Height)
		if opts.BackgroundColor != nil {
			s.SetBackground(opts.BackgroundColor)
		}
		return s, nil
	})
	Register("recorder", 1, func(opts Options) (Surface, error) {
		r := NewRecorder(opts.Width, opts.Height)
		if opts.BackgroundColor != nil {
			r.background = opts.BackgroundColor
		}
		return r, nil
	})
}
