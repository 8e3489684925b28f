// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"sort"
	"sync"
)

// Factory creates a backend.
type Factory func() Backend

// Entry is a registered backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: hardware APIs (Vulkan, Metal, D3D12)
	//   - 0: headless backends (noop)
	Priority int

	// Factory creates backend instances.
	Factory Factory
}

// NotFoundError indicates a named backend is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "backend: not found: " + e.Name
}

// Registry manages registered backends. Most code uses the package-level
// functions, which operate on a global registry.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

var globalRegistry = NewRegistry()

// Register adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Available returns registered backend names, highest priority first.
func Available() []string {
	return globalRegistry.Available()
}

// IsRegistered reports whether name is in the global registry.
func IsRegistered(name string) bool {
	return globalRegistry.IsRegistered(name)
}

// Get returns the named backend from the global registry.
func Get(name string) (Backend, error) {
	return globalRegistry.Get(name)
}

// Default returns the highest priority backend of the global registry.
func Default() (Backend, error) {
	return globalRegistry.Default()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[name] = Entry{Name: name, Priority: priority, Factory: factory}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// IsRegistered reports whether name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Available returns registered names sorted by priority (highest first),
// ties broken by name.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Get creates the named backend.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	b := entry.Factory()
	if b == nil {
		return nil, ErrBackendNotAvailable
	}
	return b, nil
}

// Default creates the first backend, in priority order, whose factory
// returns non-nil.
func (r *Registry) Default() (Backend, error) {
	for _, name := range r.Available() {
		if b, err := r.Get(name); err == nil {
			return b, nil
		}
	}
	return nil, ErrBackendNotAvailable
}
