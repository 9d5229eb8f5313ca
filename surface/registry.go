// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sort"
	"sync"
)

// NotFoundError is returned when no surface is registered under an id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("surface: no surface registered with id %q", e.ID)
}

// defaultRegistry is the registry used by the package-level functions.
var defaultRegistry = NewRegistry()

// Registry maps identifiers to host-owned surfaces.
//
// The registry holds borrowed references: unregistering a surface does not
// release it, and displays keep working with a surface after it has been
// unregistered.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Surface
}

// NewRegistry creates a new empty registry.
// Most code should use the default registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Surface),
	}
}

// Default returns the default registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a surface to the default registry.
func Register(id string, s Surface) {
	defaultRegistry.Register(id, s)
}

// Unregister removes a surface from the default registry.
func Unregister(id string) {
	defaultRegistry.Unregister(id)
}

// Lookup returns the surface registered under id in the default registry.
func Lookup(id string) (Surface, error) {
	return defaultRegistry.Lookup(id)
}

// IDs returns the identifiers in the default registry, sorted.
func IDs() []string {
	return defaultRegistry.IDs()
}

// Register adds a surface under id.
// Registering an id that already exists replaces the previous surface.
// A nil surface is ignored.
func (r *Registry) Register(id string, s Surface) {
	if s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]Surface)
	}
	r.entries[id] = s
}

// Unregister removes the surface registered under id.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
}

// Lookup returns the surface registered under id.
// Returns a *NotFoundError if there is none.
func (r *Registry) Lookup(id string) (Surface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.entries[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return s, nil
}

// IDs returns all registered identifiers, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
