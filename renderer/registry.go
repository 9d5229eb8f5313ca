// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggdisplay/surface"
)

// Factory creates a renderer for cfg.
type Factory func(cfg Config) (Renderer, error)

// Probe reports whether a renderer kind can serve cfg.
type Probe func(cfg Config) bool

// Standard priorities.
const (
	PriorityHardware = 100
	PrioritySoftware = 10
)

type entry struct {
	kind      Kind
	priority  int
	factory   Factory
	available Probe
}

// registry holds registered renderer factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[Kind]*entry)
)

func init() {
	Register(KindHardware, PriorityHardware, func(cfg Config) (Renderer, error) {
		return NewHardware(cfg)
	}, HasDeviceProvider)
	Register(KindSoftware, PrioritySoftware, func(cfg Config) (Renderer, error) {
		return NewSoftware(cfg)
	}, nil)
}

// Register registers a renderer factory for kind.
// If available is nil, the kind is assumed always available.
// Registering a kind that already exists replaces the previous entry.
func Register(kind Kind, priority int, factory Factory, available Probe) {
	if available == nil {
		available = func(Config) bool { return true }
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[kind] = &entry{
		kind:      kind,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

// Unregister removes the factory for kind.
// This is useful for testing.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// IsRegistered reports whether a factory is registered for kind.
func IsRegistered(kind Kind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}

// Available returns the kinds available for cfg, highest priority first.
func Available(cfg Config) []Kind {
	entries := sortedEntries()
	kinds := make([]Kind, 0, len(entries))
	for _, e := range entries {
		if e.available(cfg) {
			kinds = append(kinds, e.kind)
		}
	}
	return kinds
}

// New creates a renderer of the given kind.
func New(kind Kind, cfg Config) (Renderer, error) {
	registryMu.RLock()
	e, ok := factories[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s not registered", ErrNoRenderer, kind)
	}
	return e.factory(cfg)
}

// AutoDetect creates the highest-priority renderer that is available for
// cfg and constructs without error.
func AutoDetect(cfg Config) (Renderer, error) {
	var errs []error
	for _, e := range sortedEntries() {
		if !e.available(cfg) {
			continue
		}
		r, err := e.factory(cfg)
		if err == nil {
			gg.Logger().Debug("renderer: auto-detected", "kind", e.kind)
			return r, nil
		}
		gg.Logger().Warn("renderer: falling back", "kind", e.kind, "err", err)
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoRenderer, errors.Join(errs...))
	}
	return nil, ErrNoRenderer
}

// HasDeviceProvider is the hardware availability probe: the surface must be
// a surface.GPUSurface with a device provider.
func HasDeviceProvider(cfg Config) bool {
	gs, ok := cfg.Surface.(surface.GPUSurface)
	return ok && gs.DeviceProvider() != nil
}

// sortedEntries returns a snapshot of the registry sorted by priority,
// highest first.
func sortedEntries() []*entry {
	registryMu.RLock()
	entries := make([]*entry, 0, len(factories))
	for _, e := range factories {
		entries = append(entries, e)
	}
	registryMu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].kind < entries[j].kind
	})
	return entries
}
