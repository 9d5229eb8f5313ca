// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

// PointerKind identifies a pointer event.
type PointerKind int

const (
	// PointerMove is sent when the pointer moves.
	PointerMove PointerKind = iota

	// PointerDown is sent when a button or touch is pressed.
	PointerDown

	// PointerUp is sent when a button or touch is released.
	PointerUp
)

// String returns the event kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer or touch event in stage coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerFunc handles a pointer event.
type PointerFunc func(ev PointerEvent)

// InteractionManager tracks which nodes of a stage receive pointer input.
//
// The target set is refreshed lazily when the stage is interactive and the
// manager is dirty. Update refreshes unconditionally.
type InteractionManager struct {
	targets []Node
	dirty   bool
	updates int
}

// Update rebuilds the target set from s. A non-interactive stage yields
// an empty set.
func (m *InteractionManager) Update(s *Stage) {
	m.targets = m.targets[:0]
	if s.Interactive() {
		m.targets = append(m.targets, s)
		s.walk(func(n Node) {
			if n.base().interactive {
				m.targets = append(m.targets, n)
			}
		})
	}
	m.dirty = false
	m.updates++
}

// MarkDirty schedules a refresh on the next lazy update.
func (m *InteractionManager) MarkDirty() {
	m.dirty = true
}

// Dirty reports whether a refresh is pending.
func (m *InteractionManager) Dirty() bool {
	return m.dirty
}

// Active reports whether any node receives input.
func (m *InteractionManager) Active() bool {
	return len(m.targets) > 0
}

// Targets returns a copy of the current target set.
func (m *InteractionManager) Targets() []Node {
	out := make([]Node, len(m.targets))
	copy(out, m.targets)
	return out
}

// UpdateCount returns how many times the target set has been rebuilt.
func (m *InteractionManager) UpdateCount() int {
	return m.updates
}

// refresh rebuilds the target set if dirty, but only for an interactive
// stage.
func (m *InteractionManager) refresh(s *Stage) {
	if m.dirty && s.Interactive() {
		m.Update(s)
	}
}

// clear drops every target.
func (m *InteractionManager) clear() {
	m.targets = nil
	m.dirty = false
}
