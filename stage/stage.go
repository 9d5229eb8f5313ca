// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"github.com/gogpu/gg"
)

// Stage is the root node of a scene graph.
//
// The background colour is painted by the renderer before the children when
// the display is not transparent. A new stage is not interactive.
type Stage struct {
	Container

	background  uint32
	interaction InteractionManager

	onDown PointerFunc
	onUp   PointerFunc
	onMove PointerFunc

	pointerX, pointerY float64
}

// New creates an empty stage with a 0xRRGGBB background colour.
func New(background uint32) *Stage {
	return &Stage{background: background & 0xFFFFFF}
}

// BackgroundColor returns the 0xRRGGBB background colour.
func (s *Stage) BackgroundColor() uint32 {
	return s.background
}

// SetBackgroundColor sets the 0xRRGGBB background colour.
func (s *Stage) SetBackgroundColor(hex uint32) {
	s.background = hex & 0xFFFFFF
}

// Background returns the opaque background colour.
func (s *Stage) Background() gg.RGBA {
	return ColorFromHex(s.background, 1)
}

// AddChild appends n and schedules an interaction refresh.
func (s *Stage) AddChild(n Node) {
	s.Container.AddChild(n)
	s.interaction.MarkDirty()
}

// RemoveChild detaches n and schedules an interaction refresh.
func (s *Stage) RemoveChild(n Node) bool {
	if !s.Container.RemoveChild(n) {
		return false
	}
	s.interaction.MarkDirty()
	return true
}

// RemoveChildren detaches all children, destroying them when recursive is
// true, and schedules an interaction refresh.
func (s *Stage) RemoveChildren(recursive bool) {
	s.Container.RemoveChildren(recursive)
	s.interaction.MarkDirty()
}

// SetInteractive enables or disables pointer input on the stage.
//
// The interaction manager picks up the change lazily, and only while the
// stage is interactive. After disabling, call ForceUpdateInteraction so the
// manager drops its targets.
func (s *Stage) SetInteractive(v bool) {
	s.Base.SetInteractive(v)
	s.interaction.MarkDirty()
}

// ForceUpdateInteraction rebuilds the interaction target set immediately,
// regardless of the stage's interactive state.
func (s *Stage) ForceUpdateInteraction() {
	s.interaction.Update(s)
}

// Interaction returns the stage's interaction manager.
func (s *Stage) Interaction() *InteractionManager {
	return &s.interaction
}

// OnPointerDown sets the handler for PointerDown events.
func (s *Stage) OnPointerDown(fn PointerFunc) {
	s.onDown = fn
}

// OnPointerUp sets the handler for PointerUp events.
func (s *Stage) OnPointerUp(fn PointerFunc) {
	s.onUp = fn
}

// OnPointerMove sets the handler for PointerMove events.
func (s *Stage) OnPointerMove(fn PointerFunc) {
	s.onMove = fn
}

// DispatchPointer delivers ev to the matching handler.
//
// The pointer position is always tracked. The handler runs only if the
// interaction manager has targets after its lazy refresh. DispatchPointer
// reports whether a handler ran.
func (s *Stage) DispatchPointer(ev PointerEvent) bool {
	if s.destroyed {
		return false
	}
	s.pointerX, s.pointerY = ev.X, ev.Y

	s.interaction.refresh(s)
	if !s.interaction.Active() {
		return false
	}

	var fn PointerFunc
	switch ev.Kind {
	case PointerDown:
		fn = s.onDown
	case PointerUp:
		fn = s.onUp
	case PointerMove:
		fn = s.onMove
	}
	if fn == nil {
		return false
	}
	fn(ev)
	return true
}

// PointerPosition returns the last known pointer position.
func (s *Stage) PointerPosition() (x, y float64) {
	return s.pointerX, s.pointerY
}

// Destroy releases the stage. Handlers and interaction targets are dropped;
// children are detached but not destroyed.
func (s *Stage) Destroy() {
	s.onDown, s.onUp, s.onMove = nil, nil, nil
	s.interaction.clear()
	s.Container.Destroy()
}

var _ Node = (*Stage)(nil)
