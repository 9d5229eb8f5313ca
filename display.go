// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdisplay

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/ggdisplay/renderer"
	"github.com/gogpu/ggdisplay/stage"
	"github.com/gogpu/ggdisplay/surface"
)

// ErrDestroyed is returned when a destroyed Display is used.
var ErrDestroyed = errors.New("ggdisplay: display destroyed")

// Display binds a surface to a stage and a renderer.
//
// A host drives a Display frame by frame: Render draws the stage to the
// surface unless the display is paused or hidden. The surface is borrowed;
// the stage and renderer are owned and released by Destroy.
//
// Display is not safe for concurrent use.
type Display struct {
	id   string
	opts Options

	surface  surface.Surface
	stage    *stage.Stage
	renderer renderer.Renderer

	// width and height hold the last surface size once the surface is
	// released.
	width, height int

	visible bool
	paused  bool
	enabled bool

	destroyed bool
}

// New creates a Display for the surface registered under id in the default
// surface registry.
func New(id string, opts Options) (*Display, error) {
	return NewWithRegistry(surface.Default(), id, opts)
}

// NewWithRegistry creates a Display for the surface registered under id in
// reg.
//
// The renderer is chosen by opts.ForceContext and sized to the surface's
// current dimensions. Input is enabled on the new display.
func NewWithRegistry(reg *surface.Registry, id string, opts Options) (*Display, error) {
	s, err := reg.Lookup(id)
	if err != nil {
		return nil, err
	}

	cfg := renderer.Config{
		Width:        s.Width(),
		Height:       s.Height(),
		Surface:      s,
		Transparent:  opts.Transparent,
		Antialias:    false,
		PreMultAlpha: opts.PreMultAlpha,
	}
	r, err := newRenderer(opts.ForceContext, cfg)
	if err != nil {
		return nil, fmt.Errorf("ggdisplay: display %q: %w", id, err)
	}
	r.SetClearView(opts.ClearView)

	d := &Display{
		id:       id,
		opts:     opts,
		surface:  s,
		stage:    stage.New(opts.BackgroundColor),
		renderer: r,
		visible:  s.Display() != surface.DisplayNone,
	}
	d.SetEnabled(true)

	Logger().Info("ggdisplay: display created",
		"id", id, "renderer", r.Kind(), "width", d.Width(), "height", d.Height())
	return d, nil
}

// newRenderer maps a context type to a renderer.
func newRenderer(ct ContextType, cfg renderer.Config) (renderer.Renderer, error) {
	switch ct {
	case ContextAuto:
		return renderer.AutoDetect(cfg)
	case ContextWebGL:
		return renderer.New(renderer.KindHardware, cfg)
	case ContextCanvas2D:
		return renderer.New(renderer.KindSoftware, cfg)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownContext, int(ct))
	}
}

// Resize sets the surface's drawable size.
//
// The renderer keeps the buffers it was created with; the surface scales
// each frame to its new size on present.
func (d *Display) Resize(width, height int) {
	if d.destroyed {
		Logger().Warn("ggdisplay: resize after destroy", "id", d.id)
		return
	}
	d.surface.SetSize(width, height)
}

// Render draws the stage once unless the display is paused or hidden.
// elapsed is the time since the previous frame; it is not interpreted.
// Failures are logged. Use RenderFrame to receive them.
func (d *Display) Render(elapsed time.Duration) {
	if err := d.RenderFrame(elapsed); err != nil {
		Logger().Warn("ggdisplay: render failed", "id", d.id, "err", err)
	}
}

// RenderFrame is like Render but returns the renderer error.
// A skipped frame returns nil; a destroyed display returns ErrDestroyed.
func (d *Display) RenderFrame(elapsed time.Duration) error {
	if d.destroyed {
		return ErrDestroyed
	}
	if d.paused || !d.visible {
		return nil
	}
	Logger().Debug("ggdisplay: frame", "id", d.id, "elapsed", elapsed)
	return d.renderer.Render(d.stage)
}

// Enabled reports whether the stage receives pointer input.
func (d *Display) Enabled() bool {
	return d.enabled
}

// SetEnabled enables or disables pointer input.
//
// Disabling forces an interaction refresh, since the stage only refreshes
// lazily while interactive.
func (d *Display) SetEnabled(v bool) {
	if d.destroyed {
		return
	}
	d.stage.SetInteractive(v)
	if !v {
		d.stage.ForceUpdateInteraction()
	}
	d.enabled = v
}

// Visible reports whether the display is shown.
func (d *Display) Visible() bool {
	return d.visible
}

// SetVisible shows or hides the surface. A hidden display renders nothing.
func (d *Display) SetVisible(v bool) {
	if d.destroyed {
		return
	}
	if v {
		d.surface.SetDisplay(surface.DisplayBlock)
	} else {
		d.surface.SetDisplay(surface.DisplayNone)
	}
	d.visible = v
}

// Paused reports whether rendering is paused.
func (d *Display) Paused() bool {
	return d.paused
}

// SetPaused pauses or resumes rendering.
func (d *Display) SetPaused(v bool) {
	d.paused = v
}

// Destroy disables input, destroys the stage subtree and the renderer, and
// releases the surface. Further calls are no-ops.
func (d *Display) Destroy() {
	if d.destroyed {
		return
	}
	d.SetEnabled(false)
	d.stage.RemoveChildren(true)
	d.stage.Destroy()
	d.renderer.Destroy()

	d.width, d.height = d.surface.Width(), d.surface.Height()
	d.stage = nil
	d.renderer = nil
	d.surface = nil
	d.destroyed = true

	Logger().Info("ggdisplay: display destroyed", "id", d.id)
}

// Destroyed reports whether Destroy has been called.
func (d *Display) Destroyed() bool {
	return d.destroyed
}

// ID returns the surface identifier the display was created with.
func (d *Display) ID() string {
	return d.id
}

// Width returns the surface's current drawable width. After Destroy it
// returns the last width seen.
func (d *Display) Width() int {
	if d.surface != nil {
		return d.surface.Width()
	}
	return d.width
}

// Height returns the surface's current drawable height. After Destroy it
// returns the last height seen.
func (d *Display) Height() int {
	if d.surface != nil {
		return d.surface.Height()
	}
	return d.height
}

// Options returns the options the display was created with.
func (d *Display) Options() Options {
	return d.opts
}

// Stage returns the root scene node, or nil after Destroy.
func (d *Display) Stage() *stage.Stage {
	return d.stage
}

// Renderer returns the renderer, or nil after Destroy.
func (d *Display) Renderer() renderer.Renderer {
	return d.renderer
}

// Surface returns the bound surface, or nil after Destroy.
func (d *Display) Surface() surface.Surface {
	return d.surface
}
