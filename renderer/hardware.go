// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/ggdisplay/stage"
	"github.com/gogpu/ggdisplay/surface"
)

// Hardware is a GPU renderer sharing the host's device through ggcanvas.
//
// Frames are drawn into the canvas and uploaded as a texture. When the
// surface supplies a texture drawer the texture is drawn to the window;
// otherwise the pixels are read back and presented like a software frame.
type Hardware struct {
	cfg       Config
	gpu       surface.GPUSurface
	canvas    *ggcanvas.Canvas
	clearView bool
	frames    int
}

// NewHardware creates a GPU renderer for cfg.
// cfg.Surface must implement surface.GPUSurface with a non-nil device
// provider, otherwise ErrNoDeviceProvider is returned.
func NewHardware(cfg Config) (*Hardware, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	gs, ok := cfg.Surface.(surface.GPUSurface)
	if !ok || gs.DeviceProvider() == nil {
		return nil, ErrNoDeviceProvider
	}

	canvas, err := ggcanvas.New(gs.DeviceProvider(), cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("renderer: hardware canvas: %w", err)
	}
	gg.Logger().Debug("renderer: hardware created",
		"width", cfg.Width, "height", cfg.Height, "format", gs.Format())

	return &Hardware{
		cfg:    cfg,
		gpu:    gs,
		canvas: canvas,
	}, nil
}

// Kind returns KindHardware.
func (r *Hardware) Kind() Kind {
	return KindHardware
}

// Render draws s into the canvas and presents it.
func (r *Hardware) Render(s *stage.Stage) error {
	if r.canvas == nil {
		return ErrDestroyed
	}
	if s == nil {
		return ErrNilStage
	}

	state := stage.DrawState{PremultipliedAlpha: r.cfg.PreMultAlpha}
	if err := r.canvas.Draw(func(dc *gg.Context) {
		paintFrame(dc, s, r.cfg, r.clearView, state)
	}); err != nil {
		return fmt.Errorf("renderer: hardware draw: %w", err)
	}

	if err := r.present(); err != nil {
		return err
	}
	r.frames++
	return nil
}

// present uploads the canvas and hands it to the surface.
func (r *Hardware) present() error {
	if dc := r.gpu.TextureDrawer(); dc != nil {
		if err := r.canvas.RenderTo(dc); err != nil {
			return fmt.Errorf("renderer: hardware present: %w", err)
		}
		return nil
	}

	if _, err := r.canvas.Flush(); err != nil {
		return fmt.Errorf("renderer: hardware flush: %w", err)
	}
	if err := r.gpu.Present(r.canvas.Context().Image()); err != nil {
		return fmt.Errorf("renderer: present: %w", err)
	}
	return nil
}

// ClearView reports whether transparent frames are wiped before drawing.
func (r *Hardware) ClearView() bool {
	return r.clearView
}

// SetClearView sets whether transparent frames are wiped before drawing.
func (r *Hardware) SetClearView(v bool) {
	r.clearView = v
}

// Frames returns the number of frames presented.
func (r *Hardware) Frames() int {
	return r.frames
}

// Canvas returns the underlying canvas, or nil after Destroy.
func (r *Hardware) Canvas() *ggcanvas.Canvas {
	return r.canvas
}

// Destroy closes the canvas, releasing its GPU texture, and drops the
// surface reference.
func (r *Hardware) Destroy() {
	if r.canvas == nil {
		return
	}
	if err := r.canvas.Close(); err != nil {
		gg.Logger().Warn("renderer: hardware close failed", "err", err)
	}
	r.canvas = nil
	r.gpu = nil
	r.cfg.Surface = nil
}

var _ Renderer = (*Hardware)(nil)
