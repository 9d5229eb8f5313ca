// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggdisplay/stage"
)

// Software is a CPU renderer backed by a gg.Context.
//
// Each frame is rasterized into the context's pixmap and then copied onto
// the surface.
type Software struct {
	cfg       Config
	dc        *gg.Context
	clearView bool
	frames    int
}

// NewSoftware creates a CPU renderer for cfg.
func NewSoftware(cfg Config) (*Software, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	gg.Logger().Debug("renderer: software created", "width", cfg.Width, "height", cfg.Height)
	return &Software{
		cfg: cfg,
		dc:  gg.NewContext(cfg.Width, cfg.Height),
	}, nil
}

// Kind returns KindSoftware.
func (r *Software) Kind() Kind {
	return KindSoftware
}

// Render draws s and presents the frame to the surface.
func (r *Software) Render(s *stage.Stage) error {
	if r.dc == nil {
		return ErrDestroyed
	}
	if s == nil {
		return ErrNilStage
	}

	// Straight alpha: premultiplied textures are a hardware option only.
	paintFrame(r.dc, s, r.cfg, r.clearView, stage.DrawState{})

	if err := r.dc.FlushGPU(); err != nil {
		gg.Logger().Warn("renderer: flush failed, presenting CPU pixels", "err", err)
	}
	if err := r.cfg.Surface.Present(r.dc.Image()); err != nil {
		return fmt.Errorf("renderer: present: %w", err)
	}
	r.frames++
	return nil
}

// ClearView reports whether transparent frames are wiped before drawing.
func (r *Software) ClearView() bool {
	return r.clearView
}

// SetClearView sets whether transparent frames are wiped before drawing.
func (r *Software) SetClearView(v bool) {
	r.clearView = v
}

// Frames returns the number of frames presented.
func (r *Software) Frames() int {
	return r.frames
}

// Context returns the drawing context, or nil after Destroy.
func (r *Software) Context() *gg.Context {
	return r.dc
}

// Destroy closes the drawing context and releases the surface reference.
func (r *Software) Destroy() {
	if r.dc == nil {
		return
	}
	_ = r.dc.Close()
	r.dc = nil
	r.cfg.Surface = nil
}

var _ Renderer = (*Software)(nil)
