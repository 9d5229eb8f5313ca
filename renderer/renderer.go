// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggdisplay/stage"
	"github.com/gogpu/ggdisplay/surface"
)

// Common renderer errors.
var (
	// ErrNoRenderer is returned when no registered renderer can be created.
	ErrNoRenderer = errors.New("renderer: no renderer available")

	// ErrNoDeviceProvider is returned when a hardware renderer is requested
	// for a surface without a GPU device provider.
	ErrNoDeviceProvider = errors.New("renderer: surface has no GPU device provider")

	// ErrNilSurface is returned when Config.Surface is nil.
	ErrNilSurface = errors.New("renderer: nil surface")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("renderer: invalid dimensions")

	// ErrNilStage is returned when Render is called with a nil stage.
	ErrNilStage = errors.New("renderer: nil stage")

	// ErrDestroyed is returned when a destroyed renderer is used.
	ErrDestroyed = errors.New("renderer: destroyed")
)

// Kind identifies a renderer implementation.
type Kind int

const (
	// KindSoftware is the CPU renderer.
	KindSoftware Kind = iota

	// KindHardware is the GPU renderer.
	KindHardware
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSoftware:
		return "software"
	case KindHardware:
		return "hardware"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Renderer draws a stage onto the surface it was created for.
type Renderer interface {
	// Kind returns the renderer implementation.
	Kind() Kind

	// Render draws s and presents the frame.
	Render(s *stage.Stage) error

	// ClearView reports whether transparent frames are wiped before drawing.
	ClearView() bool

	// SetClearView sets whether transparent frames are wiped before drawing.
	SetClearView(v bool)

	// Destroy releases the renderer's buffers. The renderer must not be
	// used afterwards.
	Destroy()
}

// Config describes the renderer to create.
type Config struct {
	// Width and Height are the buffer dimensions, usually the surface size.
	Width, Height int

	// Surface receives the frames. It is borrowed, not owned.
	Surface surface.Surface

	// Transparent keeps the surface alpha instead of painting the stage
	// background.
	Transparent bool

	// Antialias requests antialiased rasterization. gg rasterizes with
	// analytic coverage in both renderers, so the flag is informational.
	Antialias bool

	// PreMultAlpha makes the hardware renderer treat sprite textures as
	// premultiplied alpha.
	PreMultAlpha bool
}

func (c Config) validate() error {
	if c.Surface == nil {
		return ErrNilSurface
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

// paintFrame prepares dc and draws s onto it.
//
// Opaque frames are filled with the stage background. Transparent frames
// are wiped only when clearView is set, so drawing accumulates otherwise.
func paintFrame(dc *gg.Context, s *stage.Stage, cfg Config, clearView bool, state stage.DrawState) {
	switch {
	case !cfg.Transparent:
		dc.ClearWithColor(s.Background())
	case clearView:
		dc.ClearWithColor(gg.Transparent)
	}
	s.Draw(dc, state)
}
