// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Common surface errors.
var (
	// ErrInvalidSize is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrNilFrame is returned when Present is called with a nil frame.
	ErrNilFrame = errors.New("surface: nil frame")
)

// Display is the visibility style of a surface element.
type Display string

const (
	// DisplayBlock shows the surface.
	DisplayBlock Display = "block"

	// DisplayNone hides the surface.
	DisplayNone Display = "none"
)

// Surface is a drawable target borrowed by a display.
//
// Width and Height report the current drawable size. SetSize changes it;
// implementations may discard the current contents when the size changes,
// as canvas elements do.
type Surface interface {
	// Width returns the drawable width in pixels.
	Width() int

	// Height returns the drawable height in pixels.
	Height() int

	// SetSize changes the drawable dimensions.
	SetSize(width, height int)

	// Display returns the current display style.
	Display() Display

	// SetDisplay changes the display style.
	SetDisplay(d Display)

	// Format returns the pixel format frames are stored in.
	Format() gputypes.TextureFormat

	// Present copies a rendered frame onto the surface. Frames whose size
	// differs from the surface are scaled to fit.
	Present(frame image.Image) error
}

// GPUSurface is an optional interface for surfaces backed by a GPU window.
//
// Hardware renderers require it: DeviceProvider supplies the shared GPU
// device, and TextureDrawer, when non-nil, receives the rendered texture.
// A nil TextureDrawer makes hardware renderers fall back to Present.
type GPUSurface interface {
	Surface

	// DeviceProvider returns the GPU device provider, or nil if the
	// surface has no GPU device.
	DeviceProvider() gpucontext.DeviceProvider

	// TextureDrawer returns the drawer for the current frame, or nil.
	TextureDrawer() gpucontext.TextureDrawer
}
