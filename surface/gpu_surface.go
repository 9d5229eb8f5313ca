// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// GPUImageSurface is an ImageSurface that also carries GPU resources from
// the host window.
//
// The device provider is fixed for the lifetime of the surface. The texture
// drawer is usually only valid for one frame, so hosts update it from their
// draw callback:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    s.SetTextureDrawer(dc.AsTextureDrawer())
//	    display.Render(elapsed)
//	})
//
// Frames are presented to the drawer when one is set, and copied into the
// CPU image otherwise.
type GPUImageSurface struct {
	*ImageSurface

	provider gpucontext.DeviceProvider
	drawer   gpucontext.TextureDrawer
}

// NewGPUImageSurface creates a GPU-capable surface.
// A nil provider yields a surface that hardware renderers reject.
func NewGPUImageSurface(provider gpucontext.DeviceProvider, width, height int) (*GPUImageSurface, error) {
	img, err := NewImageSurface(width, height)
	if err != nil {
		return nil, err
	}
	return &GPUImageSurface{
		ImageSurface: img,
		provider:     provider,
	}, nil
}

// DeviceProvider returns the GPU device provider.
func (s *GPUImageSurface) DeviceProvider() gpucontext.DeviceProvider {
	return s.provider
}

// TextureDrawer returns the drawer for the current frame, or nil.
func (s *GPUImageSurface) TextureDrawer() gpucontext.TextureDrawer {
	return s.drawer
}

// SetTextureDrawer sets the drawer used for the next frames.
// Pass nil to present through the CPU image.
func (s *GPUImageSurface) SetTextureDrawer(dc gpucontext.TextureDrawer) {
	s.drawer = dc
}

// Format returns the surface format reported by the device provider,
// falling back to RGBA8 without one.
func (s *GPUImageSurface) Format() gputypes.TextureFormat {
	if s.provider == nil {
		return s.ImageSurface.Format()
	}
	if f := s.provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return s.ImageSurface.Format()
}

var _ GPUSurface = (*GPUImageSurface)(nil)
