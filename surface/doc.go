// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawable surfaces a display is bound to.
//
// A Surface is owned by the host application (a window, an offscreen image,
// an embedded widget) and borrowed by a display. The display never creates or
// destroys surfaces: it looks them up by identifier in a Registry, the same
// way a page looks up a canvas element by its DOM id.
//
// # Surface Types
//
//   - ImageSurface: CPU-backed *image.RGBA, presented by software renderers
//   - GPUImageSurface: an ImageSurface that also exposes a GPU device provider
//     and texture drawer for hardware renderers
//
// # Registry
//
// Hosts register surfaces under an identifier before creating displays:
//
//	s, _ := surface.NewImageSurface(800, 600)
//	surface.Register("stage", s)
//	defer surface.Unregister("stage")
//
//	d, err := ggdisplay.New("stage", ggdisplay.DefaultOptions())
//
// # Display Style
//
// Every surface carries a display style (DisplayBlock or DisplayNone),
// mirroring the CSS display property of a canvas element. A surface styled
// DisplayNone is hidden and displays bound to it do not render.
//
// # Thread Safety
//
// Surfaces are NOT safe for concurrent use. The Registry is safe for
// concurrent use.
package surface
