// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package renderer draws a stage onto a surface using gg.
//
// Two renderer kinds are provided:
//
//   - Software: draws into a CPU gg.Context and presents the frame with
//     surface.Surface.Present.
//   - Hardware: draws into a ggcanvas.Canvas sharing the host's GPU device
//     and presents the texture through gpucontext.TextureDrawer.
//
// # Selection
//
// Renderer factories are registered with a priority and an availability
// probe. AutoDetect walks the registry from the highest priority down and
// returns the first renderer that is available and constructs successfully,
// so a surface without a GPU device falls back to software:
//
//	r, err := renderer.AutoDetect(renderer.Config{
//	    Width:   s.Width(),
//	    Height:  s.Height(),
//	    Surface: s,
//	})
//
// Use New to request a specific kind.
//
// # Buffers
//
// A renderer's buffers keep the size given at construction. When the
// surface is resized afterwards, frames are scaled on present.
//
// Renderers are NOT safe for concurrent use. The registry is.
package renderer
