// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggdisplay adapts the gg 2D rendering library to a host-driven
// display.
//
// # Overview
//
// A Display binds a drawable surface to a root scene node (a stage.Stage)
// and a renderer. The host looks surfaces up by identifier, creates a
// Display for one of them and calls Render once per frame:
//
//	s, _ := surface.NewImageSurface(800, 500)
//	surface.Register("stage", s)
//
//	d, err := ggdisplay.New("stage", ggdisplay.Options{BackgroundColor: 0x222222})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Destroy()
//
//	d.Stage().AddChild(stage.NewGraphics())
//	d.Render(16 * time.Millisecond)
//
// # Renderers
//
// Options.ForceContext selects the renderer:
//   - ContextCanvas2D: software rendering through gg.Context
//   - ContextWebGL: hardware rendering through ggcanvas, which needs a
//     surface.GPUSurface with a device provider
//   - ContextAuto: the highest-priority renderer the surface supports
//
// # Lifecycle
//
// Paused and hidden displays skip Render. Disabling input drops the
// stage's interaction targets immediately. Resize changes the surface
// size only; frames are scaled to fit. Destroy is terminal and releases
// the stage, the renderer and the surface reference.
//
// # Logging
//
// Nothing is logged by default. SetLogger installs a slog.Logger for
// ggdisplay and gg alike.
package ggdisplay
