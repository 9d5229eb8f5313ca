// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"github.com/gogpu/gg"
)

// DrawState carries per-frame renderer settings down the scene graph.
type DrawState struct {
	// PremultipliedAlpha makes sprites interpret texture pixels as
	// premultiplied alpha instead of straight alpha.
	PremultipliedAlpha bool
}

// Node is an element of the scene graph.
//
// Custom nodes embed Base to satisfy the interface:
//
//	type Marker struct {
//	    stage.Base
//	}
//
//	func (m *Marker) Draw(dc *gg.Context, _ stage.DrawState) {
//	    dc.DrawCircle(m.X, m.Y, 4)
//	    _ = dc.Fill()
//	}
type Node interface {
	// Draw renders the node onto dc.
	Draw(dc *gg.Context, state DrawState)

	// Destroy releases the node's resources.
	Destroy()

	base() *Base
}

// Base holds the state shared by all nodes.
type Base struct {
	// X, Y is the position relative to the parent.
	X, Y float64

	// Hidden nodes and their children are not drawn.
	Hidden bool

	parent      *Container
	interactive bool
	destroyed   bool
}

// Parent returns the containing node, or nil for a detached node.
func (b *Base) Parent() *Container {
	return b.parent
}

// Interactive reports whether the node receives pointer input.
func (b *Base) Interactive() bool {
	return b.interactive
}

// SetInteractive enables or disables pointer input on the node.
func (b *Base) SetInteractive(v bool) {
	b.interactive = v
}

// Destroyed reports whether Destroy has been called.
func (b *Base) Destroyed() bool {
	return b.destroyed
}

// Destroy marks the node destroyed.
func (b *Base) Destroy() {
	b.destroyed = true
	b.interactive = false
}

func (b *Base) base() *Base {
	return b
}

// ColorFromHex converts a 0xRRGGBB colour and an alpha in [0, 1] to gg.RGBA.
func ColorFromHex(hex uint32, alpha float64) gg.RGBA {
	return gg.RGBA{
		R: float64((hex>>16)&0xFF) / 255,
		G: float64((hex>>8)&0xFF) / 255,
		B: float64(hex&0xFF) / 255,
		A: alpha,
	}
}
