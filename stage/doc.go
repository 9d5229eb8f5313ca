// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stage provides the scene graph a display renders.
//
// The root of every scene graph is a Stage: a Container with a background
// colour, pointer handlers and an InteractionManager. Leaves are Graphics
// (retained line drawing) and Sprite (textured image) nodes. All nodes draw
// themselves onto a gg.Context; the renderer that owns the context decides
// where the pixels go.
//
// # Interaction
//
// A Stage delivers pointer events only while it is interactive. The
// InteractionManager refreshes its target set lazily, and only for an
// interactive stage, so disabling interaction requires an explicit
// ForceUpdateInteraction to drop the stale targets:
//
//	s.SetInteractive(false)
//	s.ForceUpdateInteraction()
//
// # Lifecycle
//
// Destroy releases a node's resources. RemoveChildren(true) destroys a whole
// subtree; RemoveChildren(false) only detaches children.
//
// Nodes are NOT safe for concurrent use.
package stage
