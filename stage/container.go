// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"slices"

	"github.com/gogpu/gg"
)

// Container is a node holding an ordered list of children.
// Children are drawn in order, later children on top.
type Container struct {
	Base

	children []Node
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// AddChild appends n to the children, detaching it from its previous parent.
// Adding a container to itself or to one of its descendants is ignored.
func (c *Container) AddChild(n Node) {
	if n == nil {
		return
	}
	b := n.base()
	for p := c; p != nil; p = p.parent {
		if b == &p.Base {
			return
		}
	}
	if b.parent != nil {
		b.parent.RemoveChild(n)
	}
	b.parent = c
	c.children = append(c.children, n)
}

// RemoveChild detaches n. It reports whether n was a child.
func (c *Container) RemoveChild(n Node) bool {
	i := slices.Index(c.children, n)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	n.base().parent = nil
	return true
}

// RemoveChildren detaches all children. When recursive is true every
// removed child is destroyed together with its own subtree.
func (c *Container) RemoveChildren(recursive bool) {
	children := c.children
	c.children = nil

	for _, n := range children {
		n.base().parent = nil
		if !recursive {
			continue
		}
		if p, ok := n.(interface{ RemoveChildren(bool) }); ok {
			p.RemoveChildren(true)
		}
		n.Destroy()
	}
}

// Children returns a copy of the child list.
func (c *Container) Children() []Node {
	return slices.Clone(c.children)
}

// NumChildren returns the number of children.
func (c *Container) NumChildren() int {
	return len(c.children)
}

// Draw renders the children translated by the container position.
func (c *Container) Draw(dc *gg.Context, state DrawState) {
	if c.Hidden || c.destroyed {
		return
	}
	dc.Push()
	dc.Translate(c.X, c.Y)
	for _, n := range c.children {
		n.Draw(dc, state)
	}
	dc.Pop()
}

// Destroy releases the child list without destroying the children.
// Use RemoveChildren(true) first to destroy the subtree.
func (c *Container) Destroy() {
	for _, n := range c.children {
		n.base().parent = nil
	}
	c.children = nil
	c.Base.Destroy()
}

// walk calls fn for every descendant, depth first.
func (c *Container) walk(fn func(Node)) {
	for _, n := range c.children {
		fn(n)
		if p, ok := n.(interface{ walk(func(Node)) }); ok {
			p.walk(fn)
		}
	}
}
