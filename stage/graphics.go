// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"github.com/gogpu/gg"
)

type graphicsOp int

const (
	opMoveTo graphicsOp = iota
	opLineTo
	opQuadTo
)

type graphicsCmd struct {
	op     graphicsOp
	cx, cy float64
	x, y   float64
}

// stroke is a run of path commands sharing one line style.
type stroke struct {
	width float64
	color gg.RGBA
	cmds  []graphicsCmd
}

// Graphics is a node holding retained vector line drawing.
//
// Commands are recorded and replayed onto the gg context every frame:
//
//	g := stage.NewGraphics()
//	g.LineStyle(3, 0xCCCCCC, 1)
//	g.MoveTo(10, 10)
//	g.LineTo(100, 40)
//	s.AddChild(g)
type Graphics struct {
	Base

	strokes []stroke
}

// NewGraphics creates an empty graphics node.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// LineStyle sets the style for the following commands.
// A width of zero disables stroking.
func (g *Graphics) LineStyle(width float64, color uint32, alpha float64) {
	g.strokes = append(g.strokes, stroke{
		width: width,
		color: ColorFromHex(color, alpha),
	})
}

// MoveTo starts a new sub-path at (x, y).
func (g *Graphics) MoveTo(x, y float64) {
	g.add(graphicsCmd{op: opMoveTo, x: x, y: y})
}

// LineTo adds a straight segment to (x, y).
func (g *Graphics) LineTo(x, y float64) {
	g.add(graphicsCmd{op: opLineTo, x: x, y: y})
}

// QuadTo adds a quadratic curve through control point (cx, cy) to (x, y).
func (g *Graphics) QuadTo(cx, cy, x, y float64) {
	g.add(graphicsCmd{op: opQuadTo, cx: cx, cy: cy, x: x, y: y})
}

// Clear removes all commands and line styles.
func (g *Graphics) Clear() {
	g.strokes = nil
}

// Len returns the number of recorded path commands.
func (g *Graphics) Len() int {
	n := 0
	for i := range g.strokes {
		n += len(g.strokes[i].cmds)
	}
	return n
}

// Draw replays the recorded commands onto dc.
func (g *Graphics) Draw(dc *gg.Context, _ DrawState) {
	if g.Hidden || g.destroyed || len(g.strokes) == 0 {
		return
	}

	dc.Push()
	dc.Translate(g.X, g.Y)
	for i := range g.strokes {
		st := &g.strokes[i]
		if st.width <= 0 || len(st.cmds) == 0 {
			continue
		}
		dc.ClearPath()
		for _, c := range st.cmds {
			switch c.op {
			case opMoveTo:
				dc.MoveTo(c.x, c.y)
			case opLineTo:
				dc.LineTo(c.x, c.y)
			case opQuadTo:
				dc.QuadraticTo(c.cx, c.cy, c.x, c.y)
			}
		}
		dc.SetRGBA(st.color.R, st.color.G, st.color.B, st.color.A)
		dc.SetLineWidth(st.width)
		_ = dc.Stroke()
	}
	dc.Pop()
}

// Destroy clears the commands and marks the node destroyed.
func (g *Graphics) Destroy() {
	g.strokes = nil
	g.Base.Destroy()
}

// add appends c to the current stroke, starting an unstyled one if needed.
func (g *Graphics) add(c graphicsCmd) {
	if len(g.strokes) == 0 {
		g.strokes = append(g.strokes, stroke{})
	}
	last := &g.strokes[len(g.strokes)-1]
	last.cmds = append(last.cmds, c)
}

var _ Node = (*Graphics)(nil)
