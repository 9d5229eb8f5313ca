// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggdisplay"
	"github.com/gogpu/ggdisplay/stage"
)

const (
	spriteSize  = 64
	spriteSpeed = 5
	lineWidth   = 3
	lineColor   = 0xCCCCCC
)

// drawingApp bounces a sprite across the stage and draws smoothed lines
// while the pointer is held down.
type drawingApp struct {
	display *ggdisplay.Display
	stage   *stage.Stage
	sprite  *stage.Sprite
	shape   *stage.Graphics

	direction float64

	drawing          bool
	oldX, oldY       float64
	oldMidX, oldMidY float64
}

func newDrawingApp(d *ggdisplay.Display) *drawingApp {
	a := &drawingApp{
		display:   d,
		stage:     d.Stage(),
		direction: 1,
	}

	a.sprite = stage.NewSprite(newBadgeTexture(spriteSize))
	a.sprite.X = 0
	a.sprite.Y = 100
	a.stage.AddChild(a.sprite)

	a.stage.OnPointerDown(a.onPointerDown)
	a.stage.OnPointerUp(a.onPointerUp)

	a.shape = stage.NewGraphics()
	a.stage.AddChild(a.shape)
	a.clear()

	ggdisplay.Logger().Info("drawingdemo: app ready")
	return a
}

// newBadgeTexture renders the sprite image with gg.
func newBadgeTexture(size int) *stage.Texture {
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	r := float64(size) / 2
	dc.SetRGBA(1, 0.55, 0, 1)
	dc.DrawCircle(r, r, r-2)
	_ = dc.Fill()

	dc.SetRGBA(1, 1, 1, 1)
	dc.SetLineWidth(4)
	dc.DrawCircle(r, r, r/2)
	_ = dc.Stroke()

	return stage.TextureFromImage(dc.Image())
}

// clear wipes the drawing and restores the line style.
func (a *drawingApp) clear() {
	a.shape.Clear()
	a.shape.LineStyle(lineWidth, lineColor, 1)
}

// update advances the sprite and extends the current line.
func (a *drawingApp) update(_ time.Duration) {
	maxX := float64(a.display.Width()) - a.sprite.Width()

	a.sprite.X += spriteSpeed * a.direction
	if a.sprite.X < 0 || a.sprite.X > maxX {
		a.direction = -a.direction
	}

	if !a.drawing {
		return
	}
	x, y := a.stage.PointerPosition()
	midX, midY := (a.oldX+x)/2, (a.oldY+y)/2

	a.shape.MoveTo(midX, midY)
	a.shape.QuadTo(a.oldX, a.oldY, a.oldMidX, a.oldMidY)

	a.oldX, a.oldY = x, y
	a.oldMidX, a.oldMidY = midX, midY
}

func (a *drawingApp) onPointerDown(ev stage.PointerEvent) {
	a.drawing = true
	a.oldX, a.oldY = ev.X, ev.Y
	a.oldMidX, a.oldMidY = ev.X, ev.Y
}

func (a *drawingApp) onPointerUp(stage.PointerEvent) {
	a.drawing = false
}

// destroy detaches the handlers. The display destroys the nodes.
func (a *drawingApp) destroy() {
	ggdisplay.Logger().Info("drawingdemo: app destroyed")
	if a.stage != nil {
		a.stage.OnPointerDown(nil)
		a.stage.OnPointerUp(nil)
	}
	if a.shape != nil {
		a.shape.Clear()
	}
	a.stage, a.sprite, a.shape = nil, nil, nil
}
