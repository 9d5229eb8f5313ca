// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// ErrInvalidTexture is returned when texture pixels do not match the
// requested dimensions.
var ErrInvalidTexture = errors.New("stage: invalid texture")

// Texture holds raw 8-bit RGBA pixels.
//
// The same bytes can be viewed as straight alpha (image.NRGBA) or as
// premultiplied alpha (image.RGBA); renderers pick the view through
// DrawState.PremultipliedAlpha.
type Texture struct {
	width  int
	height int
	pix    []byte
}

// NewTexture wraps width*height*4 bytes of RGBA pixel data.
// The slice is used directly without copying.
func NewTexture(width, height int, pix []byte) (*Texture, error) {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidTexture, width, height, len(pix))
	}
	return &Texture{width: width, height: height, pix: pix}, nil
}

// TextureFromImage copies img into a straight-alpha texture.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Texture{width: b.Dx(), height: b.Dy(), pix: dst.Pix}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Image returns a view of the pixels. The view shares memory with the
// texture.
func (t *Texture) Image(premultiplied bool) image.Image {
	rect := image.Rect(0, 0, t.width, t.height)
	if premultiplied {
		return &image.RGBA{Pix: t.pix, Stride: t.width * 4, Rect: rect}
	}
	return &image.NRGBA{Pix: t.pix, Stride: t.width * 4, Rect: rect}
}

// Sprite is a node drawing a texture at its position.
type Sprite struct {
	Base

	// Alpha is the sprite opacity in [0, 1].
	Alpha float64

	texture *Texture

	buf            *gg.ImageBuf
	bufPremultiply bool
}

// NewSprite creates an opaque sprite showing t.
func NewSprite(t *Texture) *Sprite {
	return &Sprite{Alpha: 1, texture: t}
}

// Texture returns the sprite's texture.
func (s *Sprite) Texture() *Texture {
	return s.texture
}

// SetTexture replaces the sprite's texture.
func (s *Sprite) SetTexture(t *Texture) {
	s.texture = t
	s.buf = nil
}

// Width returns the texture width, or 0 without a texture.
func (s *Sprite) Width() float64 {
	if s.texture == nil {
		return 0
	}
	return float64(s.texture.width)
}

// Height returns the texture height, or 0 without a texture.
func (s *Sprite) Height() float64 {
	if s.texture == nil {
		return 0
	}
	return float64(s.texture.height)
}

// Draw renders the texture at the sprite position.
func (s *Sprite) Draw(dc *gg.Context, state DrawState) {
	if s.Hidden || s.destroyed || s.texture == nil || s.Alpha <= 0 {
		return
	}
	if s.buf == nil || s.bufPremultiply != state.PremultipliedAlpha {
		s.buf = gg.ImageBufFromImage(s.texture.Image(state.PremultipliedAlpha))
		s.bufPremultiply = state.PremultipliedAlpha
	}
	dc.DrawImageEx(s.buf, gg.DrawImageOptions{
		X:         s.X,
		Y:         s.Y,
		Opacity:   min(s.Alpha, 1),
		BlendMode: gg.BlendNormal,
	})
}

// Destroy drops the texture reference. The texture itself is not released
// since it may be shared.
func (s *Sprite) Destroy() {
	s.texture = nil
	s.buf = nil
	s.Base.Destroy()
}

var _ Node = (*Sprite)(nil)
