// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// ImageSurface is a CPU-backed surface storing frames in an *image.RGBA.
//
// Example:
//
//	s, err := surface.NewImageSurface(800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	surface.Register("stage", s)
//
//	// ... render ...
//
//	img := s.Image()
type ImageSurface struct {
	img     *image.RGBA
	display Display

	// presents counts successful Present calls.
	presents int
}

// NewImageSurface creates a visible CPU-backed surface.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	return &ImageSurface{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		display: DisplayBlock,
	}, nil
}

// Width returns the drawable width in pixels.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the drawable height in pixels.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// SetSize changes the drawable dimensions.
// The contents are cleared if the size changes. Negative values are
// treated as zero.
func (s *ImageSurface) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.Width() && height == s.Height() {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Display returns the current display style.
func (s *ImageSurface) Display() Display {
	return s.display
}

// SetDisplay changes the display style.
func (s *ImageSurface) SetDisplay(d Display) {
	s.display = d
}

// Format returns the pixel format (RGBA8).
func (s *ImageSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Present copies frame onto the surface, replacing its contents.
// A frame of a different size is scaled with bilinear interpolation.
func (s *ImageSurface) Present(frame image.Image) error {
	if frame == nil {
		return ErrNilFrame
	}

	dr := s.img.Bounds()
	sr := frame.Bounds()
	if dr.Empty() {
		s.presents++
		return nil
	}

	if dr.Size() == sr.Size() {
		draw.Draw(s.img, dr, frame, sr.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(s.img, dr, frame, sr, draw.Src, nil)
	}
	s.presents++
	return nil
}

// Presents returns the number of frames presented to the surface.
func (s *ImageSurface) Presents() int {
	return s.presents
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the surface and is replaced on
// resize.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the surface contents to w in PNG format.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

var _ Surface = (*ImageSurface)(nil)
