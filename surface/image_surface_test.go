// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNewImageSurface(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{"valid", 800, 600, false},
		{"one pixel", 1, 1, false},
		{"zero width", 0, 600, true},
		{"zero height", 800, 0, true},
		{"negative", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewImageSurface(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Fatalf("NewImageSurface() error = %v, want ErrInvalidSize", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewImageSurface() error = %v", err)
			}
			if s.Width() != tt.width || s.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.width, tt.height)
			}
			if s.Display() != DisplayBlock {
				t.Errorf("Display() = %q, want %q", s.Display(), DisplayBlock)
			}
		})
	}
}

func TestImageSurfaceSetSize(t *testing.T) {
	s, err := NewImageSurface(100, 50)
	if err != nil {
		t.Fatal(err)
	}

	sizes := [][2]int{{200, 100}, {1, 1}, {1024, 768}, {100, 50}}
	for _, sz := range sizes {
		s.SetSize(sz[0], sz[1])
		if s.Width() != sz[0] || s.Height() != sz[1] {
			t.Errorf("SetSize(%d, %d): size = %dx%d", sz[0], sz[1], s.Width(), s.Height())
		}
		if got := s.Image().Bounds().Size(); got != image.Pt(sz[0], sz[1]) {
			t.Errorf("SetSize(%d, %d): image size = %v", sz[0], sz[1], got)
		}
	}
}

func TestImageSurfaceSetSizeSameKeepsContents(t *testing.T) {
	s, _ := NewImageSurface(10, 10)
	s.Image().SetRGBA(5, 5, color.RGBA{R: 255, A: 255})

	s.SetSize(10, 10)

	if got := s.Image().RGBAAt(5, 5); got.R != 255 {
		t.Errorf("pixel after same-size SetSize = %v, want red", got)
	}
}

func TestImageSurfaceDisplay(t *testing.T) {
	s, _ := NewImageSurface(10, 10)

	s.SetDisplay(DisplayNone)
	if s.Display() != DisplayNone {
		t.Errorf("Display() = %q, want %q", s.Display(), DisplayNone)
	}
	s.SetDisplay(DisplayBlock)
	if s.Display() != DisplayBlock {
		t.Errorf("Display() = %q, want %q", s.Display(), DisplayBlock)
	}
}

func TestImageSurfacePresent(t *testing.T) {
	s, _ := NewImageSurface(4, 4)

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			frame.SetRGBA(x, y, color.RGBA{G: 200, A: 255})
		}
	}

	if err := s.Present(frame); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if got := s.Image().RGBAAt(2, 2); got.G != 200 || got.A != 255 {
		t.Errorf("pixel = %v, want green", got)
	}
	if s.Presents() != 1 {
		t.Errorf("Presents() = %d, want 1", s.Presents())
	}
}

func TestImageSurfacePresentScales(t *testing.T) {
	s, _ := NewImageSurface(8, 8)

	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			frame.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	if err := s.Present(frame); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	for _, p := range []image.Point{{0, 0}, {4, 4}, {7, 7}} {
		if got := s.Image().RGBAAt(p.X, p.Y); got.B != 255 || got.A != 255 {
			t.Errorf("pixel %v = %v, want blue", p, got)
		}
	}
}

func TestImageSurfacePresentNil(t *testing.T) {
	s, _ := NewImageSurface(4, 4)
	if err := s.Present(nil); !errors.Is(err, ErrNilFrame) {
		t.Errorf("Present(nil) error = %v, want ErrNilFrame", err)
	}
	if s.Presents() != 0 {
		t.Errorf("Presents() = %d, want 0", s.Presents())
	}
}

func TestImageSurfaceEncodePNG(t *testing.T) {
	s, _ := NewImageSurface(3, 2)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded size = %v, want 3x2", img.Bounds().Size())
	}
}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return nil }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func TestGPUImageSurfaceFormat(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     gputypes.TextureFormat
	}{
		{"no provider", nil, gputypes.TextureFormatRGBA8Unorm},
		{"undefined format", &mockProvider{format: gputypes.TextureFormatUndefined}, gputypes.TextureFormatRGBA8Unorm},
		{"bgra", &mockProvider{format: gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewGPUImageSurface(tt.provider, 16, 16)
			if err != nil {
				t.Fatal(err)
			}
			if got := s.Format(); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGPUImageSurfaceDrawer(t *testing.T) {
	p := &mockProvider{}
	s, err := NewGPUImageSurface(p, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if s.DeviceProvider() != p {
		t.Error("DeviceProvider() did not return the provider")
	}
	if s.TextureDrawer() != nil {
		t.Error("TextureDrawer() should be nil until set")
	}

	if _, err := NewGPUImageSurface(p, 0, 16); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewGPUImageSurface(0, 16) error = %v, want ErrInvalidSize", err)
	}
}
