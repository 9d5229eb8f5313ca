// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggdisplay"
	"github.com/gogpu/ggdisplay/stage"
	"github.com/gogpu/ggdisplay/surface"
)

func TestLoadOptions(t *testing.T) {
	opts, err := loadOptions("")
	if err != nil {
		t.Fatalf("loadOptions(\"\") error = %v", err)
	}
	if opts.ForceContext != ggdisplay.ContextAuto {
		t.Errorf("ForceContext = %v, want auto", opts.ForceContext)
	}

	path := filepath.Join(t.TempDir(), "display.yaml")
	src := "forceContext: canvas2d\nbackgroundColor: 0xFF0000\ntransparent: true\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	opts, err = loadOptions(path)
	if err != nil {
		t.Fatalf("loadOptions() error = %v", err)
	}
	if opts.ForceContext != ggdisplay.ContextCanvas2D || opts.BackgroundColor != 0xFF0000 || !opts.Transparent {
		t.Errorf("loadOptions() = %+v", opts)
	}

	tomlPath := filepath.Join(t.TempDir(), "display.toml")
	tomlSrc := "forceContext = \"webgl\"\nbackgroundColor = 0x00FF00\nclearView = true\n"
	if err := os.WriteFile(tomlPath, []byte(tomlSrc), 0o600); err != nil {
		t.Fatal(err)
	}
	opts, err = loadOptions(tomlPath)
	if err != nil {
		t.Fatalf("loadOptions(toml) error = %v", err)
	}
	if opts.ForceContext != ggdisplay.ContextWebGL || opts.BackgroundColor != 0x00FF00 || !opts.ClearView {
		t.Errorf("loadOptions(toml) = %+v", opts)
	}

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badPath, []byte("forceContext: metal\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOptions(badPath); !errors.Is(err, ggdisplay.ErrUnknownContext) {
		t.Errorf("loadOptions(bad) error = %v, want ErrUnknownContext", err)
	}

	if _, err := loadOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadOptions(missing) returned no error")
	}
}

func TestStrokeEvents(t *testing.T) {
	const frames = 100

	var downs, ups, moves int
	for f := range frames {
		for _, ev := range strokeEvents(f, frames, 800, 500) {
			switch ev.Kind {
			case stage.PointerDown:
				downs++
			case stage.PointerUp:
				ups++
			case stage.PointerMove:
				moves++
			}
			if ev.X < 0 || ev.X > 800 || ev.Y < 0 || ev.Y > 500 {
				t.Errorf("frame %d: event outside surface: %+v", f, ev)
			}
		}
	}
	if downs != 1 || ups != 1 {
		t.Errorf("downs = %d, ups = %d, want 1, 1", downs, ups)
	}
	if moves == 0 {
		t.Error("no move events")
	}

	if evs := strokeEvents(0, 1, 800, 500); evs != nil {
		t.Errorf("short run produced events: %v", evs)
	}
}

func TestDrawingAppBounce(t *testing.T) {
	s, err := surface.NewImageSurface(100, 50)
	if err != nil {
		t.Fatal(err)
	}
	reg := surface.NewRegistry()
	reg.Register("app", s)
	d, err := ggdisplay.NewWithRegistry(reg, "app", ggdisplay.Options{ForceContext: ggdisplay.ContextCanvas2D})
	if err != nil {
		t.Fatal(err)
	}
	defer d.Destroy()

	app := newDrawingApp(d)
	defer app.destroy()

	maxX := float64(d.Width()) - app.sprite.Width()
	for range 40 {
		app.update(frameDelta)
		if app.sprite.X < -spriteSpeed || app.sprite.X > maxX+spriteSpeed {
			t.Fatalf("sprite escaped: x = %v", app.sprite.X)
		}
	}
	if app.direction != -1 && app.direction != 1 {
		t.Errorf("direction = %v", app.direction)
	}
}

func TestDrawingAppStroke(t *testing.T) {
	s, err := surface.NewImageSurface(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	reg := surface.NewRegistry()
	reg.Register("app", s)
	d, err := ggdisplay.NewWithRegistry(reg, "app", ggdisplay.Options{ForceContext: ggdisplay.ContextCanvas2D})
	if err != nil {
		t.Fatal(err)
	}
	defer d.Destroy()

	app := newDrawingApp(d)
	defer app.destroy()
	st := d.Stage()

	base := app.shape.Len()
	app.update(frameDelta)
	if app.shape.Len() != base {
		t.Fatal("shape grew without pointer down")
	}

	st.DispatchPointer(stage.PointerEvent{Kind: stage.PointerDown, X: 10, Y: 10})
	st.DispatchPointer(stage.PointerEvent{Kind: stage.PointerMove, X: 30, Y: 20})
	app.update(frameDelta)
	if app.shape.Len() <= base {
		t.Fatal("shape did not grow while drawing")
	}
	if app.oldMidX != 20 || app.oldMidY != 15 {
		t.Errorf("midpoint = (%v, %v), want (20, 15)", app.oldMidX, app.oldMidY)
	}

	st.DispatchPointer(stage.PointerEvent{Kind: stage.PointerUp, X: 30, Y: 20})
	grown := app.shape.Len()
	app.update(frameDelta)
	if app.shape.Len() != grown {
		t.Error("shape grew after pointer up")
	}

	// Disabled input stops drawing.
	d.SetEnabled(false)
	st.DispatchPointer(stage.PointerEvent{Kind: stage.PointerDown, X: 5, Y: 5})
	if app.drawing {
		t.Error("pointer down delivered while disabled")
	}

	app.clear()
	if app.shape.Len() != base {
		t.Errorf("Len() after clear = %d, want %d", app.shape.Len(), base)
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	cfg := config{frames: 30, output: out, width: 120, height: 80}

	if err := run(cfg, ggdisplay.Options{ForceContext: ggdisplay.ContextCanvas2D, BackgroundColor: 0x202020}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image size = %v, want 120x80", b)
	}
	if _, err := surface.Lookup(surfaceID); err == nil {
		t.Error("surface still registered after run")
	}
}
