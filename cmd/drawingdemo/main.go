// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command drawingdemo drives a ggdisplay.Display headlessly: a sprite
// bounces across the stage while a scripted pointer stroke draws a line.
// The last frame is saved as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/ggdisplay"
	"github.com/gogpu/ggdisplay/stage"
	"github.com/gogpu/ggdisplay/surface"
	"gopkg.in/yaml.v3"
)

const (
	surfaceID  = "stage"
	frameDelta = time.Second / 60
)

type config struct {
	configPath string
	frames     int
	output     string
	width      int
	height     int
	context    ggdisplay.ContextType
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.configPath, "config", "", "YAML or TOML file with display options")
	flag.IntVar(&cfg.frames, "frames", 120, "number of frames to render")
	flag.StringVar(&cfg.output, "output", "drawing.png", "output file")
	flag.IntVar(&cfg.width, "width", 800, "surface width")
	flag.IntVar(&cfg.height, "height", 500, "surface height")
	flag.TextVar(&cfg.context, "context", ggdisplay.ContextAuto, "renderer: auto, webgl or canvas2d")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	flag.Parse()

	contextSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "context" {
			contextSet = true
		}
	})

	if cfg.verbose {
		ggdisplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts, err := loadOptions(cfg.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if contextSet {
		opts.ForceContext = cfg.context
	}

	if err := run(cfg, opts); err != nil {
		log.Fatalf("drawingdemo: %v", err)
	}
	log.Printf("Drawing saved to %s (%dx%d, %d frames)\n", cfg.output, cfg.width, cfg.height, cfg.frames)
}

// loadOptions reads display options from path, decoding TOML for .toml
// files and YAML otherwise. An empty path yields the defaults.
func loadOptions(path string) (ggdisplay.Options, error) {
	opts := ggdisplay.DefaultOptions()
	opts.BackgroundColor = 0x1E1E28
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	default:
		err = yaml.Unmarshal(data, &opts)
	}
	if err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// run renders cfg.frames frames and writes the surface to cfg.output.
func run(cfg config, opts ggdisplay.Options) error {
	s, err := surface.NewImageSurface(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	surface.Register(surfaceID, s)
	defer surface.Unregister(surfaceID)

	d, err := ggdisplay.New(surfaceID, opts)
	if err != nil {
		return err
	}
	defer d.Destroy()

	app := newDrawingApp(d)
	defer app.destroy()

	for frame := range cfg.frames {
		for _, ev := range strokeEvents(frame, cfg.frames, cfg.width, cfg.height) {
			d.Stage().DispatchPointer(ev)
		}
		app.update(frameDelta)
		if err := d.RenderFrame(frameDelta); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// strokeEvents returns the scripted pointer input for frame: a wave drawn
// across the middle of the surface between 10% and 90% of the run.
func strokeEvents(frame, frames, width, height int) []stage.PointerEvent {
	start, end := frames/10, frames*9/10
	if frame < start || frame > end || end <= start {
		return nil
	}

	t := float64(frame-start) / float64(end-start)
	x := float64(width) * (0.1 + 0.8*t)
	y := float64(height) * (0.6 + 0.2*math.Sin(t*4*math.Pi))

	switch frame {
	case start:
		return []stage.PointerEvent{
			{Kind: stage.PointerMove, X: x, Y: y},
			{Kind: stage.PointerDown, X: x, Y: y},
		}
	case end:
		return []stage.PointerEvent{{Kind: stage.PointerUp, X: x, Y: y}}
	default:
		return []stage.PointerEvent{{Kind: stage.PointerMove, X: x, Y: y}}
	}
}
