// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggdisplay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownContext is returned when a context name cannot be parsed.
var ErrUnknownContext = errors.New("ggdisplay: unknown context type")

// ContextType selects the renderer a Display creates.
type ContextType int

const (
	// ContextAuto picks the best renderer the surface supports.
	ContextAuto ContextType = iota

	// ContextWebGL forces the hardware renderer.
	ContextWebGL

	// ContextCanvas2D forces the software renderer.
	ContextCanvas2D
)

// String returns the configuration name of the context type.
func (c ContextType) String() string {
	switch c {
	case ContextAuto:
		return "auto"
	case ContextWebGL:
		return "webgl"
	case ContextCanvas2D:
		return "canvas2d"
	default:
		return fmt.Sprintf("ContextType(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ContextType) MarshalText() ([]byte, error) {
	switch c {
	case ContextAuto, ContextWebGL, ContextCanvas2D:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownContext, int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The empty string selects ContextAuto. Names are case-insensitive.
func (c *ContextType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "auto":
		*c = ContextAuto
	case "webgl":
		*c = ContextWebGL
	case "canvas2d":
		*c = ContextCanvas2D
	default:
		return fmt.Errorf("%w: %q", ErrUnknownContext, text)
	}
	return nil
}

// Options configures a Display.
//
// The zero value is valid and equal to DefaultOptions. The yaml and toml tags
// allow hosts to load options from a configuration file.
type Options struct {
	// ForceContext selects the renderer. ContextAuto probes the surface.
	ForceContext ContextType `yaml:"forceContext" toml:"forceContext"`

	// ClearView wipes transparent frames before drawing.
	ClearView bool `yaml:"clearView" toml:"clearView"`

	// BackgroundColor is the stage background as 0xRRGGBB, used when
	// Transparent is false.
	BackgroundColor uint32 `yaml:"backgroundColor" toml:"backgroundColor"`

	// Transparent preserves alpha instead of filling the background.
	Transparent bool `yaml:"transparent" toml:"transparent"`

	// PreMultAlpha makes the hardware renderer treat sprite textures as
	// premultiplied alpha.
	PreMultAlpha bool `yaml:"preMultAlpha" toml:"preMultAlpha"`
}

// DefaultOptions returns the default Display options.
func DefaultOptions() Options {
	return Options{
		ForceContext:    ContextAuto,
		ClearView:       false,
		BackgroundColor: 0x000000,
		Transparent:     false,
		PreMultAlpha:    false,
	}
}
