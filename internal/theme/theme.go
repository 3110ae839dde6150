// Package theme holds the render palette and the tag color mapping.
package theme

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mapping assigns card background colors by lens tag. Keys are matched
// case-insensitively; the lens's own tag order decides which entry wins.
type Mapping struct {
	colors map[string]colorful.Color
}

// NewMapping parses a tag to hex-color table. Keys are lowercased.
func NewMapping(raw map[string]string) (*Mapping, error) {
	m := &Mapping{colors: make(map[string]colorful.Color, len(raw))}
	for tag, hex := range raw {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme: tag %q: parse color %q: %w", tag, hex, err)
		}
		m.colors[strings.ToLower(tag)] = c
	}
	return m, nil
}

// Resolve walks tags in order and returns the first mapped color.
// ok is false when no tag matches or the mapping is absent.
func (m *Mapping) Resolve(tags []string) (colorful.Color, bool) {
	if m == nil {
		return colorful.Color{}, false
	}
	for _, tag := range tags {
		if c, ok := m.colors[strings.ToLower(tag)]; ok {
			return c, true
		}
	}
	return colorful.Color{}, false
}

// Theme is the palette for one render run.
type Theme struct {
	Card   colorful.Color // default card background
	Sheet  colorful.Color // contact sheet background
	Barrel colorful.Color // lens barrel base shade
	Label  color.NRGBA    // label text
	Tags   *Mapping       // optional per-tag card backgrounds
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the shared default palette. The value is built once
// and reused; callers must not mutate it.
func Default() *Theme {
	defaultOnce.Do(func() {
		defaultTheme = &Theme{
			Card:   colorful.Color{R: 244.0 / 255, G: 244.0 / 255, B: 242.0 / 255},
			Sheet:  colorful.Color{R: 233.0 / 255, G: 233.0 / 255, B: 230.0 / 255},
			Barrel: colorful.Color{R: 46.0 / 255, G: 48.0 / 255, B: 51.0 / 255},
			Label:  color.NRGBA{R: 0x3c, G: 0x3c, B: 0x40, A: 0xff},
		}
	})
	return defaultTheme
}

// Custom returns a copy of the default theme with the given overrides.
// Empty hex strings keep the default value; a nil tag table leaves the
// mapping absent.
func Custom(cardHex, sheetHex string, tagColors map[string]string) (*Theme, error) {
	t := *Default()
	if cardHex != "" {
		c, err := colorful.Hex(cardHex)
		if err != nil {
			return nil, fmt.Errorf("theme: card color %q: %w", cardHex, err)
		}
		t.Card = c
	}
	if sheetHex != "" {
		c, err := colorful.Hex(sheetHex)
		if err != nil {
			return nil, fmt.Errorf("theme: sheet color %q: %w", sheetHex, err)
		}
		t.Sheet = c
	}
	if len(tagColors) > 0 {
		m, err := NewMapping(tagColors)
		if err != nil {
			return nil, err
		}
		t.Tags = m
	}
	return &t, nil
}

// CardBackground returns the card color for a lens, honoring the tag
// mapping when one of the lens's tags matches.
func (t *Theme) CardBackground(tags []string) colorful.Color {
	if c, ok := t.Tags.Resolve(tags); ok {
		return c
	}
	return t.Card
}

// BackgroundStops derives the vertical gradient ends for a background:
// slightly lifted at the top, slightly sunk at the bottom. Blending in
// Lab keeps the hue stable across the gradient.
func BackgroundStops(base colorful.Color) (top, bottom colorful.Color) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	return base.BlendLab(white, 0.12), base.BlendLab(black, 0.08)
}
