package models

import (
	"fmt"
	"sort"
)

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Palette maps the accepted colour names to their values.
var Palette = map[string]RGB{
	"blue":      {0, 0, 255},
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"orange":    {255, 165, 0},
	"purple":    {128, 0, 128},
	"black":     {0, 0, 0},
	"grey":      {128, 128, 128},
	"lightgrey": {211, 211, 211},
	"cyan":      {0, 255, 255},
	"magenta":   {255, 0, 255},
	"brown":     {165, 42, 42},
}

// DefaultColor is used when a style names no colour.
const DefaultColor = "blue"

// ColorNames returns the palette names in alphabetical order.
func ColorNames() []string {
	names := make([]string, 0, len(Palette))
	for name := range Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupColor resolves a palette name.
func LookupColor(name string) (RGB, bool) {
	c, ok := Palette[name]
	return c, ok
}

// Style describes how an artifact is drawn.
type Style struct {
	// Color is a palette name.
	Color string `json:"color"`
	// Width is the stroke width for lines.
	Width float64 `json:"width"`
	// Label is the label text (inline for lines, legend for scatters).
	Label string `json:"label,omitempty"`
	// Labeled requests an inline label for line artifacts.
	Labeled bool `json:"labeled"`
	// LabelX is the abscissa where the inline label should be anchored.
	// If nil, the label goes to the middle of the curve.
	LabelX *float64 `json:"label_x,omitempty"`
	// Marker is the scatter marker symbol.
	Marker string `json:"marker,omitempty"`
}

// DefaultStyle returns a labeled blue line style of width 1.
func DefaultStyle() Style {
	return Style{
		Color:   DefaultColor,
		Width:   1,
		Labeled: true,
	}
}

// RGB returns the colour of the style, falling back to DefaultColor.
func (s Style) RGB() RGB {
	if c, ok := Palette[s.Color]; ok {
		return c
	}
	return Palette[DefaultColor]
}

// StrokeWidth returns Width, or 1 when unset.
func (s Style) StrokeWidth() float64 {
	if s.Width > 0 {
		return s.Width
	}
	return 1
}
