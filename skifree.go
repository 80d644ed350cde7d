package skifree

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the renderers.
var (
	ColorWhite     = Color{1, 1, 1, 1}
	ColorBlack     = Color{0, 0, 0, 1}
	ColorRed       = Color{1, 0, 0, 1}
	ColorGreen     = Color{0, 128.0 / 255, 0, 1}
	ColorBlue      = Color{0, 0, 1, 1}
	ColorYellow    = Color{1, 1, 0, 1}
	ColorOrange    = Color{1, 165.0 / 255, 0, 1}
	ColorPurple    = Color{128.0 / 255, 0, 128.0 / 255, 1}
	ColorGray      = Color{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}
	ColorBrown     = Color{139.0 / 255, 69.0 / 255, 19.0 / 255, 1}
	ColorLightBlue = Color{173.0 / 255, 216.0 / 255, 230.0 / 255, 1}
	ColorSteelBlue = Color{70.0 / 255, 130.0 / 255, 180.0 / 255, 1}
)

var namedColors = map[string]Color{
	"white":     ColorWhite,
	"black":     ColorBlack,
	"red":       ColorRed,
	"green":     ColorGreen,
	"blue":      ColorBlue,
	"yellow":    ColorYellow,
	"orange":    ColorOrange,
	"purple":    ColorPurple,
	"gray":      ColorGray,
	"grey":      ColorGray,
	"brown":     ColorBrown,
	"lightblue": ColorLightBlue,
	"steelblue": ColorSteelBlue,
}

// ErrInvalidColor is returned by ParseColor for input it cannot interpret.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor converts a CSS-style color string into a Color. It accepts
// "#RRGGBB", "#RGB" and a small set of named colors.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrInvalidColor)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrInvalidColor)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level color tables.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// NRGBA converts to a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
