package skifree

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// ColorStop is one stop of a LinearGradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient is a gradient between two points, the equivalent of the
// canvas createLinearGradient. Coordinates are in the local space of the
// canvas the gradient is used with.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64

	// Ease shapes the interpolation between neighbouring stops.
	// Nil means ease.Linear.
	Ease ease.TweenFunc

	stops []ColorStop
}

// NewLinearGradient creates a gradient running from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a stop. Offsets outside [0, 1] are clamped; stops are
// kept sorted, and stops sharing an offset keep insertion order.
func (g *LinearGradient) AddColorStop(offset float64, c Color) {
	offset = clamp01(offset)
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
}

// Stops returns the gradient's stops in offset order. The returned slice
// MUST NOT be mutated.
func (g *LinearGradient) Stops() []ColorStop {
	return g.stops
}

// ColorAt returns the gradient color at parameter t along the gradient axis.
// A gradient with no stops is transparent black.
func (g *LinearGradient) ColorAt(t float64) Color {
	n := len(g.stops)
	if n == 0 {
		return Color{}
	}
	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	if t >= g.stops[n-1].Offset {
		return g.stops[n-1].Color
	}
	fn := g.Ease
	if fn == nil {
		fn = ease.Linear
	}
	for i := 1; i < n; i++ {
		b := g.stops[i]
		if t > b.Offset {
			continue
		}
		a := g.stops[i-1]
		span := float32(b.Offset - a.Offset)
		if span <= 0 {
			return b.Color
		}
		local := float32(t - a.Offset)
		return Color{
			R: float64(fn(local, float32(a.Color.R), float32(b.Color.R-a.Color.R), span)),
			G: float64(fn(local, float32(a.Color.G), float32(b.Color.G-a.Color.G), span)),
			B: float64(fn(local, float32(a.Color.B), float32(b.Color.B-a.Color.B), span)),
			A: float64(fn(local, float32(a.Color.A), float32(b.Color.A-a.Color.A), span)),
		}
	}
	return g.stops[n-1].Color
}

// Project returns the gradient parameter of the point (x, y): its projection
// onto the gradient axis, 0 at (X0, Y0) and 1 at (X1, Y1). Unclamped.
func (g *LinearGradient) Project(x, y float64) float64 {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	ln2 := dx*dx + dy*dy
	if ln2 < 1e-12 {
		return 0
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / ln2
}
