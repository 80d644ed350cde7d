package skifree

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxColor(a, b Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestGradientStopsSorted(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 10)
	g.AddColorStop(1, ColorBlue)
	g.AddColorStop(0, ColorWhite)
	g.AddColorStop(0.5, ColorRed)
	stops := g.Stops()
	if len(stops) != 3 {
		t.Fatalf("stops = %d, want 3", len(stops))
	}
	for i, want := range []float64{0, 0.5, 1} {
		if stops[i].Offset != want {
			t.Errorf("stops[%d].Offset = %v, want %v", i, stops[i].Offset, want)
		}
	}
}

func TestGradientClampsOffsets(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 10)
	g.AddColorStop(-1, ColorWhite)
	g.AddColorStop(3, ColorBlack)
	if g.Stops()[0].Offset != 0 || g.Stops()[1].Offset != 1 {
		t.Errorf("stops = %v, want offsets 0 and 1", g.Stops())
	}
}

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 10)
	g.AddColorStop(0, Color{0, 0, 0, 1})
	g.AddColorStop(1, Color{1, 1, 1, 1})

	tests := []struct {
		t    float64
		want Color
	}{
		{-1, Color{0, 0, 0, 1}},
		{0, Color{0, 0, 0, 1}},
		{0.25, Color{0.25, 0.25, 0.25, 1}},
		{0.5, Color{0.5, 0.5, 0.5, 1}},
		{1, Color{1, 1, 1, 1}},
		{2, Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got := g.ColorAt(tt.t)
		if !approxColor(got, tt.want, 1e-6) {
			t.Errorf("ColorAt(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestGradientCustomEase(t *testing.T) {
	g := NewLinearGradient(0, 0, 0, 10)
	g.Ease = ease.InQuad
	g.AddColorStop(0, Color{0, 0, 0, 1})
	g.AddColorStop(1, Color{1, 1, 1, 1})
	got := g.ColorAt(0.5)
	if !approxColor(got, Color{0.25, 0.25, 0.25, 1}, 1e-6) {
		t.Errorf("ColorAt(0.5) with InQuad = %v, want 0.25 grey", got)
	}
}

func TestGradientNoStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	if got := g.ColorAt(0.5); got != (Color{}) {
		t.Errorf("ColorAt = %v, want zero", got)
	}
}

func TestGradientProject(t *testing.T) {
	g := NewLinearGradient(0, 10, 0, 30)
	assertNear(t, "top", g.Project(5, 10), 0)
	assertNear(t, "middle", g.Project(-5, 20), 0.5)
	assertNear(t, "bottom", g.Project(0, 30), 1)

	degenerate := NewLinearGradient(1, 1, 1, 1)
	assertNear(t, "degenerate", degenerate.Project(4, 4), 0)
}
