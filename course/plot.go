package course

import (
	"fmt"
	"math"

	"github.com/phanxgames/skifree"
)

// Marker sizes for the overview plot, in output pixels.
const (
	plotMarker   = 3
	plotRockSize = 1.5
)

// Plot draws an overview of the whole course at the given scale (output
// pixels per course pixel): trees as green triangles, rocks as grey dots,
// jumps as blue squares and finish flags as red triangles.
func Plot(c skifree.Canvas, params Parameters, objects []Object, scale float64) {
	c.Save()
	defer c.Restore()

	c.SetStrokeColor(skifree.ColorBlack)
	c.SetLineWidth(1)
	c.StrokeRect(0, 0, float64(params.Width)*scale, float64(params.Height)*scale)

	for _, o := range objects {
		x := o.Position.X * scale
		y := o.Position.Y * scale
		switch o.Type {
		case KindTree:
			plotTriangle(c, x, y, skifree.ColorGreen)
		case KindRock:
			c.BeginPath()
			c.Arc(x, y, plotRockSize, 0, 2*math.Pi)
			c.SetFillColor(skifree.ColorGray)
			c.Fill()
		case KindJump:
			c.SetFillColor(skifree.ColorBlue)
			c.FillRect(x-plotMarker, y-plotMarker, 2*plotMarker, 2*plotMarker)
		case KindFinishFlag:
			plotTriangle(c, x, y, skifree.ColorRed)
		}
	}
}

func plotTriangle(c skifree.Canvas, x, y float64, col skifree.Color) {
	c.BeginPath()
	c.MoveTo(x, y-2*plotMarker)
	c.LineTo(x+plotMarker, y+plotMarker)
	c.LineTo(x-plotMarker, y+plotMarker)
	c.ClosePath()
	c.SetFillColor(col)
	c.Fill()
}

// PlotPNG renders Plot onto a white image sized to the scaled course and
// writes it to path.
func PlotPNG(path string, params Parameters, objects []Object, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("plot %s: scale %v must be positive", path, scale)
	}
	w := int(math.Ceil(float64(params.Width) * scale))
	h := int(math.Ceil(float64(params.Height) * scale))
	img := skifree.NewImageCanvas(w+1, h+1)
	img.Clear(skifree.ColorWhite)
	Plot(img, params, objects, scale)
	if err := skifree.WritePNG(path, img.Image()); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
