package skifree

import "math"

// Canvas dimensions and the element identifier a host document uses for the
// surface.
const (
	CanvasWidth  = 640
	CanvasHeight = 540
	CanvasID     = "skiCanvas"
)

// Canvas is the drawing-context capability the renderers consume. It mirrors
// the subset of the HTML canvas 2D context the game uses.
//
// Stroke and Fill paint the current path without clearing it. StrokeRect and
// FillRect paint a rectangle without touching the current path. Save and
// Restore cover the transform, colors, fill paint and line width.
//
// Implementations: Recorder (structural tests), ImageCanvas (software
// raster) and ScreenCanvas (Ebitengine).
type Canvas interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a clockwise circular arc centered at (x, y). Angles are in
	// radians with 0 pointing along +X.
	Arc(x, y, radius, startAngle, endAngle float64)
	ClosePath()
	Stroke()
	Fill()

	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetFillGradient(g *LinearGradient)
	SetLineWidth(w float64)

	Save()
	Restore()
	Translate(x, y float64)
}

// --- Path model shared by the raster backends ---

type pathOpKind uint8

const (
	pathMoveTo pathOpKind = iota
	pathLineTo
	pathArc
	pathClose
)

// pathOp is one path-building call with its points already in device space.
type pathOp struct {
	kind       pathOpKind
	x, y       float64
	radius     float64
	start, end float64
}

// path accumulates the current path between BeginPath calls.
type path struct {
	ops []pathOp
}

func (p *path) reset() {
	p.ops = p.ops[:0]
}

func (p *path) moveTo(x, y float64) {
	p.ops = append(p.ops, pathOp{kind: pathMoveTo, x: x, y: y})
}

func (p *path) lineTo(x, y float64) {
	p.ops = append(p.ops, pathOp{kind: pathLineTo, x: x, y: y})
}

func (p *path) arc(x, y, r, start, end float64) {
	p.ops = append(p.ops, pathOp{kind: pathArc, x: x, y: y, radius: r, start: start, end: end})
}

func (p *path) close() {
	p.ops = append(p.ops, pathOp{kind: pathClose})
}

func (p *path) empty() bool {
	return len(p.ops) == 0
}

// rectOps returns the closed-rectangle path for (x, y, w, h) under m.
func rectOps(m [6]float64, x, y, w, h float64) []pathOp {
	x0, y0 := transformPoint(m, x, y)
	x1, y1 := transformPoint(m, x+w, y)
	x2, y2 := transformPoint(m, x+w, y+h)
	x3, y3 := transformPoint(m, x, y+h)
	return []pathOp{
		{kind: pathMoveTo, x: x0, y: y0},
		{kind: pathLineTo, x: x1, y: y1},
		{kind: pathLineTo, x: x2, y: y2},
		{kind: pathLineTo, x: x3, y: y3},
		{kind: pathClose},
	}
}

// arcEndpoints returns the first and last point of a clockwise arc.
func arcEndpoints(x, y, r, start, end float64) (sx, sy, ex, ey float64) {
	sx = x + r*math.Cos(start)
	sy = y + r*math.Sin(start)
	ex = x + r*math.Cos(end)
	ey = y + r*math.Sin(end)
	return
}
