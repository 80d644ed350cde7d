package skifree

import (
	"image"

	"github.com/fogleman/gg"
)

// easedGradientSamples is the number of intervals used to approximate a
// gradient whose Ease is not linear.
const easedGradientSamples = 32

// ImageCanvas is a software-rasterised Canvas backed by a gg context. It
// needs no window or GPU, so it is what PNG export and pixel tests use.
type ImageCanvas struct {
	dc    *gg.Context
	state stateStack
	path  path
}

// NewImageCanvas creates a transparent w×h canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	dc := gg.NewContext(w, h)
	dc.SetLineCapButt()
	return &ImageCanvas{dc: dc, state: newStateStack()}
}

// Image returns the canvas pixels.
func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}

// Width returns the canvas width in pixels.
func (c *ImageCanvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *ImageCanvas) Height() int { return c.dc.Height() }

// Clear fills the whole canvas with col, ignoring the transform.
func (c *ImageCanvas) Clear(col Color) {
	c.dc.SetColor(col.NRGBA())
	c.dc.Clear()
}

func (c *ImageCanvas) BeginPath() { c.path.reset() }

func (c *ImageCanvas) MoveTo(x, y float64) { c.path.moveTo(c.state.apply(x, y)) }

func (c *ImageCanvas) LineTo(x, y float64) { c.path.lineTo(c.state.apply(x, y)) }

func (c *ImageCanvas) Arc(x, y, radius, startAngle, endAngle float64) {
	cx, cy := c.state.apply(x, y)
	c.path.arc(cx, cy, radius, startAngle, endAngle)
}

func (c *ImageCanvas) ClosePath() { c.path.close() }

func (c *ImageCanvas) Stroke() {
	if c.path.empty() {
		return
	}
	c.loadPath(c.path.ops)
	c.stroke()
}

func (c *ImageCanvas) Fill() {
	if c.path.empty() {
		return
	}
	c.loadPath(c.path.ops)
	c.fill()
}

func (c *ImageCanvas) StrokeRect(x, y, w, h float64) {
	c.loadPath(rectOps(c.state.cur.transform, x, y, w, h))
	c.stroke()
}

func (c *ImageCanvas) FillRect(x, y, w, h float64) {
	c.loadPath(rectOps(c.state.cur.transform, x, y, w, h))
	c.fill()
}

func (c *ImageCanvas) SetStrokeColor(col Color) { c.state.cur.strokeColor = col }

func (c *ImageCanvas) SetFillColor(col Color) { c.state.cur.fill = fillPaint{color: col} }

func (c *ImageCanvas) SetFillGradient(g *LinearGradient) { c.state.cur.fill = fillPaint{gradient: g} }

func (c *ImageCanvas) SetLineWidth(w float64) { c.state.cur.lineWidth = w }

func (c *ImageCanvas) Save() { c.state.save() }

func (c *ImageCanvas) Restore() { c.state.restore() }

func (c *ImageCanvas) Translate(x, y float64) { c.state.translate(x, y) }

// loadPath replaces the gg path with ops. Points are already in device
// space and the gg matrix is never changed from identity.
func (c *ImageCanvas) loadPath(ops []pathOp) {
	c.dc.ClearPath()
	for _, op := range ops {
		switch op.kind {
		case pathMoveTo:
			c.dc.MoveTo(op.x, op.y)
		case pathLineTo:
			c.dc.LineTo(op.x, op.y)
		case pathArc:
			c.dc.DrawArc(op.x, op.y, op.radius, op.start, op.end)
		case pathClose:
			c.dc.ClosePath()
		}
	}
}

func (c *ImageCanvas) stroke() {
	st := &c.state.cur
	c.dc.SetStrokeStyle(gg.NewSolidPattern(st.strokeColor.NRGBA()))
	c.dc.SetLineWidth(st.lineWidth)
	c.dc.Stroke()
}

func (c *ImageCanvas) fill() {
	c.dc.SetFillStyle(c.fillPattern())
	c.dc.Fill()
}

func (c *ImageCanvas) fillPattern() gg.Pattern {
	fp := c.state.cur.fill
	if fp.gradient == nil {
		return gg.NewSolidPattern(fp.color.NRGBA())
	}
	g := fp.gradient
	x0, y0 := c.state.apply(g.X0, g.Y0)
	x1, y1 := c.state.apply(g.X1, g.Y1)
	lg := gg.NewLinearGradient(x0, y0, x1, y1)
	if g.Ease == nil {
		for _, s := range g.Stops() {
			lg.AddColorStop(s.Offset, s.Color.NRGBA())
		}
		return lg
	}
	for i := 0; i <= easedGradientSamples; i++ {
		t := float64(i) / easedGradientSamples
		lg.AddColorStop(t, g.ColorAt(t).NRGBA())
	}
	return lg
}
