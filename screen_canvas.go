package skifree

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a 1x1 white image every ScreenCanvas triangle is drawn with;
// color comes from the vertices.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// miterLimit matches the HTML canvas default.
const miterLimit = 10

// ScreenCanvas is a Canvas that draws onto an Ebitengine image. Paths are
// tessellated with ebiten/v2/vector and submitted with DrawTriangles.
type ScreenCanvas struct {
	dst   *ebiten.Image
	state stateStack
	path  path

	// reused triangle buffers
	vs []ebiten.Vertex
	is []uint16
}

// NewScreenCanvas creates a canvas that draws onto dst.
func NewScreenCanvas(dst *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{dst: dst, state: newStateStack()}
}

func (c *ScreenCanvas) BeginPath() { c.path.reset() }

func (c *ScreenCanvas) MoveTo(x, y float64) { c.path.moveTo(c.state.apply(x, y)) }

func (c *ScreenCanvas) LineTo(x, y float64) { c.path.lineTo(c.state.apply(x, y)) }

func (c *ScreenCanvas) Arc(x, y, radius, startAngle, endAngle float64) {
	cx, cy := c.state.apply(x, y)
	c.path.arc(cx, cy, radius, startAngle, endAngle)
}

func (c *ScreenCanvas) ClosePath() { c.path.close() }

func (c *ScreenCanvas) Stroke() {
	if c.path.empty() {
		return
	}
	c.stroke(c.path.ops)
}

func (c *ScreenCanvas) Fill() {
	if c.path.empty() {
		return
	}
	c.fill(c.path.ops)
}

func (c *ScreenCanvas) StrokeRect(x, y, w, h float64) {
	c.stroke(rectOps(c.state.cur.transform, x, y, w, h))
}

func (c *ScreenCanvas) FillRect(x, y, w, h float64) {
	c.fill(rectOps(c.state.cur.transform, x, y, w, h))
}

func (c *ScreenCanvas) SetStrokeColor(col Color) { c.state.cur.strokeColor = col }

func (c *ScreenCanvas) SetFillColor(col Color) { c.state.cur.fill = fillPaint{color: col} }

func (c *ScreenCanvas) SetFillGradient(g *LinearGradient) { c.state.cur.fill = fillPaint{gradient: g} }

func (c *ScreenCanvas) SetLineWidth(w float64) { c.state.cur.lineWidth = w }

func (c *ScreenCanvas) Save() { c.state.save() }

func (c *ScreenCanvas) Restore() { c.state.restore() }

func (c *ScreenCanvas) Translate(x, y float64) { c.state.translate(x, y) }

func (c *ScreenCanvas) stroke(ops []pathOp) {
	st := &c.state.cur
	c.vs, c.is = buildStroke(c.vs[:0], c.is[:0], ops, st.lineWidth, st.strokeColor)
	c.submit(ebiten.FillRuleFillAll)
}

func (c *ScreenCanvas) fill(ops []pathOp) {
	c.vs, c.is = buildFill(c.vs[:0], c.is[:0], ops, c.state.cur.fill, c.state.cur.transform)
	c.submit(ebiten.FillRuleNonZero)
}

func (c *ScreenCanvas) submit(rule ebiten.FillRule) {
	if len(c.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	c.dst.DrawTriangles(c.vs, c.is, ensureWhitePixel(), op)
}

// toVectorPath converts device-space path ops to a vector.Path.
func toVectorPath(ops []pathOp) *vector.Path {
	var p vector.Path
	for _, op := range ops {
		switch op.kind {
		case pathMoveTo:
			p.MoveTo(float32(op.x), float32(op.y))
		case pathLineTo:
			p.LineTo(float32(op.x), float32(op.y))
		case pathArc:
			p.Arc(float32(op.x), float32(op.y), float32(op.radius),
				float32(op.start), float32(op.end), vector.Clockwise)
		case pathClose:
			p.Close()
		}
	}
	return &p
}

// buildStroke tessellates the outline of ops with the given width and color.
func buildStroke(vs []ebiten.Vertex, is []uint16, ops []pathOp, width float64, col Color) ([]ebiten.Vertex, []uint16) {
	if width <= 0 {
		return vs, is
	}
	start := len(vs)
	vs, is = toVectorPath(ops).AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		LineCap:    vector.LineCapButt,
		MiterLimit: miterLimit,
	})
	for i := start; i < len(vs); i++ {
		setVertexColor(&vs[i], col)
	}
	return vs, is
}

// buildFill tessellates the interior of ops. Gradient fills color each
// vertex by its projection onto the gradient axis; the gradient's points
// are mapped through m, the transform current at fill time.
func buildFill(vs []ebiten.Vertex, is []uint16, ops []pathOp, paint fillPaint, m [6]float64) ([]ebiten.Vertex, []uint16) {
	start := len(vs)
	vs, is = toVectorPath(ops).AppendVerticesAndIndicesForFilling(vs, is)

	var dg *LinearGradient
	if g := paint.gradient; g != nil {
		x0, y0 := transformPoint(m, g.X0, g.Y0)
		x1, y1 := transformPoint(m, g.X1, g.Y1)
		dg = &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Ease: g.Ease, stops: g.stops}
	}
	for i := start; i < len(vs); i++ {
		col := paint.color
		if dg != nil {
			col = dg.ColorAt(dg.Project(float64(vs[i].DstX), float64(vs[i].DstY)))
		}
		setVertexColor(&vs[i], col)
	}
	return vs, is
}

// setVertexColor samples the center of the white pixel and tints it.
// Colors are straight alpha, matching the default ColorScaleMode.
func setVertexColor(v *ebiten.Vertex, col Color) {
	v.SrcX = 0.5
	v.SrcY = 0.5
	v.ColorR = float32(clamp01(col.R))
	v.ColorG = float32(clamp01(col.G))
	v.ColorB = float32(clamp01(col.B))
	v.ColorA = float32(clamp01(col.A))
}
