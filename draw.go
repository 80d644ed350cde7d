package skifree

import "math"

// Stroke widths used by the renderers.
const (
	outlineWidth = 2
	turnSkiWidth = 3
)

// Skier geometry, relative to the player anchor.
const (
	headOffsetY = 32
	headRadius  = 12
)

// Tree geometry.
const (
	stumpSize       = 20
	branchHalfStep  = 4 // half-width lost per layer
	branchLayerStep = 8 // vertical distance between layers
)

// Jump geometry.
const (
	jumpHeight     = 32
	jumpRailHeight = 16
)

var (
	jumpTopColor    = ColorLightBlue
	jumpBottomColor = ColorSteelBlue
	rockOutline     = MustParseColor("#505050")
)

// DrawSkier draws the player's skis, head and body, in that order.
func DrawSkier(c Canvas, p *Player) {
	DrawSkis(c, p)
	DrawHead(c, p)
	DrawBody(c, p)
}

// DrawHead draws a white circle with a black outline centered 32px above the
// player's anchor.
func DrawHead(c Canvas, p *Player) {
	c.BeginPath()
	c.Arc(p.X, p.Y-headOffsetY, headRadius, 0, 2*math.Pi)
	c.SetFillColor(ColorWhite)
	c.Fill()
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(ColorBlack)
	c.ClosePath()
	c.Stroke()
}

// DrawBody draws the torso outline and the two legs.
func DrawBody(c Canvas, p *Player) {
	x, y := p.X, p.Y
	c.BeginPath()
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(ColorBlack)

	// torso
	c.MoveTo(x-8, y-20)
	c.LineTo(x-8, y-6)
	c.LineTo(x+8, y-6)
	c.LineTo(x+8, y-20)
	c.LineTo(x-8, y-20)

	// legs
	c.MoveTo(x-7, y-6)
	c.LineTo(x-7, y+4)
	c.MoveTo(x+7, y-6)
	c.LineTo(x+7, y+4)

	c.Stroke()
}

// DrawSkis draws the two skis for the player's facing bucket. An invalid
// facing draws nothing.
func DrawSkis(c Canvas, p *Player) {
	x, y := p.X, p.Y
	c.BeginPath()
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(p.SkiColor)

	switch p.Facing {
	case FacingHardLeft:
		c.SetLineWidth(turnSkiWidth)
		c.MoveTo(x-16, y+4)
		c.LineTo(x+12, y+4)
		c.MoveTo(x-12, y+8)
		c.LineTo(x+16, y+8)
	case FacingLeft:
		c.MoveTo(x+12, y)
		c.LineTo(x, y+8)
		c.MoveTo(x, y)
		c.LineTo(x-12, y+8)
	case FacingDown:
		c.MoveTo(x-7, y)
		c.LineTo(x-7, y+10)
		c.MoveTo(x+7, y)
		c.LineTo(x+7, y+10)
	case FacingRight:
		c.MoveTo(x-12, y)
		c.LineTo(x, y+8)
		c.MoveTo(x, y)
		c.LineTo(x+12, y+8)
	case FacingHardRight:
		c.SetLineWidth(turnSkiWidth)
		c.MoveTo(x+16, y+4)
		c.LineTo(x-12, y+4)
		c.MoveTo(x+12, y+8)
		c.LineTo(x-16, y+8)
	}
	c.Stroke()
}

// DrawTree draws a bordered stump centered on the tree's anchor, then its
// branch layers: horizontal lines that narrow by 4px per side and rise by 8px
// per layer from the top of the stump.
func DrawTree(c Canvas, t Tree) {
	half := float64(stumpSize) / 2
	c.SetFillColor(ColorBrown)
	c.FillRect(t.X-half, t.Y-half, stumpSize, stumpSize)
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(ColorBlack)
	c.StrokeRect(t.X-half, t.Y-half, stumpSize, stumpSize)

	n := t.Layers()
	base := t.Y - half
	c.BeginPath()
	c.SetStrokeColor(ColorGreen)
	for i := 0; i < n; i++ {
		hw := float64(branchHalfStep * (n - i))
		ly := base - float64(branchLayerStep*i)
		c.MoveTo(t.X-hw, ly)
		c.LineTo(t.X+hw, ly)
	}
	c.Stroke()
}

// DrawJump draws the ramp face with a top-to-bottom light-to-dark blue
// gradient, a top rail along its upper edge and two side rails rising from
// its upper corners.
func DrawJump(c Canvas, j Jump) {
	half := float64(JumpWidth) / 2
	top := j.Y - jumpHeight/2
	bottom := top + jumpHeight

	g := NewLinearGradient(j.X, top, j.X, bottom)
	g.AddColorStop(0, jumpTopColor)
	g.AddColorStop(1, jumpBottomColor)
	c.SetFillGradient(g)
	c.FillRect(j.X-half, top, JumpWidth, jumpHeight)

	c.BeginPath()
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(ColorBlack)
	c.MoveTo(j.X-half, top)
	c.LineTo(j.X+half, top)
	c.MoveTo(j.X-half, top)
	c.LineTo(j.X-half, top-jumpRailHeight)
	c.MoveTo(j.X+half, top)
	c.LineTo(j.X+half, top-jumpRailHeight)
	c.Stroke()
}

// DrawRock draws a grey boulder. A non-positive radius draws nothing.
func DrawRock(c Canvas, r Rock) {
	if r.Radius <= 0 {
		return
	}
	c.BeginPath()
	c.Arc(r.X, r.Y, r.Radius, 0, 2*math.Pi)
	c.ClosePath()
	c.SetFillColor(ColorGray)
	c.Fill()
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(rockOutline)
	c.Stroke()
}

// DrawFinishFlag draws a 24px pole with a red pennant at its top.
func DrawFinishFlag(c Canvas, f FinishFlag) {
	top := f.Y - 24
	c.BeginPath()
	c.SetLineWidth(outlineWidth)
	c.SetStrokeColor(ColorBlack)
	c.MoveTo(f.X, f.Y)
	c.LineTo(f.X, top)
	c.Stroke()

	c.BeginPath()
	c.MoveTo(f.X, top)
	c.LineTo(f.X+12, top+5)
	c.LineTo(f.X, top+10)
	c.ClosePath()
	c.SetFillColor(ColorRed)
	c.Fill()
}
