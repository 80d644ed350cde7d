package skifree

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// translateAffine returns m followed by a translation of (tx, ty) in m's
// local space, matching the canvas translate() semantics.
func translateAffine(m [6]float64, tx, ty float64) [6]float64 {
	return multiplyAffine(m, [6]float64{1, 0, 0, 1, tx, ty})
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// fillPaint is either a solid color or a gradient. A nil gradient means solid.
type fillPaint struct {
	color    Color
	gradient *LinearGradient
}

// canvasState is the part of a drawing context covered by Save/Restore.
type canvasState struct {
	transform   [6]float64
	strokeColor Color
	fill        fillPaint
	lineWidth   float64
}

func defaultCanvasState() canvasState {
	return canvasState{
		transform:   identityTransform,
		strokeColor: ColorBlack,
		fill:        fillPaint{color: ColorBlack},
		lineWidth:   1,
	}
}

// stateStack holds the current canvas state plus everything saved above it.
// Every backend embeds one so Save/Restore behave identically.
type stateStack struct {
	cur   canvasState
	saved []canvasState
}

func newStateStack() stateStack {
	return stateStack{cur: defaultCanvasState()}
}

func (s *stateStack) save() {
	s.saved = append(s.saved, s.cur)
}

// restore pops the most recently saved state. Restoring an empty stack is a
// no-op, as it is for an HTML canvas.
func (s *stateStack) restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *stateStack) depth() int {
	return len(s.saved)
}

func (s *stateStack) translate(tx, ty float64) {
	s.cur.transform = translateAffine(s.cur.transform, tx, ty)
}

// apply maps a local point into device space.
func (s *stateStack) apply(x, y float64) (float64, float64) {
	return transformPoint(s.cur.transform, x, y)
}
