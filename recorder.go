package skifree

import "math"

// Op identifies a recorded canvas call.
type Op uint8

const (
	OpBeginPath Op = iota
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpStroke
	OpFill
	OpStrokeRect
	OpFillRect
	OpSetStrokeColor
	OpSetFillColor
	OpSetFillGradient
	OpSetLineWidth
	OpSave
	OpRestore
	OpTranslate
)

var opNames = [...]string{
	OpBeginPath:       "beginPath",
	OpMoveTo:          "moveTo",
	OpLineTo:          "lineTo",
	OpArc:             "arc",
	OpClosePath:       "closePath",
	OpStroke:          "stroke",
	OpFill:            "fill",
	OpStrokeRect:      "strokeRect",
	OpFillRect:        "fillRect",
	OpSetStrokeColor:  "setStrokeColor",
	OpSetFillColor:    "setFillColor",
	OpSetFillGradient: "setFillGradient",
	OpSetLineWidth:    "setLineWidth",
	OpSave:            "save",
	OpRestore:         "restore",
	OpTranslate:       "translate",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Command is one recorded canvas call. Args hold the call's numeric
// arguments as passed, in local space.
type Command struct {
	Op       Op
	Args     []float64
	Color    Color
	Gradient *LinearGradient
}

// Segment is a stroked straight line in device space, with the stroke style
// that was current when it was painted.
type Segment struct {
	From, To Vec2
	Color    Color
	Width    float64
}

// ArcShape is an arc added to a path, in device space. Filled and Stroked
// record whether the path holding it was painted and with what.
type ArcShape struct {
	Center     Vec2
	Radius     float64
	Start, End float64

	Filled    bool
	FillColor Color

	Stroked     bool
	StrokeColor Color
	StrokeWidth float64
}

// RectShape is a rectangle painted by StrokeRect or FillRect, in device space.
type RectShape struct {
	Op       Op // OpStrokeRect or OpFillRect
	Rect     Rect
	Color    Color
	Gradient *LinearGradient // fill gradient, if any
	Width    float64         // stroke width (StrokeRect only)
}

// Recorder is a Canvas that records every call instead of drawing. It keeps
// full canvas state, so the derived shapes carry the styles and transform
// that were current when they were painted.
type Recorder struct {
	state stateStack

	commands []Command

	// current path, device space
	path     path
	pathArcs []int

	segments []Segment
	arcs     []ArcShape
	rects    []RectShape
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{state: newStateStack()}
}

// Reset discards everything recorded and returns to the default state.
func (r *Recorder) Reset() {
	r.state = newStateStack()
	r.commands = r.commands[:0]
	r.path.reset()
	r.pathArcs = r.pathArcs[:0]
	r.segments = r.segments[:0]
	r.arcs = r.arcs[:0]
	r.rects = r.rects[:0]
}

// Commands returns every recorded call. The returned slice MUST NOT be mutated.
func (r *Recorder) Commands() []Command { return r.commands }

// Segments returns every stroked line segment.
func (r *Recorder) Segments() []Segment { return r.segments }

// Arcs returns every arc added to a path.
func (r *Recorder) Arcs() []ArcShape { return r.arcs }

// Rects returns every painted rectangle.
func (r *Recorder) Rects() []RectShape { return r.rects }

// Depth returns the number of unrestored Save calls.
func (r *Recorder) Depth() int { return r.state.depth() }

// Transform returns the current transform matrix [a, b, c, d, tx, ty].
func (r *Recorder) Transform() [6]float64 { return r.state.cur.transform }

// LineWidth returns the current line width.
func (r *Recorder) LineWidth() float64 { return r.state.cur.lineWidth }

func (r *Recorder) record(op Op, args ...float64) {
	r.commands = append(r.commands, Command{Op: op, Args: args})
}

func (r *Recorder) BeginPath() {
	r.record(OpBeginPath)
	r.path.reset()
	r.pathArcs = r.pathArcs[:0]
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(OpMoveTo, x, y)
	r.path.moveTo(r.state.apply(x, y))
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(OpLineTo, x, y)
	r.path.lineTo(r.state.apply(x, y))
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record(OpArc, x, y, radius, startAngle, endAngle)
	cx, cy := r.state.apply(x, y)
	r.path.arc(cx, cy, radius, startAngle, endAngle)
	r.pathArcs = append(r.pathArcs, len(r.arcs))
	r.arcs = append(r.arcs, ArcShape{
		Center: Vec2{cx, cy},
		Radius: radius,
		Start:  startAngle,
		End:    endAngle,
	})
}

func (r *Recorder) ClosePath() {
	r.record(OpClosePath)
	r.path.close()
}

func (r *Recorder) Stroke() {
	r.record(OpStroke)
	st := &r.state.cur
	for _, i := range r.pathArcs {
		r.arcs[i].Stroked = true
		r.arcs[i].StrokeColor = st.strokeColor
		r.arcs[i].StrokeWidth = st.lineWidth
	}
	r.segments = appendPathSegments(r.segments, r.path.ops, st.strokeColor, st.lineWidth)
}

func (r *Recorder) Fill() {
	r.record(OpFill)
	for _, i := range r.pathArcs {
		r.arcs[i].Filled = true
		r.arcs[i].FillColor = r.state.cur.fill.color
	}
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.record(OpStrokeRect, x, y, w, h)
	r.rects = append(r.rects, RectShape{
		Op:    OpStrokeRect,
		Rect:  r.deviceRect(x, y, w, h),
		Color: r.state.cur.strokeColor,
		Width: r.state.cur.lineWidth,
	})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(OpFillRect, x, y, w, h)
	r.rects = append(r.rects, RectShape{
		Op:       OpFillRect,
		Rect:     r.deviceRect(x, y, w, h),
		Color:    r.state.cur.fill.color,
		Gradient: r.state.cur.fill.gradient,
	})
}

func (r *Recorder) deviceRect(x, y, w, h float64) Rect {
	dx, dy := r.state.apply(x, y)
	return Rect{X: dx, Y: dy, Width: w, Height: h}
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.commands = append(r.commands, Command{Op: OpSetStrokeColor, Color: c})
	r.state.cur.strokeColor = c
}

func (r *Recorder) SetFillColor(c Color) {
	r.commands = append(r.commands, Command{Op: OpSetFillColor, Color: c})
	r.state.cur.fill = fillPaint{color: c}
}

func (r *Recorder) SetFillGradient(g *LinearGradient) {
	r.commands = append(r.commands, Command{Op: OpSetFillGradient, Gradient: g})
	r.state.cur.fill = fillPaint{gradient: g}
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(OpSetLineWidth, w)
	r.state.cur.lineWidth = w
}

func (r *Recorder) Save() {
	r.record(OpSave)
	r.state.save()
}

func (r *Recorder) Restore() {
	r.record(OpRestore)
	r.state.restore()
}

func (r *Recorder) Translate(x, y float64) {
	r.record(OpTranslate, x, y)
	r.state.translate(x, y)
}

// appendPathSegments appends the straight segments of a path. Arcs are not
// segments but they move the pen to their end point.
func appendPathSegments(dst []Segment, ops []pathOp, c Color, width float64) []Segment {
	var pen, start Vec2
	hasPen := false
	for _, op := range ops {
		switch op.kind {
		case pathMoveTo:
			pen = Vec2{op.x, op.y}
			start = pen
			hasPen = true
		case pathLineTo:
			to := Vec2{op.x, op.y}
			if hasPen {
				dst = append(dst, Segment{From: pen, To: to, Color: c, Width: width})
			} else {
				start = to
			}
			pen = to
			hasPen = true
		case pathArc:
			sx, sy, ex, ey := arcEndpoints(op.x, op.y, op.radius, op.start, op.end)
			from := Vec2{sx, sy}
			if !hasPen {
				start = from
			} else if !nearVec(pen, from) {
				dst = append(dst, Segment{From: pen, To: from, Color: c, Width: width})
			}
			pen = Vec2{ex, ey}
			hasPen = true
		case pathClose:
			if hasPen && !nearVec(pen, start) {
				dst = append(dst, Segment{From: pen, To: start, Color: c, Width: width})
			}
			pen = start
		}
	}
	return dst
}

func nearVec(a, b Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
