package room

import "github.com/phanxgames/skifree/course"

// PlayerColors is the order in which joining players are given ski colors.
var PlayerColors = []string{
	"#0000FF", // blue
	"#008000", // green
	"#FFFF00", // yellow
	"#800080", // purple
	"#FFA500", // orange
}

// ColorCycler hands out PlayerColors in order, wrapping after the last.
type ColorCycler struct {
	index int
}

// Next returns the next color.
func (c *ColorCycler) Next() string {
	col := PlayerColors[c.index]
	c.index = (c.index + 1) % len(PlayerColors)
	return col
}

// StartCycler hands out start positions. Every player starts at the top
// centre of the course; Issued counts how many positions were handed out.
type StartCycler struct {
	BoxWidth float64
	Width    int
	Height   int

	Issued int
}

// NewStartCycler returns a cycler for a course of the given parameters.
func NewStartCycler(p course.Parameters) *StartCycler {
	return &StartCycler{BoxWidth: p.PlayerStartDistance, Width: p.Width, Height: p.Height}
}

// Next returns the next start position.
func (s *StartCycler) Next() course.Position {
	s.Issued++
	return course.Position{X: float64(s.Width / 2), Y: 0}
}
