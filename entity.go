package skifree

import (
	"errors"
	"fmt"
)

// Facing is the skier's discrete ski orientation bucket. It is a closed
// enumeration: each value selects one hand-authored ski drawing and there is
// no interpolation between buckets.
type Facing int8

const (
	FacingHardLeft  Facing = -2 // skis flat across the slope, pointing left
	FacingLeft      Facing = -1 // skis angled down-left
	FacingDown      Facing = 0  // skis straight down the fall line
	FacingRight     Facing = 1  // skis angled down-right
	FacingHardRight Facing = 2  // skis flat across the slope, pointing right
)

// ErrInvalidFacing is returned by ParseFacing for values outside -2..2.
var ErrInvalidFacing = errors.New("invalid facing")

// Valid reports whether f is one of the five facing buckets.
func (f Facing) Valid() bool {
	return f >= FacingHardLeft && f <= FacingHardRight
}

// ParseFacing converts an integer code into a Facing.
func ParseFacing(v int) (Facing, error) {
	f := Facing(v)
	if int(f) != v || !f.Valid() {
		return 0, fmt.Errorf("parse facing %d: %w", v, ErrInvalidFacing)
	}
	return f, nil
}

func (f Facing) String() string {
	switch f {
	case FacingHardLeft:
		return "hard-left"
	case FacingLeft:
		return "left"
	case FacingDown:
		return "down"
	case FacingRight:
		return "right"
	case FacingHardRight:
		return "hard-right"
	default:
		return fmt.Sprintf("Facing(%d)", int8(f))
	}
}

// PlayerStateWaiting is the only player state the renderer knows about.
const PlayerStateWaiting = "waiting"

// Player is the skier. X and Y are the anchor point: the skis hang just below
// it, the head sits 32px above it.
type Player struct {
	X, Y   float64
	State  string
	Facing Facing
	// SkiColor is the stroke color of the skis.
	SkiColor Color
}

// NewPlayer returns a waiting player at (x, y) facing right on red skis.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:        x,
		Y:        y,
		State:    PlayerStateWaiting,
		Facing:   FacingRight,
		SkiColor: ColorRed,
	}
}

// treeLayersPerSize is the number of branch layers per unit of Tree.Size.
const treeLayersPerSize = 8

// Tree is a decorative pine. Size scales the number of branch layers.
type Tree struct {
	X, Y float64
	Size int
}

// Layers returns the number of branch layers drawn for this tree.
func (t Tree) Layers() int {
	if t.Size <= 0 {
		return 0
	}
	return treeLayersPerSize * t.Size
}

// JumpWidth is the fixed width of a jump ramp.
const JumpWidth = 64

// Jump is a ramp. X, Y is the center of its face.
type Jump struct {
	X, Y float64
}

// Rock is a round obstacle.
type Rock struct {
	X, Y   float64
	Radius float64
}

// FinishFlag marks the finish line. X, Y is the foot of its pole.
type FinishFlag struct {
	X, Y float64
}
