package course

// Kind names a type of map object. The string values are the wire names.
type Kind string

const (
	KindTree       Kind = "tree"
	KindRock       Kind = "rock"
	KindJump       Kind = "jump"
	KindFinishFlag Kind = "finish_flag"
	KindStartFlag  Kind = "start_flag"
	KindPlayer     Kind = "player"
)

// IsObstacle reports whether objects of this kind block a skier.
func (k Kind) IsObstacle() bool {
	return k == KindTree || k == KindRock
}

// DefaultObstacleRadius is the radius given to generated trees and rocks.
const DefaultObstacleRadius = 1.0

// Position is a point on the course. Z is height above the snow.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Object is the wire form of anything on the course. Obstacles carry a
// radius; players carry color, speed and angle.
type Object struct {
	Type     Kind     `json:"type" jsonschema:"required,enum=tree,enum=rock,enum=jump,enum=finish_flag,enum=start_flag,enum=player"`
	Position Position `json:"position" jsonschema:"required"`
	Height   float64  `json:"height"`

	Radius *float64 `json:"radius,omitempty"`

	Color string   `json:"color,omitempty"`
	Speed *float64 `json:"speed,omitempty"`
	Angle *float64 `json:"angle,omitempty"`

	// PlayerID identifies player objects. Not sent to clients.
	PlayerID string `json:"-"`
}

// Player describes a skier to add to a course.
type Player struct {
	ID       string
	Color    string
	Position Position
	Speed    float64
	Angle    float64
}
