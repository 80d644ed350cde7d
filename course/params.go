// Package course generates the ski slope: trees, rocks and jumps scattered
// over a large map with a line of finish flags at the bottom, plus the
// players currently on it. Objects live in a donburi world.
package course

import (
	"errors"
	"fmt"
)

// Parameters describes the course layout. Distances are in world pixels.
type Parameters struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// ObjectStartOffset keeps obstacles away from the start line.
	ObjectStartOffset float64 `json:"object_start_offset"`
	// FinishLineOffset is the run-out space after the finish flags.
	FinishLineOffset float64 `json:"finish_line_offset"`
	// PlayerStartDistance is the spacing reserved between starting players.
	PlayerStartDistance float64 `json:"player_start_distance"`

	Obstacles int `json:"n_obstacles"`
	Powerups  int `json:"n_powerups"`

	// Physics constants. Carried in the parameters for clients; the course
	// itself does not simulate anything.
	Acceleration  float64 `json:"acceleration"`
	Slope         float64 `json:"slope"`
	Friction      float64 `json:"friction"`
	AirResistance float64 `json:"air_resistance"`
}

// FinishFlagSpacing is the horizontal distance between finish flags.
const FinishFlagSpacing = 20

// DefaultParameters returns the standard course: 3000×20000 with 5000
// obstacles and 500 jumps.
func DefaultParameters() Parameters {
	return Parameters{
		Width:               3000,
		Height:              20000,
		ObjectStartOffset:   200,
		FinishLineOffset:    100,
		PlayerStartDistance: 20,
		Obstacles:           5000,
		Powerups:            500,
		Acceleration:        9.8,
		Slope:               0.1,
		Friction:            0.1,
		AirResistance:       0.1,
	}
}

// ErrInvalidParameters is wrapped by every Validate failure.
var ErrInvalidParameters = errors.New("invalid course parameters")

// Validate reports whether the parameters describe a course that can be
// generated.
func (p Parameters) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidParameters, p.Width, p.Height)
	case p.ObjectStartOffset < 0 || p.FinishLineOffset < 0:
		return fmt.Errorf("%w: negative offset", ErrInvalidParameters)
	case p.ObjectStartOffset >= float64(p.Height)-p.FinishLineOffset:
		return fmt.Errorf("%w: no room between start offset %v and finish line at %v",
			ErrInvalidParameters, p.ObjectStartOffset, p.FinishLineY())
	case p.Obstacles < 0 || p.Powerups < 0:
		return fmt.Errorf("%w: negative object count", ErrInvalidParameters)
	}
	return nil
}

// FinishLineY is the y coordinate of the finish flags.
func (p Parameters) FinishLineY() float64 {
	return float64(p.Height) - p.FinishLineOffset
}
