package course

import (
	"github.com/phanxgames/skifree"
)

// RockPixelsPerRadius converts an obstacle radius in course units into the
// radius a rock is drawn with.
const RockPixelsPerRadius = 8

// FacingForAngle buckets a skier's heading in degrees into a Facing. Zero is
// straight downhill; positive angles turn left.
func FacingForAngle(angle float64) skifree.Facing {
	switch {
	case angle >= 60:
		return skifree.FacingHardLeft
	case angle >= 15:
		return skifree.FacingLeft
	case angle > -15:
		return skifree.FacingDown
	case angle > -60:
		return skifree.FacingRight
	default:
		return skifree.FacingHardRight
	}
}

// SceneFor turns objects into a drawable scene seen through cam. The player
// whose ID is self becomes the scene's skier; other players are drawn as
// additional skiers on their own ski colors. Start flags have no drawing.
func SceneFor(objects []Object, cam Camera, self string) *skifree.Scene {
	s := &skifree.Scene{Offset: cam.Origin()}
	for _, o := range objects {
		x, y := o.Position.X, o.Position.Y
		switch o.Type {
		case KindTree:
			s.Trees = append(s.Trees, skifree.Tree{X: x, Y: y, Size: 1})
		case KindRock:
			r := DefaultObstacleRadius
			if o.Radius != nil {
				r = *o.Radius
			}
			s.Rocks = append(s.Rocks, skifree.Rock{X: x, Y: y, Radius: r * RockPixelsPerRadius})
		case KindJump:
			s.Jumps = append(s.Jumps, skifree.Jump{X: x, Y: y})
		case KindFinishFlag:
			s.Flags = append(s.Flags, skifree.FinishFlag{X: x, Y: y})
		case KindPlayer:
			p := playerEntity(o)
			if o.PlayerID == self && s.Player == nil {
				s.Player = p
			} else {
				s.Others = append(s.Others, *p)
			}
		}
	}
	return s
}

func playerEntity(o Object) *skifree.Player {
	p := skifree.NewPlayer(o.Position.X, o.Position.Y)
	if o.Angle != nil {
		p.Facing = FacingForAngle(*o.Angle)
	} else {
		p.Facing = skifree.FacingDown
	}
	if c, err := skifree.ParseColor(o.Color); err == nil {
		p.SkiColor = c
	}
	return p
}
