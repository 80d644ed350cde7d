package course

import (
	"fmt"

	"github.com/phanxgames/skifree"
)

// Default view parameters: the canvas size plus a margin so objects just
// off-screen are already known to the client.
const (
	DefaultViewWidth  = skifree.CanvasWidth
	DefaultViewHeight = skifree.CanvasHeight
	DefaultViewBuffer = 20
)

// Camera is one player's view of the course.
type Camera struct {
	Position Position `json:"-"`
	Angle    float64  `json:"-"`
	Speed    float64  `json:"-"`

	ViewWidth  int `json:"view_width" jsonschema:"required"`
	ViewHeight int `json:"view_height" jsonschema:"required"`
	ViewBuffer int `json:"view_buffer" jsonschema:"required"`
}

// NewCamera returns a camera centred on pos with the default view size.
func NewCamera(pos Position) Camera {
	return Camera{
		Position:   pos,
		ViewWidth:  DefaultViewWidth,
		ViewHeight: DefaultViewHeight,
		ViewBuffer: DefaultViewBuffer,
	}
}

// Bounds returns the world rectangle the camera reports objects for: the
// view centred on the camera, widened by the buffer on every side. Half
// sizes use integer division.
func (c Camera) Bounds() skifree.Rect {
	halfW := float64(c.ViewWidth / 2)
	halfH := float64(c.ViewHeight / 2)
	buf := float64(c.ViewBuffer)
	return skifree.Rect{
		X:      c.Position.X - halfW - buf,
		Y:      c.Position.Y - halfH - buf,
		Width:  2 * (halfW + buf),
		Height: 2 * (halfH + buf),
	}
}

// Origin returns the world position drawn at the top-left of the view.
func (c Camera) Origin() skifree.Vec2 {
	return skifree.Vec2{
		X: c.Position.X - float64(c.ViewWidth/2),
		Y: c.Position.Y - float64(c.ViewHeight/2),
	}
}

// Visible filters objects to those inside the camera bounds. Objects on the
// boundary are visible.
func (c Camera) Visible(objects []Object) []Object {
	b := c.Bounds()
	var out []Object
	for _, o := range objects {
		if b.Contains(o.Position.X, o.Position.Y) {
			out = append(out, o)
		}
	}
	return out
}

// Visible returns the course objects inside the camera bounds, in the order
// they were added.
func (c *Course) Visible(cam Camera) []Object {
	b := cam.Bounds()
	return c.collect(func(p Position) bool { return b.Contains(p.X, p.Y) })
}

// CameraFor returns a default camera following the given player.
func (c *Course) CameraFor(id string) (Camera, error) {
	e, ok := c.players[id]
	if !ok {
		return Camera{}, fmt.Errorf("camera for %s: %w", id, ErrUnknownPlayer)
	}
	entry := c.world.Entry(e)
	cam := NewCamera(*positionComponent.Get(entry))
	pd := playerComponent.Get(entry)
	cam.Angle = pd.angle
	cam.Speed = pd.speed
	return cam, nil
}
