package skifree

import "time"

// Scene is the explicit scene state handed to the frame composer. It owns
// every entity drawn in a frame; renderers only read from it.
type Scene struct {
	// Player is the local skier. Nil draws no skier.
	Player *Player
	// Others are additional skiers, drawn after everything else.
	Others []Player

	Trees []Tree
	Jumps []Jump
	Rocks []Rock
	Flags []FinishFlag

	// Offset is the world position drawn at the canvas origin.
	Offset Vec2

	debug bool
}

// NewScene creates the starting scene: a skier facing right at (128, 128),
// one tree and one jump.
func NewScene() *Scene {
	return &Scene{
		Player: NewPlayer(128, 128),
		Trees:  []Tree{{X: 480, Y: 480, Size: 1}},
		Jumps:  []Jump{{X: 320, Y: 400}},
	}
}

// EntityCount returns the number of entities the scene will draw.
func (s *Scene) EntityCount() int {
	n := len(s.Others) + len(s.Trees) + len(s.Jumps) + len(s.Rocks) + len(s.Flags)
	if s.Player != nil {
		n++
	}
	return n
}

// Draw renders the whole scene onto c: the skier, then trees, jumps, rocks,
// finish flags and other skiers. The canvas state is saved first and
// restored on return, including when a renderer panics, so the caller's
// transform is unchanged afterwards.
func (s *Scene) Draw(c Canvas) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	c.Save()
	defer c.Restore()

	if s.Offset != (Vec2{}) {
		c.Translate(-s.Offset.X, -s.Offset.Y)
	}

	if s.Player != nil {
		DrawSkier(c, s.Player)
	}
	for _, t := range s.Trees {
		DrawTree(c, t)
	}
	for _, j := range s.Jumps {
		DrawJump(c, j)
	}
	for _, r := range s.Rocks {
		DrawRock(c, r)
	}
	for _, f := range s.Flags {
		DrawFinishFlag(c, f)
	}
	for i := range s.Others {
		DrawSkier(c, &s.Others[i])
	}

	if s.debug {
		s.debugLog(debugStats{
			drawTime:    time.Since(t0),
			entityCount: s.EntityCount(),
		})
	}
}

// SetDebugMode enables or disables debug mode. When enabled, each Draw logs
// its timing and entity count to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
