// Package room admits players to a shared course and builds the per-player
// view payloads the server sends.
package room

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/phanxgames/skifree/course"
)

// ErrUnknownPlayer is returned for player IDs that are not in the room.
var ErrUnknownPlayer = errors.New("unknown player")

// Payload is what one player is told about the course: the objects their
// camera can see and the camera's view parameters.
type Payload struct {
	GameObjects  []course.Object `json:"game_objects" jsonschema:"required"`
	CameraParams course.Camera   `json:"camera_params" jsonschema:"required"`
}

// Player is a skier admitted to the room.
type Player struct {
	ID       string
	Color    string
	Position course.Position
}

// Room is a single game room. It is safe for concurrent use.
type Room struct {
	mu      sync.Mutex
	params  course.Parameters
	rng     *rand.Rand
	log     *slog.Logger
	course  *course.Course
	colors  ColorCycler
	starts  *StartCycler
	players map[string]Player
}

// Option configures a Room.
type Option func(*Room)

// WithRand sets the random source used to generate courses.
func WithRand(rng *rand.Rand) Option {
	return func(r *Room) { r.rng = rng }
}

// WithLogger sets the room's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Room) { r.log = l }
}

// New returns an empty room. The course is generated when the first player
// joins.
func New(params course.Parameters, opts ...Option) (*Room, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("new room: %w", err)
	}
	r := &Room{
		params:  params,
		starts:  NewStartCycler(params),
		players: make(map[string]Player),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	r.course = course.New(params)
	return r, nil
}

// Join admits a new player with the next color and start position. Joining
// an empty room regenerates the course.
func (r *Room) Join() (Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) == 0 {
		r.log.Info("generating course")
		c, err := course.Generate(r.params, r.rng)
		if err != nil {
			return Player{}, fmt.Errorf("join: %w", err)
		}
		r.course = c
		r.log.Info("course generated", "objects", c.Len())
	}

	p := Player{
		ID:       uuid.NewString(),
		Color:    r.colors.Next(),
		Position: r.starts.Next(),
	}
	err := r.course.AddPlayer(course.Player{ID: p.ID, Color: p.Color, Position: p.Position})
	if err != nil {
		return Player{}, fmt.Errorf("join: %w", err)
	}
	r.players[p.ID] = p
	r.log.Debug("player created", "id", p.ID, "color", p.Color, "x", p.Position.X, "y", p.Position.Y)
	return p, nil
}

// Leave removes a player from the room and the course.
func (r *Room) Leave(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return fmt.Errorf("leave %s: %w", id, ErrUnknownPlayer)
	}
	delete(r.players, id)
	if err := r.course.RemovePlayer(id); err != nil {
		return fmt.Errorf("leave %s: %w", id, err)
	}
	r.log.Debug("player removed", "id", id)
	return nil
}

// Payload returns the view payload for a player: every object within the
// bounds of a camera centred on the player.
func (r *Room) Payload(id string) (Payload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return Payload{}, fmt.Errorf("payload for %s: %w", id, ErrUnknownPlayer)
	}
	cam, err := r.course.CameraFor(id)
	if err != nil {
		return Payload{}, fmt.Errorf("payload for %s: %w", id, err)
	}
	objs := r.course.Visible(cam)
	if objs == nil {
		objs = []course.Object{}
	}
	return Payload{GameObjects: objs, CameraParams: cam}, nil
}

// Players returns the number of players in the room.
func (r *Room) Players() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Parameters returns the course parameters.
func (r *Room) Parameters() course.Parameters {
	return r.params
}

// Objects returns a snapshot of every object on the current course.
func (r *Room) Objects() []course.Object {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.course.Objects()
}
