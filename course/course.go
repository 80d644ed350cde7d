package course

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// --- Components ---

type objectData struct {
	kind   Kind
	height float64
	radius float64 // obstacles only
	seq    uint64  // insertion order, for stable output
}

type playerData struct {
	id    string
	color string
	speed float64
	angle float64
}

var (
	positionComponent = donburi.NewComponentType[Position]()
	objectComponent   = donburi.NewComponentType[objectData]()
	playerComponent   = donburi.NewComponentType[playerData]()

	objectQuery = donburi.NewQuery(filter.Contains(positionComponent, objectComponent))
)

// ErrUnknownPlayer is returned for player IDs not on the course.
var ErrUnknownPlayer = errors.New("unknown player")

// ErrDuplicatePlayer is returned when adding a player ID twice.
var ErrDuplicatePlayer = errors.New("duplicate player")

// Course is a generated slope and everything on it. It is not safe for
// concurrent use.
type Course struct {
	params  Parameters
	world   donburi.World
	nextSeq uint64
	players map[string]donburi.Entity
}

// New returns an empty course with the given parameters.
func New(params Parameters) *Course {
	return &Course{
		params:  params,
		world:   donburi.NewWorld(),
		players: make(map[string]donburi.Entity),
	}
}

// Generate builds a course: params.Obstacles trees and rocks (chosen evenly)
// and params.Powerups jumps, uniformly placed between the start offset and
// the finish line, then a row of finish flags every FinishFlagSpacing pixels.
func Generate(params Parameters, rng *rand.Rand) (*Course, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("generate course: %w", err)
	}
	c := New(params)

	minY := params.ObjectStartOffset
	maxY := params.FinishLineY()
	width := float64(params.Width)

	for range params.Obstacles {
		kind := KindTree
		if rng.IntN(2) == 1 {
			kind = KindRock
		}
		pos := Position{X: uniform(rng, 0, width), Y: uniform(rng, minY, maxY)}
		c.add(kind, pos, DefaultObstacleRadius)
	}
	for range params.Powerups {
		pos := Position{X: uniform(rng, 0, width), Y: uniform(rng, minY, maxY)}
		c.add(KindJump, pos, 0)
	}
	for x := 0; x < params.Width; x += FinishFlagSpacing {
		c.add(KindFinishFlag, Position{X: float64(x), Y: maxY}, 0)
	}
	return c, nil
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + (high-low)*rng.Float64()
}

// Parameters returns the parameters the course was built with.
func (c *Course) Parameters() Parameters {
	return c.params
}

func (c *Course) add(kind Kind, pos Position, radius float64) donburi.Entity {
	var e donburi.Entity
	if kind == KindPlayer {
		e = c.world.Create(positionComponent, objectComponent, playerComponent)
	} else {
		e = c.world.Create(positionComponent, objectComponent)
	}
	entry := c.world.Entry(e)
	positionComponent.SetValue(entry, pos)
	objectComponent.SetValue(entry, objectData{kind: kind, radius: radius, seq: c.nextSeq})
	c.nextSeq++
	return e
}

// AddObject places a non-player object on the course.
func (c *Course) AddObject(kind Kind, pos Position) error {
	if kind == KindPlayer {
		return fmt.Errorf("add object: use AddPlayer for %q", kind)
	}
	radius := 0.0
	if kind.IsObstacle() {
		radius = DefaultObstacleRadius
	}
	c.add(kind, pos, radius)
	return nil
}

// AddPlayer puts a skier on the course.
func (c *Course) AddPlayer(p Player) error {
	if _, ok := c.players[p.ID]; ok {
		return fmt.Errorf("add player %s: %w", p.ID, ErrDuplicatePlayer)
	}
	e := c.add(KindPlayer, p.Position, 0)
	playerComponent.SetValue(c.world.Entry(e), playerData{
		id:    p.ID,
		color: p.Color,
		speed: p.Speed,
		angle: p.Angle,
	})
	c.players[p.ID] = e
	return nil
}

// RemovePlayer takes a skier off the course.
func (c *Course) RemovePlayer(id string) error {
	e, ok := c.players[id]
	if !ok {
		return fmt.Errorf("remove player %s: %w", id, ErrUnknownPlayer)
	}
	c.world.Remove(e)
	delete(c.players, id)
	return nil
}

// PlayerPosition returns where a skier is.
func (c *Course) PlayerPosition(id string) (Position, error) {
	e, ok := c.players[id]
	if !ok {
		return Position{}, fmt.Errorf("player %s: %w", id, ErrUnknownPlayer)
	}
	return *positionComponent.Get(c.world.Entry(e)), nil
}

// PlayerCount returns the number of skiers on the course.
func (c *Course) PlayerCount() int {
	return len(c.players)
}

// Len returns the number of objects on the course, players included.
func (c *Course) Len() int {
	return objectQuery.Count(c.world)
}

// Count returns the number of objects of one kind.
func (c *Course) Count(kind Kind) int {
	n := 0
	objectQuery.Each(c.world, func(entry *donburi.Entry) {
		if objectComponent.Get(entry).kind == kind {
			n++
		}
	})
	return n
}

// Objects returns every object in the order it was added.
func (c *Course) Objects() []Object {
	return c.collect(func(Position) bool { return true })
}

// collect returns the objects whose position passes keep, in the order they
// were added.
func (c *Course) collect(keep func(Position) bool) []Object {
	type ordered struct {
		seq uint64
		obj Object
	}
	var out []ordered
	objectQuery.Each(c.world, func(entry *donburi.Entry) {
		pos := *positionComponent.Get(entry)
		if !keep(pos) {
			return
		}
		od := objectComponent.Get(entry)
		obj := Object{Type: od.kind, Position: pos, Height: od.height}
		if od.kind.IsObstacle() {
			r := od.radius
			obj.Radius = &r
		}
		if entry.HasComponent(playerComponent) {
			pd := playerComponent.Get(entry)
			speed, angle := pd.speed, pd.angle
			obj.Color = pd.color
			obj.Speed = &speed
			obj.Angle = &angle
			obj.PlayerID = pd.id
		}
		out = append(out, ordered{seq: od.seq, obj: obj})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	objs := make([]Object, len(out))
	for i := range out {
		objs[i] = out[i].obj
	}
	return objs
}
