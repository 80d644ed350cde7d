package course

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/skifree"
)

func smallParams() Parameters {
	p := DefaultParameters()
	p.Width = 200
	p.Height = 1000
	p.Obstacles = 50
	p.Powerups = 10
	return p
}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.FinishLineY() != 19900 {
		t.Errorf("FinishLineY = %v, want 19900", p.FinishLineY())
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Parameters)
	}{
		{"zero width", func(p *Parameters) { p.Width = 0 }},
		{"negative height", func(p *Parameters) { p.Height = -1 }},
		{"negative offset", func(p *Parameters) { p.ObjectStartOffset = -1 }},
		{"no room", func(p *Parameters) { p.ObjectStartOffset = 19950 }},
		{"negative obstacles", func(p *Parameters) { p.Obstacles = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.modify(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("Validate = %v, want ErrInvalidParameters", err)
			}
		})
	}
}

func TestGenerateCounts(t *testing.T) {
	p := smallParams()
	c, err := Generate(p, newRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	obstacles := c.Count(KindTree) + c.Count(KindRock)
	if obstacles != p.Obstacles {
		t.Errorf("obstacles = %d, want %d", obstacles, p.Obstacles)
	}
	if c.Count(KindJump) != p.Powerups {
		t.Errorf("jumps = %d, want %d", c.Count(KindJump), p.Powerups)
	}
	wantFlags := p.Width / FinishFlagSpacing
	if c.Count(KindFinishFlag) != wantFlags {
		t.Errorf("flags = %d, want %d", c.Count(KindFinishFlag), wantFlags)
	}
	if c.Len() != obstacles+p.Powerups+wantFlags {
		t.Errorf("Len = %d", c.Len())
	}
}

func TestGeneratePlacement(t *testing.T) {
	p := smallParams()
	c, err := Generate(p, newRNG(2))
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range c.Objects() {
		if o.Position.X < 0 || o.Position.X > float64(p.Width) {
			t.Errorf("%s x = %v out of range", o.Type, o.Position.X)
		}
		switch o.Type {
		case KindFinishFlag:
			if o.Position.Y != p.FinishLineY() {
				t.Errorf("flag y = %v, want %v", o.Position.Y, p.FinishLineY())
			}
		default:
			if o.Position.Y < p.ObjectStartOffset || o.Position.Y > p.FinishLineY() {
				t.Errorf("%s y = %v out of range", o.Type, o.Position.Y)
			}
		}
		if o.Type.IsObstacle() {
			if o.Radius == nil || *o.Radius != DefaultObstacleRadius {
				t.Errorf("%s radius = %v", o.Type, o.Radius)
			}
		} else if o.Radius != nil {
			t.Errorf("%s should have no radius", o.Type)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := Generate(smallParams(), newRNG(7))
	b, _ := Generate(smallParams(), newRNG(7))
	ao, bo := a.Objects(), b.Objects()
	if len(ao) != len(bo) {
		t.Fatalf("len %d vs %d", len(ao), len(bo))
	}
	for i := range ao {
		if ao[i].Type != bo[i].Type || ao[i].Position != bo[i].Position {
			t.Fatalf("object %d differs: %+v vs %+v", i, ao[i], bo[i])
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	p := smallParams()
	p.Width = 0
	if _, err := Generate(p, newRNG(1)); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("err = %v, want ErrInvalidParameters", err)
	}
}

func TestObjectsInsertionOrder(t *testing.T) {
	c := New(smallParams())
	kinds := []Kind{KindJump, KindTree, KindStartFlag, KindRock, KindFinishFlag}
	for i, k := range kinds {
		if err := c.AddObject(k, Position{X: float64(i)}); err != nil {
			t.Fatal(err)
		}
	}
	objs := c.Objects()
	if len(objs) != len(kinds) {
		t.Fatalf("len = %d", len(objs))
	}
	for i, o := range objs {
		if o.Type != kinds[i] || o.Position.X != float64(i) {
			t.Errorf("objs[%d] = %+v, want %s at %d", i, o, kinds[i], i)
		}
	}
}

func TestAddObjectRejectsPlayer(t *testing.T) {
	c := New(smallParams())
	if err := c.AddObject(KindPlayer, Position{}); err == nil {
		t.Error("expected error adding player through AddObject")
	}
}

func TestPlayers(t *testing.T) {
	c := New(smallParams())
	p := Player{ID: "a", Color: "#0000FF", Position: Position{X: 100, Y: 0}, Speed: 2, Angle: 30}
	if err := c.AddPlayer(p); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPlayer(p); !errors.Is(err, ErrDuplicatePlayer) {
		t.Errorf("duplicate add = %v", err)
	}
	if c.PlayerCount() != 1 {
		t.Errorf("PlayerCount = %d", c.PlayerCount())
	}
	pos, err := c.PlayerPosition("a")
	if err != nil || pos != p.Position {
		t.Errorf("PlayerPosition = %v, %v", pos, err)
	}

	objs := c.Objects()
	if len(objs) != 1 {
		t.Fatalf("objects = %d", len(objs))
	}
	o := objs[0]
	if o.Type != KindPlayer || o.Color != "#0000FF" || o.PlayerID != "a" {
		t.Errorf("player object = %+v", o)
	}
	if o.Speed == nil || *o.Speed != 2 || o.Angle == nil || *o.Angle != 30 {
		t.Errorf("speed/angle = %v/%v", o.Speed, o.Angle)
	}

	if err := c.RemovePlayer("a"); err != nil {
		t.Fatal(err)
	}
	if err := c.RemovePlayer("a"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("second remove = %v", err)
	}
	if _, err := c.PlayerPosition("a"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("position after remove = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after remove", c.Len())
	}
}

func TestObjectJSON(t *testing.T) {
	r := 1.0
	tree := Object{Type: KindTree, Position: Position{X: 1, Y: 2}, Radius: &r}
	b, err := json.Marshal(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"tree","position":{"x":1,"y":2,"z":0},"height":0,"radius":1}`
	if string(b) != want {
		t.Errorf("tree json = %s, want %s", b, want)
	}

	speed, angle := 0.0, 0.0
	player := Object{Type: KindPlayer, Color: "#0000FF", Speed: &speed, Angle: &angle, PlayerID: "secret"}
	b, _ = json.Marshal(player)
	if strings.Contains(string(b), "secret") || strings.Contains(string(b), "radius") {
		t.Errorf("player json = %s", b)
	}
	if !strings.Contains(string(b), `"speed":0`) || !strings.Contains(string(b), `"color":"#0000FF"`) {
		t.Errorf("player json = %s", b)
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(Position{X: 1000, Y: 500})
	b := cam.Bounds()
	want := skifree.Rect{X: 1000 - 320 - 20, Y: 500 - 270 - 20, Width: 680, Height: 580}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}

	cam.ViewWidth = 641
	if got := cam.Bounds().X; got != 1000-320-20 {
		t.Errorf("odd width X = %v, want integer half", got)
	}
}

func TestCameraVisible(t *testing.T) {
	cam := NewCamera(Position{X: 1000, Y: 500})
	objs := []Object{
		{Type: KindTree, Position: Position{X: 1000, Y: 500}},
		{Type: KindRock, Position: Position{X: 660, Y: 500}},  // left edge
		{Type: KindRock, Position: Position{X: 659, Y: 500}},  // just outside
		{Type: KindJump, Position: Position{X: 1000, Y: 790}}, // bottom edge
		{Type: KindJump, Position: Position{X: 1000, Y: 791}},
	}
	got := cam.Visible(objs)
	if len(got) != 3 {
		t.Fatalf("visible = %v", got)
	}
	if got[0].Type != KindTree || got[1].Position.X != 660 || got[2].Position.Y != 790 {
		t.Errorf("visible = %+v", got)
	}
}

func TestCourseVisibleMatchesCamera(t *testing.T) {
	c, _ := Generate(smallParams(), newRNG(3))
	cam := NewCamera(Position{X: 100, Y: 500})
	a := c.Visible(cam)
	b := cam.Visible(c.Objects())
	if len(a) != len(b) {
		t.Fatalf("course %d vs camera %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Position != b[i].Position {
			t.Fatalf("object %d differs", i)
		}
	}
}

func TestCameraFor(t *testing.T) {
	c := New(smallParams())
	if _, err := c.CameraFor("x"); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("unknown = %v", err)
	}
	_ = c.AddPlayer(Player{ID: "x", Position: Position{X: 50, Y: 60}, Angle: 10, Speed: 3})
	cam, err := c.CameraFor("x")
	if err != nil {
		t.Fatal(err)
	}
	if cam.Position != (Position{X: 50, Y: 60}) || cam.Angle != 10 || cam.Speed != 3 {
		t.Errorf("camera = %+v", cam)
	}
	if cam.ViewWidth != 640 || cam.ViewHeight != 540 || cam.ViewBuffer != 20 {
		t.Errorf("view = %+v", cam)
	}
}

func TestFacingForAngle(t *testing.T) {
	tests := []struct {
		angle float64
		want  skifree.Facing
	}{
		{90, skifree.FacingHardLeft},
		{60, skifree.FacingHardLeft},
		{30, skifree.FacingLeft},
		{0, skifree.FacingDown},
		{-14, skifree.FacingDown},
		{-15, skifree.FacingRight},
		{-60, skifree.FacingHardRight},
		{-90, skifree.FacingHardRight},
	}
	for _, tt := range tests {
		if got := FacingForAngle(tt.angle); got != tt.want {
			t.Errorf("FacingForAngle(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestSceneFor(t *testing.T) {
	radius := 2.0
	angle := 30.0
	objs := []Object{
		{Type: KindTree, Position: Position{X: 10, Y: 20}},
		{Type: KindRock, Position: Position{X: 30, Y: 40}, Radius: &radius},
		{Type: KindJump, Position: Position{X: 50, Y: 60}},
		{Type: KindFinishFlag, Position: Position{X: 70, Y: 80}},
		{Type: KindStartFlag, Position: Position{X: 0, Y: 0}},
		{Type: KindPlayer, Position: Position{X: 100, Y: 100}, Color: "#0000FF", Angle: &angle, PlayerID: "me"},
		{Type: KindPlayer, Position: Position{X: 120, Y: 100}, Color: "#008000", PlayerID: "other"},
	}
	cam := NewCamera(Position{X: 100, Y: 100})
	s := SceneFor(objs, cam, "me")

	if s.Offset != (skifree.Vec2{X: 100 - 320, Y: 100 - 270}) {
		t.Errorf("offset = %v", s.Offset)
	}
	if len(s.Trees) != 1 || len(s.Jumps) != 1 || len(s.Flags) != 1 {
		t.Errorf("trees/jumps/flags = %d/%d/%d", len(s.Trees), len(s.Jumps), len(s.Flags))
	}
	if len(s.Rocks) != 1 || s.Rocks[0].Radius != 2*RockPixelsPerRadius {
		t.Errorf("rocks = %v", s.Rocks)
	}
	if s.Player == nil {
		t.Fatal("self player missing")
	}
	if s.Player.Facing != skifree.FacingLeft || s.Player.SkiColor != skifree.ColorBlue {
		t.Errorf("self = %+v", *s.Player)
	}
	if len(s.Others) != 1 || s.Others[0].SkiColor != skifree.ColorGreen || s.Others[0].Facing != skifree.FacingDown {
		t.Errorf("others = %+v", s.Others)
	}
}

func TestSceneForDraws(t *testing.T) {
	c, _ := Generate(smallParams(), newRNG(4))
	_ = c.AddPlayer(Player{ID: "me", Color: "#FFFF00", Position: Position{X: 100, Y: 400}})
	cam, _ := c.CameraFor("me")
	s := SceneFor(c.Visible(cam), cam, "me")

	r := skifree.NewRecorder()
	s.Draw(r)
	if r.Depth() != 0 {
		t.Errorf("depth = %d", r.Depth())
	}
	// The skier's head sits at the view centre.
	var found bool
	for _, a := range r.Arcs() {
		if a.Radius == 12 && a.Center == (skifree.Vec2{X: 320, Y: 270 - 32}) {
			found = true
		}
	}
	if !found {
		t.Error("skier head not drawn at view centre")
	}
}

func TestPlot(t *testing.T) {
	p := smallParams()
	objs := []Object{
		{Type: KindTree, Position: Position{X: 100, Y: 100}},
		{Type: KindRock, Position: Position{X: 100, Y: 200}},
		{Type: KindJump, Position: Position{X: 100, Y: 300}},
		{Type: KindFinishFlag, Position: Position{X: 100, Y: 900}},
		{Type: KindStartFlag, Position: Position{X: 0, Y: 0}},
	}
	r := skifree.NewRecorder()
	Plot(r, p, objs, 0.5)

	if r.Depth() != 0 {
		t.Errorf("depth = %d", r.Depth())
	}
	rects := r.Rects()
	if len(rects) != 2 {
		t.Fatalf("rects = %d, want border and jump", len(rects))
	}
	if rects[0].Rect != (skifree.Rect{Width: 100, Height: 500}) {
		t.Errorf("border = %+v", rects[0].Rect)
	}
	if rects[1].Color != skifree.ColorBlue || rects[1].Rect.X != 50-plotMarker {
		t.Errorf("jump marker = %+v", rects[1])
	}
	if len(r.Arcs()) != 1 || r.Arcs()[0].FillColor != skifree.ColorGray {
		t.Errorf("rock arcs = %+v", r.Arcs())
	}
}

func TestPlotPNG(t *testing.T) {
	p := smallParams()
	c, _ := Generate(p, newRNG(5))
	path := filepath.Join(t.TempDir(), "course.png")
	if err := PlotPNG(path, p, c.Objects(), 0.25); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("stat = %v, %v", fi, err)
	}
	if err := PlotPNG(path, p, nil, 0); err == nil {
		t.Error("expected error for zero scale")
	}
}
