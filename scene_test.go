package skifree

import (
	"reflect"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Player == nil {
		t.Fatal("player should not be nil")
	}
	if s.Player.X != 128 || s.Player.Y != 128 || s.Player.Facing != FacingRight {
		t.Errorf("player = %+v", *s.Player)
	}
	if len(s.Trees) != 1 || s.Trees[0] != (Tree{480, 480, 1}) {
		t.Errorf("trees = %v", s.Trees)
	}
	if len(s.Jumps) != 1 {
		t.Errorf("jumps = %v", s.Jumps)
	}
	if s.EntityCount() != 3 {
		t.Errorf("EntityCount = %d, want 3", s.EntityCount())
	}
}

func TestSceneDrawSaveRestoreSymmetry(t *testing.T) {
	r := NewRecorder()
	r.Translate(7, 9)
	before := r.Transform()

	s := NewScene()
	s.Offset = Vec2{100, 50}
	s.Draw(r)

	if r.Depth() != 0 {
		t.Errorf("depth = %d, want 0", r.Depth())
	}
	assertMatrix(t, "transform", r.Transform(), before)

	cmds := r.Commands()
	if cmds[1].Op != OpSave {
		t.Errorf("first composer op = %v, want save", cmds[1].Op)
	}
	if cmds[len(cmds)-1].Op != OpRestore {
		t.Errorf("last op = %v, want restore", cmds[len(cmds)-1].Op)
	}
}

func TestSceneDrawOrder(t *testing.T) {
	r := NewRecorder()
	NewScene().Draw(r)

	// The skier's head is the only arc; the stump and jump face are the only
	// rectangles. The head must come before the stump, the stump before the face.
	var arcAt, stumpAt, faceAt = -1, -1, -1
	for i, c := range r.Commands() {
		switch {
		case c.Op == OpArc && arcAt < 0:
			arcAt = i
		case c.Op == OpFillRect && stumpAt < 0:
			stumpAt = i
		case c.Op == OpFillRect:
			faceAt = i
		}
	}
	if !(arcAt >= 0 && arcAt < stumpAt && stumpAt < faceAt) {
		t.Errorf("order head=%d stump=%d face=%d, want increasing", arcAt, stumpAt, faceAt)
	}
}

func TestSceneDrawAppliesOffset(t *testing.T) {
	r := NewRecorder()
	s := &Scene{Trees: []Tree{{X: 1000, Y: 2000, Size: 1}}, Offset: Vec2{900, 1900}}
	s.Draw(r)
	stump := r.Rects()[0].Rect
	if stump.X != 90 || stump.Y != 90 {
		t.Errorf("stump at (%v, %v), want (90, 90)", stump.X, stump.Y)
	}
}

func TestSceneDrawIsIdempotent(t *testing.T) {
	s := NewScene()
	s.Rocks = []Rock{{X: 10, Y: 10, Radius: 4}}
	s.Flags = []FinishFlag{{X: 40, Y: 40}}
	s.Others = []Player{*NewPlayer(300, 300)}

	snapshot := *s.Player
	trees := append([]Tree(nil), s.Trees...)

	a := NewRecorder()
	s.Draw(a)
	b := NewRecorder()
	s.Draw(b)

	if !reflect.DeepEqual(a.Segments(), b.Segments()) {
		t.Error("segments differ between draws")
	}
	if !reflect.DeepEqual(a.Arcs(), b.Arcs()) {
		t.Error("arcs differ between draws")
	}
	if len(a.Commands()) != len(b.Commands()) {
		t.Errorf("command counts %d vs %d", len(a.Commands()), len(b.Commands()))
	}
	if *s.Player != snapshot {
		t.Error("player mutated by Draw")
	}
	if !reflect.DeepEqual(trees, s.Trees) {
		t.Error("trees mutated by Draw")
	}
}

func TestSceneDrawNilPlayer(t *testing.T) {
	r := NewRecorder()
	(&Scene{}).Draw(r)
	if len(r.Commands()) != 2 {
		t.Errorf("empty scene commands = %d, want save+restore", len(r.Commands()))
	}
}

// panicCanvas panics on the first FillRect, after the composer has saved
// state and translated.
type panicCanvas struct {
	*Recorder
}

func (p panicCanvas) FillRect(x, y, w, h float64) {
	panic("fill failed")
}

func TestSceneDrawRestoresOnPanic(t *testing.T) {
	r := NewRecorder()
	s := NewScene()
	s.Offset = Vec2{10, 10}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		s.Draw(panicCanvas{r})
	}()

	if r.Depth() != 0 {
		t.Errorf("depth after panic = %d, want 0", r.Depth())
	}
	assertMatrix(t, "transform", r.Transform(), identityTransform)
}
