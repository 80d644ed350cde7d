package skifree

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height default to the canvas size.
	Width, Height int
	// ClearColor is painted under the scene. The zero value is white.
	ClearColor Color
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = CanvasWidth
	}
	if c.Height <= 0 {
		c.Height = CanvasHeight
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = ColorWhite
	}
	if c.Title == "" {
		c.Title = "skifree"
	}
	return c
}

// host adapts a Scene to ebiten.Game. The scene is drawn exactly once into an
// offscreen frame; every Draw afterwards only presents that frame.
type host struct {
	scene *Scene
	cfg   RunConfig
	frame *ebiten.Image
	draws int
}

func (h *host) Update() error { return nil }

func (h *host) Draw(screen *ebiten.Image) {
	if h.frame == nil {
		h.frame = ebiten.NewImage(h.cfg.Width, h.cfg.Height)
		h.frame.Fill(h.cfg.ClearColor.toRGBA())
		h.scene.Draw(NewScreenCanvas(h.frame))
		h.draws++
	}
	screen.DrawImage(h.frame, nil)
	if h.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (h *host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}

// Run opens a window showing the scene and blocks until it is closed.
// The window is not resizable; the scene is drawn once.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&host{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
