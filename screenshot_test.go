package skifree

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := SanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	if err := RenderPNG(NewScene(), path, ColorWhite); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != CanvasWidth || cfg.Height != CanvasHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, CanvasWidth, CanvasHeight)
	}
}

func TestScreenshotFileName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := Screenshot(NewScene(), dir, "first run", now)
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if filepath.Base(path) != "20260102_030405_first_run.png" {
		t.Errorf("name = %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), Render(NewScene(), ColorWhite).Image())
	if err == nil || !strings.Contains(err.Error(), "create") {
		t.Errorf("err = %v, want create error", err)
	}
}
