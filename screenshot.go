package skifree

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Render draws the scene once onto a fresh canvas-sized ImageCanvas cleared
// to background and returns the result.
func Render(scene *Scene, background Color) *ImageCanvas {
	c := NewImageCanvas(CanvasWidth, CanvasHeight)
	c.Clear(background)
	scene.Draw(c)
	return c
}

// RenderPNG renders the scene and writes it to path as a PNG.
func RenderPNG(scene *Scene, path string, background Color) error {
	return WritePNG(path, Render(scene, background).Image())
}

// Screenshot renders the scene into dir with a timestamped, sanitised file
// name and returns the path written.
func Screenshot(scene *Scene, dir, label string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s.png", now.Format("20060102_150405"), SanitizeLabel(label))
	path := filepath.Join(dir, name)
	if err := RenderPNG(scene, path, ColorWhite); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// WritePNG encodes an image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
