// Package skifree draws the skier, trees and jump ramps of a downhill skiing
// game onto a 2D canvas.
//
// Everything draws through the [Canvas] interface, a small subset of the HTML
// canvas 2D context: paths, rectangles, solid and gradient paint, line width,
// save/restore and translation. Three implementations ship with the package:
//
//   - [Recorder] records calls and derives the stroked segments, arcs and
//     rectangles. Use it to test renderers.
//   - [ImageCanvas] rasterises in software with [gg]. Use it for PNG export.
//   - [ScreenCanvas] draws onto an [ebiten.Image] with [Ebitengine].
//
// # Quick start
//
//	scene := skifree.NewScene()
//	scene.Player.Facing = skifree.FacingDown
//	if err := skifree.Run(scene, skifree.RunConfig{Title: "skifree"}); err != nil {
//		log.Fatal(err)
//	}
//
// Or headless:
//
//	err := skifree.RenderPNG(scene, "scene.png", skifree.ColorWhite)
//
// # Scene and renderers
//
// A [Scene] owns the entities of one frame. [Scene.Draw] saves the canvas
// state, draws the skier, trees, jumps, rocks, finish flags and other skiers
// in that order, and restores the state on the way out. Renderers such as
// [DrawSkier] and [DrawTree] can also be called directly; none of them mutate
// the entity they draw.
//
// The course, room and server packages build on top: a generated slope,
// per-player views of it, and a websocket endpoint serving those views.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
package skifree
