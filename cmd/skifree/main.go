// Skifree shows the prototype scene: a skier at (128, 128), one tree and one
// jump ramp on a 640×540 canvas. The scene is drawn once.
//
// With -png or -screenshot the scene is rendered headless to a PNG instead of
// opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/phanxgames/skifree"
)

const windowTitle = "skifree"

func main() {
	facing := flag.Int("facing", int(skifree.FacingRight), "skier facing, -2 (hard left) to 2 (hard right)")
	showFPS := flag.Bool("fps", false, "show FPS overlay")
	debug := flag.Bool("debug", false, "print draw timing to stderr")
	pngPath := flag.String("png", "", "render to this PNG file instead of opening a window")
	shotDir := flag.String("screenshot", "", "render a timestamped PNG into this directory and exit")
	flag.Parse()

	f, err := skifree.ParseFacing(*facing)
	if err != nil {
		log.Fatal(err)
	}

	scene := skifree.NewScene()
	scene.Player.Facing = f
	scene.SetDebugMode(*debug)

	switch {
	case *pngPath != "":
		if err := skifree.RenderPNG(scene, *pngPath, skifree.ColorWhite); err != nil {
			log.Fatal(err)
		}
		fmt.Println(*pngPath)
	case *shotDir != "":
		path, err := skifree.Screenshot(scene, *shotDir, "facing_"+f.String(), time.Now())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(path)
	default:
		if err := skifree.Run(scene, skifree.RunConfig{
			Title:   windowTitle,
			ShowFPS: *showFPS,
		}); err != nil {
			log.Fatal(err)
		}
	}
}
