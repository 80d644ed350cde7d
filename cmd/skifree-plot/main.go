// Skifree-plot generates a course, adds one player, and writes an overview
// image of the course plus that player's view payload as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/phanxgames/skifree"
	"github.com/phanxgames/skifree/course"
	"github.com/phanxgames/skifree/room"
)

func main() {
	plotPath := flag.String("plot", "game_plot.png", "course overview PNG")
	jsonPath := flag.String("json", "game.json", "view payload JSON")
	viewPath := flag.String("view", "", "also render the player's view to this PNG")
	scale := flag.Float64("scale", 0.1, "overview pixels per course pixel")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	if err := run(*plotPath, *jsonPath, *viewPath, *scale, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(plotPath, jsonPath, viewPath string, scale float64, seed uint64) error {
	opts := []room.Option{room.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}
	if seed != 0 {
		opts = append(opts, room.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	params := course.DefaultParameters()
	rm, err := room.New(params, opts...)
	if err != nil {
		return err
	}
	player, err := rm.Join()
	if err != nil {
		return err
	}

	if err := course.PlotPNG(plotPath, params, rm.Objects(), scale); err != nil {
		return err
	}
	fmt.Println(plotPath)

	payload, err := rm.Payload(player.ID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	fmt.Println(jsonPath)

	if viewPath != "" {
		scene := course.SceneFor(payload.GameObjects, payload.CameraParams, player.ID)
		if err := skifree.RenderPNG(scene, viewPath, skifree.ColorWhite); err != nil {
			return err
		}
		fmt.Println(viewPath)
	}
	return nil
}
