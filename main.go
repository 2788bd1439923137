package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snek/game"
	"snek/game/types"
	"snek/ui"
)

const title = "Snek"

func main() {
	width := flag.Int("width", 19, "Board width in cells")
	height := flag.Int("height", 15, "Board height in cells")
	interval := flag.Float64("interval", types.MoveInterval, "Seconds between snake moves")
	seed := flag.Uint64("seed", 0, "Randomness seed (0 = from clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	g := game.NewWithSeed(*width, *height, *seed)
	g.SetMoveInterval(*interval)
	log.Printf("run %s: %dx%d board, seed %d", g.ID(), *width, *height, *seed)

	rl.InitWindow(500, 430, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(g)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions(g)
		}

		// Input is applied before the time advance, so a turn registered
		// in the same frame as a movement tick takes effect first.
		if d, ok := pressedDirection(); ok {
			if err := g.RequestDirection(d); err != nil {
				rl.SetWindowTitle(fmt.Sprintf("%s: %v", title, err))
			}
		}

		wasOver := g.State() == types.StateEnd
		g.Advance(float64(rl.GetFrameTime()))
		if !wasOver && g.State() == types.StateEnd {
			rl.SetWindowTitle(fmt.Sprintf("%s: %s - over!", title, g.Cause()))
			log.Printf("run %s: %s, final length %d", g.ID(), g.Cause(), g.Length())
		}

		renderer.Draw(g)
	}
}

// pressedDirection maps this frame's arrow-key press, if any.
func pressedDirection() (types.Direction, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyLeft):
		return types.DirLeft, true
	case rl.IsKeyPressed(rl.KeyRight):
		return types.DirRight, true
	case rl.IsKeyPressed(rl.KeyUp):
		return types.DirUp, true
	case rl.IsKeyPressed(rl.KeyDown):
		return types.DirDown, true
	}
	return types.DirNone, false
}
