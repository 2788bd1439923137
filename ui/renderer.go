package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snek/game"
	"snek/game/types"
)

const (
	borderPadding = 10 // padding around the board
	statusHeight  = 30 // reserved strip under the board for status text
)

// Renderer draws the board and a status line with raylib. It only reads
// game state; all simulation logic lives in the game package.
type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
}

func NewRenderer(g *game.Game) *Renderer {
	r := &Renderer{}
	r.UpdateDimensions(g)
	return r
}

// UpdateDimensions recomputes cell size and board offsets from the
// current window size. Call it after a window resize.
func (r *Renderer) UpdateDimensions(g *game.Game) {
	grid := g.Grid()
	availW := int32(rl.GetScreenWidth()) - 2*borderPadding
	availH := int32(rl.GetScreenHeight()) - 2*borderPadding - statusHeight

	cw := availW / int32(grid.Width())
	ch := availH / int32(grid.Height())
	r.cellSize = cw
	if ch < cw {
		r.cellSize = ch
	}

	boardW := r.cellSize * int32(grid.Width())
	boardH := r.cellSize * int32(grid.Height())
	r.offsetX = (int32(rl.GetScreenWidth()) - boardW) / 2
	r.offsetY = (int32(rl.GetScreenHeight()) - statusHeight - boardH) / 2
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	grid := g.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			cell, err := grid.Get(types.Point{X: x, Y: y})
			if err != nil {
				continue
			}

			px := r.offsetX + int32(x)*r.cellSize
			py := r.offsetY + int32(y)*r.cellSize
			if cell.Kind == types.Vacant {
				rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.LightGray)
				continue
			}
			rl.DrawRectangle(px, py, r.cellSize, r.cellSize, cellColor(cell.Color))
		}
	}

	r.drawStatus(g)
	rl.EndDrawing()
}

func (r *Renderer) drawStatus(g *game.Game) {
	var status string
	switch g.State() {
	case types.StateStart:
		status = "press an arrow key to start"
	case types.StateInProgress:
		status = fmt.Sprintf("length: %d", g.Length())
	case types.StateEnd:
		status = fmt.Sprintf("%s - over! length: %d", g.Cause(), g.Length())
	}

	y := int32(rl.GetScreenHeight()) - statusHeight + 5
	rl.DrawText(status, borderPadding, y, 20, rl.DarkGray)
}

func cellColor(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
