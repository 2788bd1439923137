package entity

import (
	"errors"
	"fmt"

	"snek/game/types"
)

// ErrOutOfBounds is returned by position-taking grid operations when the
// coordinate falls outside the board.
var ErrOutOfBounds = errors.New("position outside the grid")

// Grid is the board: a dense row-major store of cells with fixed
// dimensions. It is a passive store; what may occupy which cell is
// decided by Snake and FruitManager.
type Grid struct {
	width    int
	height   int
	cells    []types.Cell
	occupied int
}

// NewGrid creates an all-vacant grid with the given dimensions in cells.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]types.Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Occupied returns the number of non-vacant cells.
func (g *Grid) Occupied() int { return g.occupied }

func (g *Grid) inBounds(p types.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p types.Point) int {
	return p.Y*g.width + p.X
}

// Get returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Get(p types.Point) (types.Cell, error) {
	if !g.inBounds(p) {
		return types.Cell{}, fmt.Errorf("get %s: %w", p, ErrOutOfBounds)
	}
	return g.cells[g.index(p)], nil
}

// Set stores the cell at p, or returns ErrOutOfBounds.
func (g *Grid) Set(p types.Point, c types.Cell) error {
	if !g.inBounds(p) {
		return fmt.Errorf("set %s: %w", p, ErrOutOfBounds)
	}
	g.put(p, c)
	return nil
}

// put stores a cell at a position already known to be in bounds,
// keeping the occupancy count current.
func (g *Grid) put(p types.Point, c types.Cell) {
	i := g.index(p)
	was := g.cells[i].Kind.Occupied()
	now := c.Kind.Occupied()
	switch {
	case now && !was:
		g.occupied++
	case was && !now:
		g.occupied--
	}
	g.cells[i] = c
}

// VacantCells returns every vacant position, row by row.
func (g *Grid) VacantCells() []types.Point {
	pts := make([]types.Point, 0, g.Size()-g.occupied)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := types.Point{X: x, Y: y}
			if g.cells[g.index(p)].Kind == types.Vacant {
				pts = append(pts, p)
			}
		}
	}
	return pts
}
