package manager

import (
	"golang.org/x/exp/rand"

	"snek/game/entity"
	"snek/game/types"
)

// FruitManager places fruit on vacant cells.
type FruitManager struct {
	rng *rand.Rand
}

func NewFruitManager(rng *rand.Rand) *FruitManager {
	return &FruitManager{rng: rng}
}

// Spawn marks one vacant cell as fruit with a colour drawn from the
// fruit palette and reports the chosen position. On a fully occupied
// grid it reports false and places nothing.
//
// Selection is rejection sampling, which stays cheap while fruit
// density is low. After Size() rejections it falls back to picking
// uniformly among the vacant cells, so termination is guaranteed even
// with a single vacancy left.
func (fm *FruitManager) Spawn(grid *entity.Grid) (types.Point, bool) {
	if grid.Occupied() == grid.Size() {
		return types.Point{}, false
	}

	for i := 0; i < grid.Size(); i++ {
		p := types.Point{
			X: fm.rng.Intn(grid.Width()),
			Y: fm.rng.Intn(grid.Height()),
		}
		if cell, err := grid.Get(p); err == nil && cell.Kind == types.Vacant {
			fm.place(grid, p)
			return p, true
		}
	}

	vacant := grid.VacantCells()
	p := vacant[fm.rng.Intn(len(vacant))]
	fm.place(grid, p)
	return p, true
}

func (fm *FruitManager) place(grid *entity.Grid, p types.Point) {
	colour := types.FruitPalette[fm.rng.Intn(len(types.FruitPalette))]
	// The position was just verified vacant; Set cannot fail here.
	_ = grid.Set(p, types.Cell{Kind: types.OccupiedFruit, Color: colour})
}
