package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snek/game/entity"
	"snek/game/types"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSpawnPlacesFruitOnVacantCell(t *testing.T) {
	g := entity.NewGrid(9, 9)
	fm := NewFruitManager(newRNG(7))

	p, ok := fm.Spawn(g)
	if !ok {
		t.Fatal("Spawn reported no vacancy on an empty grid")
	}
	cell, err := g.Get(p)
	if err != nil {
		t.Fatalf("spawned outside the grid: %v", err)
	}
	if cell.Kind != types.OccupiedFruit {
		t.Fatalf("spawned cell kind = %v, want OccupiedFruit", cell.Kind)
	}

	inPalette := false
	for _, c := range types.FruitPalette {
		if cell.Color == c {
			inPalette = true
		}
	}
	if !inPalette {
		t.Errorf("fruit colour %+v not in palette", cell.Color)
	}
}

func TestSpawnAvoidsOccupiedCells(t *testing.T) {
	g := entity.NewGrid(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			g.Set(types.Point{X: x, Y: y}, types.Cell{Kind: types.OccupiedSnake})
		}
	}
	fm := NewFruitManager(newRNG(3))

	for i := 0; i < 4; i++ {
		p, ok := fm.Spawn(g)
		if !ok {
			t.Fatalf("spawn %d: reported no vacancy with %d vacant cells", i, g.Size()-g.Occupied())
		}
		if p.X != 3 {
			t.Fatalf("spawn %d landed on occupied column: %s", i, p)
		}
	}
}

func TestSpawnSingleVacancy(t *testing.T) {
	want := types.Point{X: 2, Y: 2}

	// Must terminate and pick the only vacancy for any seed.
	for seed := uint64(0); seed < 20; seed++ {
		g := entity.NewGrid(3, 3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if (types.Point{X: x, Y: y}) == want {
					continue
				}
				g.Set(types.Point{X: x, Y: y}, types.Cell{Kind: types.OccupiedSnake})
			}
		}
		p, ok := NewFruitManager(newRNG(seed)).Spawn(g)
		if !ok {
			t.Fatalf("seed %d: reported no vacancy", seed)
		}
		if p != want {
			t.Fatalf("seed %d: spawned at %s, want %s", seed, p, want)
		}
	}
}

func TestSpawnFullGridSkips(t *testing.T) {
	g := entity.NewGrid(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			g.Set(types.Point{X: x, Y: y}, types.Cell{Kind: types.OccupiedSnake})
		}
	}

	if _, ok := NewFruitManager(newRNG(1)).Spawn(g); ok {
		t.Fatal("Spawn placed fruit on a fully occupied grid")
	}
	if g.Occupied() != g.Size() {
		t.Fatalf("occupancy changed: %d", g.Occupied())
	}
}
