package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	cases := []struct {
		dir, want Direction
	}{
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirNone, DirNone},
	}
	for _, c := range cases {
		if got := c.dir.Opposite(); got != c.want {
			t.Errorf("%s.Opposite() = %s, want %s", c.dir, got, c.want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirNone, 0, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%s.Delta() = (%d,%d), want (%d,%d)", c.dir, dx, dy, c.dx, c.dy)
		}
	}
}

func TestPointAddSub(t *testing.T) {
	p := Point{X: 3, Y: 4}

	if got := p.Add(DirUp); got != (Point{X: 3, Y: 3}) {
		t.Errorf("Add(Up) = %s, want (3,3)", got)
	}
	if got := p.Sub(DirUp); got != (Point{X: 3, Y: 5}) {
		t.Errorf("Sub(Up) = %s, want (3,5)", got)
	}
	if got := p.Add(DirNone); got != p {
		t.Errorf("Add(None) = %s, want %s", got, p)
	}
}

func TestCellKindOccupied(t *testing.T) {
	if Vacant.Occupied() {
		t.Error("Vacant should not be occupied")
	}
	if !OccupiedSnake.Occupied() || !OccupiedFruit.Occupied() {
		t.Error("snake and fruit cells should be occupied")
	}
}
