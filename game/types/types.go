package types

import "fmt"

// Point is a 0-indexed cell coordinate. X grows rightward, Y downward.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the point one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the point one step opposite direction d.
func (p Point) Sub(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X - dx, Y: p.Y - dy}
}

// Direction is the snake's heading. DirNone means no motion and is the
// heading before the first accepted input.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Delta returns the unit offset for one step in this direction.
// DirNone contributes no movement.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// CellKind is the occupancy state of a single grid cell.
type CellKind int

const (
	Vacant CellKind = iota
	OccupiedSnake
	OccupiedFruit
)

// Occupied reports whether the cell holds the snake or a fruit.
func (k CellKind) Occupied() bool {
	return k != Vacant
}

// Color is an RGB cell identity. The simulation treats it as opaque;
// only the renderer interprets it.
type Color struct {
	R, G, B uint8
}

var (
	// ColorSnake is the identity of every snake-occupied cell. A consumed
	// fruit cell reverts to it when the head moves in.
	ColorSnake = Color{R: 0x00, G: 0xFF, B: 0x00}

	// FruitPalette holds the identities a spawned fruit is drawn from:
	// red, blue, orange.
	FruitPalette = []Color{
		{R: 0xFF, G: 0x00, B: 0x00},
		{R: 0x00, G: 0x00, B: 0xFF},
		{R: 0xFF, G: 0xA5, B: 0x00},
	}
)

// Cell is one grid position's occupancy plus its display identity.
type Cell struct {
	Kind  CellKind
	Color Color
}

// GameState is the controller's run state.
type GameState int

const (
	StateStart GameState = iota
	StateInProgress
	StateEnd
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInProgress:
		return "in progress"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Cause records why a run reached StateEnd.
type Cause int

const (
	CauseNone Cause = iota
	CauseOutOfBounds
	CauseSelfCollision
)

func (c Cause) String() string {
	switch c {
	case CauseOutOfBounds:
		return "went outside the eating-ground"
	case CauseSelfCollision:
		return "collided with the snake's own body"
	default:
		return "none"
	}
}

// Default tick intervals, in seconds of accumulated real time.
const (
	MoveInterval  = 0.25
	SpawnInterval = 5.0
)
