package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"
)

// Game is the controller: it owns the grid and the snake, accounts for
// tick time, and drives the Start → InProgress → End transitions. It is
// driven entirely by the external loop through RequestDirection and
// Advance; it never draws.
type Game struct {
	id    string
	grid  *entity.Grid
	snake *entity.Snake
	fruit *manager.FruitManager

	state types.GameState
	cause types.Cause

	moveInterval  float64
	spawnInterval float64
	moveElapsed   float64
	spawnElapsed  float64
}

// New creates a game on a width×height board, seeded from the clock.
func New(width, height int) *Game {
	return NewWithSeed(width, height, uint64(time.Now().UnixNano()))
}

// NewWithSeed creates a game with an explicit randomness seed, making
// head placement and fruit spawning reproducible.
func NewWithSeed(width, height int, seed uint64) *Game {
	rng := rand.New(rand.NewSource(seed))
	grid := entity.NewGrid(width, height)

	return &Game{
		id:            uuid.New().String(),
		grid:          grid,
		snake:         entity.NewSnake(grid, rng),
		fruit:         manager.NewFruitManager(rng),
		state:         types.StateStart,
		moveInterval:  types.MoveInterval,
		spawnInterval: types.SpawnInterval,
	}
}

// SetMoveInterval overrides the movement cadence, in seconds.
func (g *Game) SetMoveInterval(seconds float64) {
	g.moveInterval = seconds
}

// RequestDirection forwards a direction-change request to the snake.
// The first accepted change starts the run. A rejected 180° reversal is
// returned as *entity.OppositeDirectionError for the caller to surface;
// the run itself is unaffected. After End all requests are ignored.
func (g *Game) RequestDirection(d types.Direction) error {
	if g.state == types.StateEnd {
		return nil
	}
	if err := g.snake.SetDirection(d); err != nil {
		return err
	}
	if g.state == types.StateStart && g.snake.Direction() != types.DirNone {
		g.state = types.StateInProgress
	}
	return nil
}

// Advance feeds elapsed wall time into the tick accumulators and fires
// the actions whose thresholds were crossed. Accumulation happens in
// every state, but actions fire only while in progress; time spent
// waiting on the start screen counts toward the first move. Each
// threshold is check-and-reset: the excess above it is dropped, and one
// call fires at most one spawn and one movement.
func (g *Game) Advance(delta float64) {
	g.moveElapsed += delta
	g.spawnElapsed += delta

	if g.state != types.StateInProgress {
		return
	}

	if g.spawnElapsed >= g.spawnInterval {
		g.fruit.Spawn(g.grid)
		g.spawnElapsed = 0
	}

	if g.moveElapsed >= g.moveInterval {
		if err := g.snake.Move(g.grid); err != nil {
			g.cause = causeOf(err)
			g.state = types.StateEnd
		}
		g.moveElapsed = 0
	}
}

// causeOf maps a terminal movement error to its recorded cause.
func causeOf(err error) types.Cause {
	if errors.Is(err, entity.ErrSelfCollision) {
		return types.CauseSelfCollision
	}
	return types.CauseOutOfBounds
}

// ID returns the run's identity label.
func (g *Game) ID() string { return g.id }

// State returns the current run state.
func (g *Game) State() types.GameState { return g.state }

// Cause returns the terminal cause, or CauseNone before End.
func (g *Game) Cause() types.Cause { return g.cause }

// Grid exposes the board for read-only iteration by the renderer.
func (g *Game) Grid() *entity.Grid { return g.grid }

// SnakeHead returns the head position.
func (g *Game) SnakeHead() types.Point { return g.snake.Head() }

// Direction returns the snake's current heading.
func (g *Game) Direction() types.Direction { return g.snake.Direction() }

// Length returns the snake's length in cells.
func (g *Game) Length() int { return g.snake.Len() }
