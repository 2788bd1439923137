package entity

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"snek/game/types"
)

// ErrSelfCollision is returned by Move when the target cell is already
// part of the snake.
var ErrSelfCollision = errors.New("collided with the snake's own body")

// OppositeDirectionError reports a rejected 180° reversal request.
type OppositeDirectionError struct {
	Requested types.Direction
}

func (e *OppositeDirectionError) Error() string {
	return fmt.Sprintf("cannot turn %s against the current direction", e.Requested)
}

// Snake is the moving chain: a head, body segments ordered
// nearest-to-head to tail, and the current heading. The grid it moves on
// is passed into each method by the owning controller rather than held.
type Snake struct {
	head    types.Point
	body    []types.Point
	heading types.Direction
}

// NewSnake places a snake at a uniformly random cell of the full grid
// extent. The grid is expected to be empty at this point, so no
// occupancy check is made.
func NewSnake(grid *Grid, rng *rand.Rand) *Snake {
	pos := types.Point{
		X: rng.Intn(grid.Width()),
		Y: rng.Intn(grid.Height()),
	}
	return NewSnakeAt(grid, pos)
}

// NewSnakeAt places a snake with its head at pos. The heading starts as
// DirNone and the body empty.
func NewSnakeAt(grid *Grid, pos types.Point) *Snake {
	grid.put(pos, snakeCell())
	return &Snake{head: pos, heading: types.DirNone}
}

func snakeCell() types.Cell {
	return types.Cell{Kind: types.OccupiedSnake, Color: types.ColorSnake}
}

// SetDirection applies a direction-change request. The only prohibited
// change is the exact reverse of a non-None heading; everything else,
// including the first request while the heading is still DirNone, is
// accepted. A DirNone request is a no-op. No movement happens here.
func (s *Snake) SetDirection(d types.Direction) error {
	if d == types.DirNone {
		return nil
	}
	if s.heading != types.DirNone && d == s.heading.Opposite() {
		return &OppositeDirectionError{Requested: d}
	}
	s.heading = d
	return nil
}

// Move advances the snake one cell along its heading. The caller must
// not invoke it while the heading is DirNone.
//
// The candidate head cell is validated in order: outside the board is
// ErrOutOfBounds, an OccupiedSnake cell is ErrSelfCollision. A fruit
// cell is legal and consumed: the fruit identity is cleared by the head
// occupying the cell and the body grows by one tail segment in the same
// move. Each body segment follows into the slot its predecessor held
// before this move, which translates the whole chain rigidly with
// O(length) work.
func (s *Snake) Move(grid *Grid) error {
	candidate := s.head.Add(s.heading)

	cell, err := grid.Get(candidate)
	if err != nil {
		return fmt.Errorf("move %s: %w", s.heading, err)
	}
	if cell.Kind == types.OccupiedSnake {
		return ErrSelfCollision
	}
	ate := cell.Kind == types.OccupiedFruit

	prev := s.head
	grid.put(s.head, types.Cell{})
	grid.put(candidate, snakeCell())
	s.head = candidate

	for i := range s.body {
		before := s.body[i]
		grid.put(before, types.Cell{})
		grid.put(prev, snakeCell())
		s.body[i] = prev
		prev = before
	}

	if ate {
		return s.AddBody(grid)
	}
	return nil
}

// AddBody grows the tail by one segment placed one cell behind the
// current tail (behind the head when the body is empty), directly
// opposite the heading. The heading must not be DirNone. A grid failure
// here means an internal caller broke the placement contract; it is
// propagated rather than swallowed.
func (s *Snake) AddBody(grid *Grid) error {
	tail := s.head
	if len(s.body) > 0 {
		tail = s.body[len(s.body)-1]
	}
	tail = tail.Sub(s.heading)

	if err := grid.Set(tail, snakeCell()); err != nil {
		return fmt.Errorf("growing tail: %w", err)
	}
	s.body = append(s.body, tail)
	return nil
}

// Direction returns the current heading.
func (s *Snake) Direction() types.Direction { return s.heading }

// Head returns the head position.
func (s *Snake) Head() types.Point { return s.head }

// Len returns the snake's length in cells, head included. Length is the
// run's only score.
func (s *Snake) Len() int { return 1 + len(s.body) }

// Segments returns head plus body positions, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, 0, s.Len())
	out = append(out, s.head)
	return append(out, s.body...)
}
