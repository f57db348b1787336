package warehouse

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyHoldingCrate = errors.New("robot is already holding a crate")
	ErrNotHoldingCrate     = errors.New("robot is not holding a crate")
)

// Coordinate is a grid cell.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Robot represents a robot position on the warehouse floor. It keeps its own
// copy of the warehouse bounds.

type Robot struct {
	pos     Coordinate
	bounds  Coordinate
	holding bool
}

func newRobot(pos, bounds Coordinate) *Robot {
	return &Robot{pos: pos, bounds: bounds}
}

// Position returns a copy of the current position.
func (r *Robot) Position() Coordinate {
	return r.pos
}

func (r *Robot) IsHoldingCrate() bool {
	return r.holding
}

// step moves by (dx, dy) only if both resulting components stay inside bounds.
func (r *Robot) step(dx, dy int) {
	nx, ny := r.pos.X+dx, r.pos.Y+dy
	if nx < 0 || nx > r.bounds.X || ny < 0 || ny > r.bounds.Y {
		return
	}
	r.pos.X, r.pos.Y = nx, ny
}

func (r *Robot) MoveNorth() { r.step(0, 1) }
func (r *Robot) MoveSouth() { r.step(0, -1) }
func (r *Robot) MoveEast()  { r.step(1, 0) }
func (r *Robot) MoveWest()  { r.step(-1, 0) }

func (r *Robot) MoveNorthEast() { r.step(1, 1) }
func (r *Robot) MoveNorthWest() { r.step(-1, 1) }
func (r *Robot) MoveSouthEast() { r.step(1, -1) }
func (r *Robot) MoveSouthWest() { r.step(-1, -1) }

// Move applies a direction token. It reports false if tok is not a direction.
func (r *Robot) Move(tok Token) bool {
	switch tok {
	case North:
		r.MoveNorth()
	case South:
		r.MoveSouth()
	case East:
		r.MoveEast()
	case West:
		r.MoveWest()
	case NorthEast:
		r.MoveNorthEast()
	case NorthWest:
		r.MoveNorthWest()
	case SouthEast:
		r.MoveSouthEast()
	case SouthWest:
		r.MoveSouthWest()
	default:
		return false
	}
	return true
}

func (r *Robot) GrabCrate() error {
	if r.holding {
		return ErrAlreadyHoldingCrate
	}
	r.holding = true
	return nil
}

func (r *Robot) DropCrate() error {
	if !r.holding {
		return ErrNotHoldingCrate
	}
	r.holding = false
	return nil
}

func (r *Robot) String() string {
	return r.pos.String()
}
