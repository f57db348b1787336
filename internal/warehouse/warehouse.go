package warehouse

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrOutOfBounds         = errors.New("outside of warehouse bounds")
	ErrNoCrate             = errors.New("no crate at given coordinate")
	ErrCrateAlreadyPresent = errors.New("crate already at given coordinate")
)

// Warehouse owns the grid, its robots and its crates. Size holds the
// largest valid index on each axis, so a 10x10 warehouse spans 0..10.
type Warehouse struct {
	size   Coordinate
	robots []*Robot
	crates map[Coordinate]struct{}
}

func New(width, height int) *Warehouse {
	return &Warehouse{
		size:   Coordinate{X: width, Y: height},
		crates: make(map[Coordinate]struct{}),
	}
}

func (w *Warehouse) Size() Coordinate {
	return w.size
}

// Robots returns the robots in creation order. The slice is not copied.
func (w *Warehouse) Robots() []*Robot {
	return w.robots
}

func (w *Warehouse) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X <= w.size.X && c.Y >= 0 && c.Y <= w.size.Y
}

func (w *Warehouse) CreateRobot(x, y int) (*Robot, error) {
	pos := Coordinate{X: x, Y: y}
	if !w.InBounds(pos) {
		return nil, fmt.Errorf("create robot at %v: %w", pos, ErrOutOfBounds)
	}
	r := newRobot(pos, w.size)
	w.robots = append(w.robots, r)
	return r, nil
}

func (w *Warehouse) CreateRobotAtOrigin() (*Robot, error) {
	return w.CreateRobot(0, 0)
}

// MoveRobot applies a command string to r. It stops at the first failing
// token and keeps whatever was applied before it.
func (w *Warehouse) MoveRobot(r *Robot, commands string) error {
	toks, err := ParseCommands(commands)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		if err := w.apply(r, tok); err != nil {
			return err
		}
	}
	return nil
}

func (w *Warehouse) apply(r *Robot, tok Token) error {
	switch tok {
	case Grab:
		// grab before remove: a robot already holding a crate leaves the tile alone
		if err := r.GrabCrate(); err != nil {
			return err
		}
		return w.RemoveCrate(r.Position())
	case Drop:
		if err := r.DropCrate(); err != nil {
			return err
		}
		return w.PlaceCrate(r.Position())
	default:
		r.Move(tok)
	}
	return nil
}

// MoveAll runs the same commands on every robot in creation order.
func (w *Warehouse) MoveAll(commands string) error {
	for i, r := range w.robots {
		if err := w.MoveRobot(r, commands); err != nil {
			return fmt.Errorf("robot %d: %w", i, err)
		}
	}
	return nil
}

func (w *Warehouse) IsCrateAt(c Coordinate) bool {
	_, ok := w.crates[c]
	return ok
}

func (w *Warehouse) RemoveCrate(c Coordinate) error {
	if !w.IsCrateAt(c) {
		return fmt.Errorf("remove crate at %v: %w", c, ErrNoCrate)
	}
	delete(w.crates, c)
	return nil
}

func (w *Warehouse) PlaceCrate(c Coordinate) error {
	if w.IsCrateAt(c) {
		return fmt.Errorf("place crate at %v: %w", c, ErrCrateAlreadyPresent)
	}
	if !w.InBounds(c) {
		return fmt.Errorf("place crate at %v: %w", c, ErrOutOfBounds)
	}
	w.crates[c] = struct{}{}
	return nil
}

// Crates lists crate positions ordered by row, then column.
func (w *Warehouse) Crates() []Coordinate {
	out := make([]Coordinate, 0, len(w.crates))
	for c := range w.crates {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coordinate) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}
