package warehouse

import (
	"fmt"
	"io"
)

// Render draws the floor with the top row first. R is a robot, H a robot
// carrying a crate, C a crate.
func (w *Warehouse) Render(out io.Writer) error {
	cells := make(map[Coordinate]byte, len(w.crates)+len(w.robots))
	for c := range w.crates {
		cells[c] = 'C'
	}
	for _, r := range w.robots {
		if r.holding {
			cells[r.pos] = 'H'
		} else if cells[r.pos] != 'H' {
			cells[r.pos] = 'R'
		}
	}
	row := make([]byte, 0, 2*(w.size.X+1))
	for y := w.size.Y; y >= 0; y-- {
		row = row[:0]
		for x := 0; x <= w.size.X; x++ {
			ch, ok := cells[Coordinate{X: x, Y: y}]
			if !ok {
				ch = '.'
			}
			if x > 0 {
				row = append(row, ' ')
			}
			row = append(row, ch)
		}
		if _, err := fmt.Fprintf(out, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}
