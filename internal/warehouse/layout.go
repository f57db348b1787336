package warehouse

import (
	"fmt"
	"io"
	"os"
)

// Load warehouse from text file
// Format:
// first line: width height
// next line: number of robots, then one "x y" line per robot
// next line: number of crates, then one "x y" line per crate

func LoadLayout(path string) (*Warehouse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLayout(f)
}

func ParseLayout(r io.Reader) (*Warehouse, error) {
	var width, height int
	if _, err := fmt.Fscan(r, &width, &height); err != nil {
		return nil, fmt.Errorf("read size: %w", err)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	w := New(width, height)

	robots, err := readCoordinates(r, "robots")
	if err != nil {
		return nil, err
	}
	for _, c := range robots {
		if _, err := w.CreateRobot(c.X, c.Y); err != nil {
			return nil, err
		}
	}

	crates, err := readCoordinates(r, "crates")
	if err != nil {
		return nil, err
	}
	for _, c := range crates {
		if err := w.PlaceCrate(c); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func readCoordinates(r io.Reader, what string) ([]Coordinate, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("read %s count: %w", what, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative %s count %d", what, n)
	}
	out := make([]Coordinate, n)
	for i := range out {
		if _, err := fmt.Fscan(r, &out[i].X, &out[i].Y); err != nil {
			return nil, fmt.Errorf("read %s %d: %w", what, i, err)
		}
	}
	return out, nil
}
