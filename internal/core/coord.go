package core

import "fmt"

// Coord represents a cell coordinate on the level grid.
// X increases to the east, Y increases to the south (row order of the level file).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.X-other.X) + Abs(c.Y-other.Y)
}

// DirTo returns the direction of a 4-adjacent neighbour.
// ok is false when other is not exactly one orthogonal step away.
func (c Coord) DirTo(other Coord) (d Dir, ok bool) {
	switch (Coord{X: other.X - c.X, Y: other.Y - c.Y}) {
	case Coord{X: 0, Y: -1}:
		return North, true
	case Coord{X: 1, Y: 0}:
		return East, true
	case Coord{X: 0, Y: 1}:
		return South, true
	case Coord{X: -1, Y: 0}:
		return West, true
	}
	return North, false
}

