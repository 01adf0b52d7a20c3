// Package core provides the small shared vocabulary of the puzzle engine:
// grid coordinates, compass directions and continuous positions.
// It has no external dependencies so every other package can import it.
package core

// Dir is one of the four compass directions on the grid.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Dirs lists the directions in exploration order (N, E, S, W).
var Dirs = [4]Dir{North, East, South, West}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Letter returns the single lowercase letter used by level files ("n", "e", "s", "w").
func (d Dir) Letter() string {
	switch d {
	case North:
		return "n"
	case East:
		return "e"
	case South:
		return "s"
	case West:
		return "w"
	default:
		return "?"
	}
}

// ParseDir converts a direction letter (either case) to a Dir.
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "n", "N":
		return North, true
	case "e", "E":
		return East, true
	case "s", "S":
		return South, true
	case "w", "W":
		return West, true
	}
	return North, false
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North decreases Y, South increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}
