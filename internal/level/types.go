// Package level holds the canonical in-memory level model and its text codec.
// This package is UI-agnostic and deterministic.
package level

import "github.com/vovakirdan/isopuzzle/internal/core"

// CellKind is the base terrain of a grid cell.
type CellKind uint8

const (
	Void CellKind = iota
	Floor
	LegacyWall // full-block wall, direction agnostic
	Bridge     // walkable only while the document's bridge flag is on
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Void:
		return "Void"
	case Floor:
		return "Floor"
	case LegacyWall:
		return "LegacyWall"
	case Bridge:
		return "Bridge"
	default:
		return "Unknown"
	}
}

// WallType is the kind of fixture a WallObject represents.
type WallType uint8

const (
	WallNone WallType = iota
	Wall
	HalfWall
	Window
	DoorClosed
	DoorOpen
	Doorway
)

// String returns the level-file name of a wall type.
func (t WallType) String() string {
	switch t {
	case Wall:
		return "wall"
	case HalfWall:
		return "half_wall"
	case Window:
		return "window"
	case DoorClosed:
		return "door_closed"
	case DoorOpen:
		return "door_open"
	case Doorway:
		return "doorway"
	case WallNone:
		return "none"
	default:
		return "unknown"
	}
}

// BlocksEdge reports whether the fixture blocks movement across the edge it
// faces. known is false for values outside the declared set.
func (t WallType) BlocksEdge() (solid, known bool) {
	switch t {
	case Wall, HalfWall, Window, DoorClosed:
		return true, true
	case DoorOpen, Doorway, WallNone:
		return false, true
	default:
		return false, false
	}
}

// WallObject is a directional fixture layered over a Floor cell.
type WallObject struct {
	Type   WallType
	Dir    core.Dir
	LinkID string
}

// Switch toggles linked doors, or the bridge flag when it has no ID.
type Switch struct {
	Pos core.Coord
	ID  string
	On  bool

	// Facing is meaningful only when Directed is set; undirected switches
	// use the default sprite orientation.
	Facing   core.Dir
	Directed bool
}

// Door blocks entry to its cell while closed. Doors sharing a non-empty ID
// are linked to every switch with the same ID.
type Door struct {
	Pos  core.Coord
	ID   string
	Open bool
	Dir  core.Dir
}

// Linked reports whether the door is driven by switches rather than keys.
func (d Door) Linked() bool {
	return d.ID != ""
}

// ItemKind names a collectible.
type ItemKind string

const ItemKey ItemKind = "key"

// Item is a collectible lying on the floor.
type Item struct {
	Pos  core.Coord
	Kind ItemKind
}

// PropKind identifies which prop occupies a cell.
type PropKind uint8

const (
	PropNone PropKind = iota
	PropSwitch
	PropDoor
	PropItem
)

// String returns the string representation of a prop kind.
func (k PropKind) String() string {
	switch k {
	case PropSwitch:
		return "switch"
	case PropDoor:
		return "door"
	case PropItem:
		return "item"
	default:
		return "none"
	}
}
