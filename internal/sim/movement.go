// Package sim runs the puzzle rules on top of a level.Document: movement
// blocking, pathfinding, switch/door/item interactions and player motion.
// This package is UI-agnostic and deterministic.
package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// Walkable returns true if the player may stand on c: the terrain is
// walkable and no closed door occupies it.
func Walkable(doc *level.Document, c core.Coord) bool {
	if !doc.Walkable(c) {
		return false
	}
	if door, ok := doc.DoorAt(c); ok && !door.Open {
		return false
	}
	return true
}

// CanTransit decides whether the player may step from one cell to an
// orthogonally adjacent one.
//
// Rules, in order:
//  1. to must be in bounds and 4-adjacent to from
//  2. to must not be Void, nor a Bridge while the bridge is off
//  3. to must not be a LegacyWall (blocks from every side)
//  4. to must not hold a closed door
//  5. the shared edge must not be blocked:
//
//	move   from's fixture facing   to's fixture facing
//	North  n                       s
//	East   e                       w
//	South  s                       n
//	West   w                       e
func CanTransit(doc *level.Document, from, to core.Coord) bool {
	if !doc.InBounds(to) {
		return false
	}
	move, ok := from.DirTo(to)
	if !ok {
		return false
	}

	switch doc.CellAt(to) {
	case level.Void, level.LegacyWall:
		return false
	case level.Bridge:
		if !doc.BridgeOn() {
			return false
		}
	}

	if door, ok := doc.DoorAt(to); ok && !door.Open {
		return false
	}

	return !edgeBlocked(doc, from, move) && !edgeBlocked(doc, to, move.Opposite())
}

// edgeBlocked reports whether a fixture on c seals the edge of c that faces dir.
func edgeBlocked(doc *level.Document, c core.Coord, facing core.Dir) bool {
	if w, ok := doc.WallObjectAt(c); ok && w.Dir == facing {
		solid, known := w.Type.BlocksEdge()
		if !known {
			log.Warn("unexpected wall-object type, treating as open", "type", uint8(w.Type), "x", c.X, "y", c.Y)
		}
		if solid {
			return true
		}
	}
	if door, ok := doc.DoorAt(c); ok && !door.Open && door.Dir == facing {
		return true
	}
	return false
}
