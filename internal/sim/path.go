package sim

import (
	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// ShortestPath finds a shortest 4-directional route from start to goal using
// CanTransit as the edge test. Neighbours are explored North, East, South,
// West so ties always resolve the same way.
//
// The result excludes start and includes goal. It is nil when goal is out of
// bounds, not walkable, or unreachable, and empty (non-nil) when start == goal.
func ShortestPath(doc *level.Document, start, goal core.Coord) []core.Coord {
	if !doc.InBounds(goal) || !Walkable(doc, goal) {
		return nil
	}
	if start == goal {
		return []core.Coord{}
	}

	parent := make(map[core.Coord]core.Coord)
	seen := mapset.New[core.Coord]()
	seen.Put(start)
	queue := []core.Coord{start}

	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range core.Dirs {
			next := cur.Step(d)
			if seen.Has(next) || !CanTransit(doc, cur, next) {
				continue
			}
			seen.Put(next)
			parent[next] = cur
			if next == goal {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}

	if !found {
		log.Debug("no path", "from", start, "to", goal)
		return nil
	}

	var path []core.Coord
	for c := goal; c != start; c = parent[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	log.Debug("path found", "from", start, "to", goal, "steps", len(path))
	return path
}

// Reachable returns every cell the player can walk to from start, including
// start itself, given the current door and bridge state.
func Reachable(doc *level.Document, start core.Coord) mapset.Set[core.Coord] {
	reachable := mapset.New[core.Coord]()
	if !doc.InBounds(start) {
		return reachable
	}
	reachable.Put(start)
	queue := []core.Coord{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range core.Dirs {
			next := cur.Step(d)
			if reachable.Has(next) || !CanTransit(doc, cur, next) {
				continue
			}
			reachable.Put(next)
			queue = append(queue, next)
		}
	}
	return reachable
}
