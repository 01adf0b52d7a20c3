package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// ToggleSwitch flips the switch at c. A switch with an ID flips the open flag
// of every door sharing that ID, each independently. A switch without an ID
// flips the level's bridge flag instead.
func (s *State) ToggleSwitch(c core.Coord) Outcome {
	var out Outcome
	sw, ok := s.Doc.SwitchAt(c)
	if !ok {
		return out
	}

	sw.On = !sw.On
	s.Doc.SetSwitchOn(c, sw.On)
	out.Switches = append(out.Switches, SwitchEvent{Pos: c, ID: sw.ID, On: sw.On})

	if sw.ID == "" {
		out.BridgeFlip = true
		out.BridgeOn = s.Doc.ToggleBridge()
		log.Debug("bridge toggled", "on", out.BridgeOn)
		return out
	}

	for _, pos := range s.Doc.LinkedDoors(sw.ID) {
		door, _ := s.Doc.DoorAt(pos)
		s.Doc.SetDoorOpen(pos, !door.Open)
		out.Doors = append(out.Doors, DoorEvent{Pos: pos, Open: !door.Open})
	}
	if len(out.Doors) == 0 {
		log.Debug("switch has no linked doors", "id", sw.ID)
	}
	return out
}

// PickupItem takes the item at c into the inventory. A held item is dropped
// where the new one was lying, so items are never destroyed.
func (s *State) PickupItem(c core.Coord) Outcome {
	var out Outcome
	it, ok := s.Doc.ItemAt(c)
	if !ok {
		return out
	}

	s.Doc.RemovePropAt(c)
	ev := PickupEvent{Pos: c, Kind: it.Kind}
	if s.Player.HasItem {
		s.Doc.AddItem(level.Item{Pos: c, Kind: s.Player.Held})
		ev.Dropped = s.Player.Held
		ev.Swapped = true
	}
	s.Player.Held = it.Kind
	s.Player.HasItem = true
	out.Pickups = append(out.Pickups, ev)
	return out
}

// InteractDoor tries to open the door at c directly. Only a closed door
// without an ID reacts, and only when the player holds a key, which is used
// up. Linked doors answer to their switches alone.
func (s *State) InteractDoor(c core.Coord) Outcome {
	var out Outcome
	door, ok := s.Doc.DoorAt(c)
	if !ok || door.Linked() || door.Open {
		return out
	}
	if !s.Player.HasItem || s.Player.Held != level.ItemKey {
		return out
	}

	s.Doc.SetDoorOpen(c, true)
	s.Player.Held = ""
	s.Player.HasItem = false
	out.Doors = append(out.Doors, DoorEvent{Pos: c, Open: true})
	out.KeyConsumed = true
	return out
}

// Interact applies whatever interaction the prop at c offers, regardless of
// distance.
func (s *State) Interact(c core.Coord) Outcome {
	switch s.Doc.PropAt(c) {
	case level.PropSwitch:
		return s.ToggleSwitch(c)
	case level.PropDoor:
		return s.InteractDoor(c)
	case level.PropItem:
		return s.PickupItem(c)
	default:
		return Outcome{}
	}
}

// Interactable reports whether c holds something the player can use.
func (s *State) Interactable(c core.Coord) bool {
	return s.Doc.PropAt(c) != level.PropNone
}

// RequestMove sends the player toward c, replacing any current path and
// dropping any pending interaction. The path is planned from the player's
// logical cell. It returns false, leaving the player untouched, when c is
// unreachable.
func (s *State) RequestMove(c core.Coord) bool {
	path := ShortestPath(s.Doc, s.Player.Cell, c)
	if path == nil {
		return false
	}
	s.setPath(path)
	s.Player.Pending = nil
	return true
}

// RequestInteract interacts with the prop at c. Targets next to or under the
// player fire at once; anything further away is queued and the player walks
// over first. Targets that cannot be stood on (closed doors) are approached
// through their nearest walkable neighbour.
//
// queued is true when the interaction was deferred. When c holds nothing, or
// no route exists, the request is dropped and both results are zero.
func (s *State) RequestInteract(c core.Coord) (out Outcome, queued bool) {
	if !s.Doc.InBounds(c) || !s.Interactable(c) {
		return Outcome{}, false
	}

	if s.Player.Cell.Manhattan(c) <= 1 {
		s.Player.Pending = nil
		return s.Interact(c), false
	}

	path := s.approachPath(c)
	if path == nil {
		log.Debug("interaction target unreachable", "target", c)
		return Outcome{}, false
	}
	s.setPath(path)
	s.Player.Pending = &Interaction{Target: c}
	return Outcome{}, true
}

// approachPath plans a route onto c, or onto the closest walkable cell
// next to it when c itself cannot be entered.
func (s *State) approachPath(c core.Coord) []core.Coord {
	if Walkable(s.Doc, c) {
		return ShortestPath(s.Doc, s.Player.Cell, c)
	}

	var best []core.Coord
	for _, d := range core.Dirs {
		n := c.Step(d)
		p := ShortestPath(s.Doc, s.Player.Cell, n)
		if p == nil {
			continue
		}
		if best == nil || len(p) < len(best) {
			best = p
		}
	}
	return best
}

// setPath installs a new path. When the player is caught between cells and
// the new path is empty, it walks back onto its logical cell.
func (s *State) setPath(path []core.Coord) {
	if len(path) == 0 && s.Player.Pos != core.VecOf(s.Player.Cell) {
		path = []core.Coord{s.Player.Cell}
	}
	s.Player.Path = path
}
