package sim

import (
	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// DoorEvent records a door changing state.
type DoorEvent struct {
	Pos  core.Coord
	Open bool
}

// SwitchEvent records a switch being flipped.
type SwitchEvent struct {
	Pos core.Coord
	ID  string
	On  bool
}

// PickupEvent records an item pickup. Dropped is set when the previously held
// item was left on the same cell.
type PickupEvent struct {
	Pos     core.Coord
	Kind    level.ItemKind
	Dropped level.ItemKind
	Swapped bool
}

// Outcome describes what a single interaction changed.
type Outcome struct {
	Switches    []SwitchEvent
	Doors       []DoorEvent
	Pickups     []PickupEvent
	BridgeFlip  bool
	BridgeOn    bool
	KeyConsumed bool
}

// Changed reports whether the interaction had any effect.
func (o Outcome) Changed() bool {
	return len(o.Switches) > 0 || len(o.Doors) > 0 || len(o.Pickups) > 0 || o.BridgeFlip
}

// StepResult contains information about what happened during a tick.
type StepResult struct {
	Tick        uint64
	Arrived     []core.Coord // waypoints snapped to, in order
	Stopped     bool         // the path ran out this tick
	Interaction *Outcome     // set when a pending interaction fired
}
