package sim

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// Issue is a problem found in a level by Audit.
type Issue struct {
	Pos     core.Coord
	HasPos  bool
	Message string
}

// String formats the issue for reports.
func (i Issue) String() string {
	if i.HasPos {
		return fmt.Sprintf("%s: %s", i.Pos, i.Message)
	}
	return i.Message
}

// Audit looks for levels that cannot be finished as authored: a missing
// player start, switch and door IDs without a partner, and props the player
// could never reach even with every door open and the bridge raised.
// Issues are ordered by kind, then row-major.
func Audit(doc *level.Document) []Issue {
	var issues []Issue

	start, ok := doc.PlayerStart()
	if !ok {
		issues = append(issues, Issue{Message: "no player start"})
	}

	switchIDs := mapset.New[string]()
	for _, sw := range doc.Switches() {
		if sw.ID != "" {
			switchIDs.Put(sw.ID)
		}
	}
	doorIDs := mapset.New[string]()
	for _, d := range doc.Doors() {
		if d.Linked() {
			doorIDs.Put(d.ID)
		}
	}
	for _, sw := range doc.Switches() {
		if sw.ID != "" && !doorIDs.Has(sw.ID) {
			issues = append(issues, Issue{Pos: sw.Pos, HasPos: true, Message: fmt.Sprintf("switch %s has no door", sw.ID)})
		}
	}
	for _, d := range doc.Doors() {
		if d.Linked() && !switchIDs.Has(d.ID) {
			issues = append(issues, Issue{Pos: d.Pos, HasPos: true, Message: fmt.Sprintf("door %s has no switch", d.ID)})
		}
	}

	if !ok {
		return issues
	}

	open := openedCopy(doc)
	reach := Reachable(open, start)
	usable := func(c core.Coord) bool {
		if reach.Has(c) {
			return true
		}
		for _, d := range core.Dirs {
			if reach.Has(c.Step(d)) {
				return true
			}
		}
		return false
	}

	for _, sw := range doc.Switches() {
		if !usable(sw.Pos) {
			issues = append(issues, Issue{Pos: sw.Pos, HasPos: true, Message: "switch is unreachable"})
		}
	}
	for _, d := range doc.Doors() {
		if !usable(d.Pos) {
			issues = append(issues, Issue{Pos: d.Pos, HasPos: true, Message: "door is unreachable"})
		}
	}
	for _, it := range doc.Items() {
		if !reach.Has(it.Pos) {
			issues = append(issues, Issue{Pos: it.Pos, HasPos: true, Message: fmt.Sprintf("%s is unreachable", it.Kind)})
		}
	}
	return issues
}

// openedCopy returns a copy of doc with every door open and the bridge
// raised: the most permissive state play could ever reach.
func openedCopy(doc *level.Document) *level.Document {
	out := doc.Clone()
	for _, d := range out.Doors() {
		out.SetDoorOpen(d.Pos, true)
	}
	out.SetBridgeOn(true)
	return out
}
