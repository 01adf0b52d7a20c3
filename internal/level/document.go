package level

import (
	"sort"

	"github.com/vovakirdan/isopuzzle/internal/core"
)

// Grid size limits.
const (
	MaxSize       = 20 // hard cap for any level, parsed or edited
	MinEditorSize = 5  // smallest grid the editor will create
)

// Document is the canonical level state: the terrain grid, the wall-object
// layer, props (switches, doors, items), the player start and the bridge flag.
// A Document is mutated in place and is not safe for concurrent use.
type Document struct {
	w, h  int
	cells []CellKind // row-major: index = y*w + x

	walls    map[core.Coord]WallObject
	switches map[core.Coord]Switch
	doors    map[core.Coord]Door
	items    map[core.Coord]Item

	start    core.Coord
	hasStart bool
	bridgeOn bool
}

// New creates a w x h document with every cell set to Void.
func New(w, h int) *Document {
	return NewFilled(w, h, Void)
}

// NewFilled creates a w x h document with every cell set to kind.
func NewFilled(w, h int, kind CellKind) *Document {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	d := &Document{
		w:        w,
		h:        h,
		cells:    make([]CellKind, w*h),
		walls:    make(map[core.Coord]WallObject),
		switches: make(map[core.Coord]Switch),
		doors:    make(map[core.Coord]Door),
		items:    make(map[core.Coord]Item),
	}
	if kind != Void {
		for i := range d.cells {
			d.cells[i] = kind
		}
	}
	return d
}

// Width returns the number of columns.
func (d *Document) Width() int { return d.w }

// Height returns the number of rows.
func (d *Document) Height() int { return d.h }

// InBounds returns true if the coordinate is within the grid.
func (d *Document) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < d.w && c.Y >= 0 && c.Y < d.h
}

func (d *Document) index(c core.Coord) int {
	return c.Y*d.w + c.X
}

// CellAt returns the cell kind at c, or Void when out of bounds.
func (d *Document) CellAt(c core.Coord) CellKind {
	if !d.InBounds(c) {
		return Void
	}
	return d.cells[d.index(c)]
}

// SetCell sets the terrain at c. Out-of-bounds writes are ignored.
func (d *Document) SetCell(c core.Coord, kind CellKind) {
	if d.InBounds(c) {
		d.cells[d.index(c)] = kind
	}
}

// Walkable reports whether the terrain at c can be stood on, ignoring
// doors and wall-objects.
func (d *Document) Walkable(c core.Coord) bool {
	switch d.CellAt(c) {
	case Floor:
		return true
	case Bridge:
		return d.bridgeOn
	default:
		return false
	}
}

// WallObjectAt returns the wall-object at c, if any.
func (d *Document) WallObjectAt(c core.Coord) (WallObject, bool) {
	w, ok := d.walls[c]
	return w, ok
}

// SetWallObject places a wall-object at c, replacing any previous one.
func (d *Document) SetWallObject(c core.Coord, w WallObject) {
	if !d.InBounds(c) {
		return
	}
	if w.Type == WallNone {
		delete(d.walls, c)
		return
	}
	d.walls[c] = w
}

// ClearWallObject removes the wall-object at c.
func (d *Document) ClearWallObject(c core.Coord) {
	delete(d.walls, c)
}

// WallObjectEntry pairs a wall-object with its position for list snapshots.
type WallObjectEntry struct {
	Pos core.Coord
	WallObject
}

// WallObjects returns all wall-objects in row-major order.
func (d *Document) WallObjects() []WallObjectEntry {
	out := make([]WallObjectEntry, 0, len(d.walls))
	for c, w := range d.walls {
		out = append(out, WallObjectEntry{Pos: c, WallObject: w})
	}
	sort.Slice(out, func(i, j int) bool { return rowMajorLess(out[i].Pos, out[j].Pos) })
	return out
}

// AddSwitch places a switch, evicting any prop already at its position.
func (d *Document) AddSwitch(s Switch) {
	if !d.InBounds(s.Pos) {
		return
	}
	d.RemovePropAt(s.Pos)
	d.switches[s.Pos] = s
}

// AddDoor places a door, evicting any prop already at its position.
func (d *Document) AddDoor(door Door) {
	if !d.InBounds(door.Pos) {
		return
	}
	d.RemovePropAt(door.Pos)
	d.doors[door.Pos] = door
}

// AddItem places an item, evicting any prop already at its position.
func (d *Document) AddItem(it Item) {
	if !d.InBounds(it.Pos) {
		return
	}
	d.RemovePropAt(it.Pos)
	d.items[it.Pos] = it
}

// RemovePropAt removes whatever switch, door or item occupies c.
// It returns the kind of prop removed.
func (d *Document) RemovePropAt(c core.Coord) PropKind {
	kind := d.PropAt(c)
	delete(d.switches, c)
	delete(d.doors, c)
	delete(d.items, c)
	return kind
}

// PropAt returns the kind of prop at c.
func (d *Document) PropAt(c core.Coord) PropKind {
	if _, ok := d.switches[c]; ok {
		return PropSwitch
	}
	if _, ok := d.doors[c]; ok {
		return PropDoor
	}
	if _, ok := d.items[c]; ok {
		return PropItem
	}
	return PropNone
}

// SwitchAt returns the switch at c, if any.
func (d *Document) SwitchAt(c core.Coord) (Switch, bool) {
	s, ok := d.switches[c]
	return s, ok
}

// DoorAt returns the door at c, if any.
func (d *Document) DoorAt(c core.Coord) (Door, bool) {
	door, ok := d.doors[c]
	return door, ok
}

// ItemAt returns the item at c, if any.
func (d *Document) ItemAt(c core.Coord) (Item, bool) {
	it, ok := d.items[c]
	return it, ok
}

// Switches returns all switches in row-major order.
func (d *Document) Switches() []Switch {
	out := make([]Switch, 0, len(d.switches))
	for _, s := range d.switches {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return rowMajorLess(out[i].Pos, out[j].Pos) })
	return out
}

// Doors returns all doors in row-major order.
func (d *Document) Doors() []Door {
	out := make([]Door, 0, len(d.doors))
	for _, door := range d.doors {
		out = append(out, door)
	}
	sort.Slice(out, func(i, j int) bool { return rowMajorLess(out[i].Pos, out[j].Pos) })
	return out
}

// Items returns all items in row-major order.
func (d *Document) Items() []Item {
	out := make([]Item, 0, len(d.items))
	for _, it := range d.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return rowMajorLess(out[i].Pos, out[j].Pos) })
	return out
}

// LinkedDoors returns the positions of every door with the given ID.
// An empty ID links nothing.
func (d *Document) LinkedDoors(id string) []core.Coord {
	if id == "" {
		return nil
	}
	var out []core.Coord
	for _, door := range d.Doors() {
		if door.ID == id {
			out = append(out, door.Pos)
		}
	}
	return out
}

// SetDoorOpen sets the open flag of the door at c.
// It returns false when there is no door there.
func (d *Document) SetDoorOpen(c core.Coord, open bool) bool {
	door, ok := d.doors[c]
	if !ok {
		return false
	}
	door.Open = open
	d.doors[c] = door
	return true
}

// SetSwitchOn sets the on flag of the switch at c.
// It returns false when there is no switch there.
func (d *Document) SetSwitchOn(c core.Coord, on bool) bool {
	s, ok := d.switches[c]
	if !ok {
		return false
	}
	s.On = on
	d.switches[c] = s
	return true
}

// PlayerStart returns the player start, if one is set.
func (d *Document) PlayerStart() (core.Coord, bool) {
	return d.start, d.hasStart
}

// SetPlayerStart moves the player start to c, clearing any previous one.
func (d *Document) SetPlayerStart(c core.Coord) {
	if !d.InBounds(c) {
		return
	}
	d.start = c
	d.hasStart = true
}

// ClearPlayerStart removes the player start.
func (d *Document) ClearPlayerStart() {
	d.start = core.Coord{}
	d.hasStart = false
}

// BridgeOn returns the bridge flag shared by every Bridge cell.
func (d *Document) BridgeOn() bool { return d.bridgeOn }

// SetBridgeOn sets the bridge flag.
func (d *Document) SetBridgeOn(on bool) { d.bridgeOn = on }

// ToggleBridge flips the bridge flag and returns its new value.
func (d *Document) ToggleBridge() bool {
	d.bridgeOn = !d.bridgeOn
	return d.bridgeOn
}

// BridgeTiles returns every Bridge cell in row-major order.
func (d *Document) BridgeTiles() []core.Coord {
	var out []core.Coord
	for y := 0; y < d.h; y++ {
		for x := 0; x < d.w; x++ {
			if d.cells[y*d.w+x] == Bridge {
				out = append(out, core.C(x, y))
			}
		}
	}
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		w:        d.w,
		h:        d.h,
		cells:    make([]CellKind, len(d.cells)),
		walls:    make(map[core.Coord]WallObject, len(d.walls)),
		switches: make(map[core.Coord]Switch, len(d.switches)),
		doors:    make(map[core.Coord]Door, len(d.doors)),
		items:    make(map[core.Coord]Item, len(d.items)),
		start:    d.start,
		hasStart: d.hasStart,
		bridgeOn: d.bridgeOn,
	}
	copy(out.cells, d.cells)
	for k, v := range d.walls {
		out.walls[k] = v
	}
	for k, v := range d.switches {
		out.switches[k] = v
	}
	for k, v := range d.doors {
		out.doors[k] = v
	}
	for k, v := range d.items {
		out.items[k] = v
	}
	return out
}

// Resize changes the grid dimensions, keeping content that still fits.
// New cells are filled with fill.
func (d *Document) Resize(w, h int, fill CellKind) {
	next := NewFilled(w, h, fill)
	for y := 0; y < h && y < d.h; y++ {
		for x := 0; x < w && x < d.w; x++ {
			next.cells[y*w+x] = d.cells[y*d.w+x]
		}
	}
	for c, v := range d.walls {
		if next.InBounds(c) {
			next.walls[c] = v
		}
	}
	for c, v := range d.switches {
		if next.InBounds(c) {
			next.switches[c] = v
		}
	}
	for c, v := range d.doors {
		if next.InBounds(c) {
			next.doors[c] = v
		}
	}
	for c, v := range d.items {
		if next.InBounds(c) {
			next.items[c] = v
		}
	}
	if d.hasStart && next.InBounds(d.start) {
		next.start, next.hasStart = d.start, true
	}
	next.bridgeOn = d.bridgeOn
	*d = *next
}

// Equal returns true if two documents describe the same level state.
func (d *Document) Equal(other *Document) bool {
	if d.w != other.w || d.h != other.h {
		return false
	}
	if d.hasStart != other.hasStart || (d.hasStart && d.start != other.start) {
		return false
	}
	if d.bridgeOn != other.bridgeOn {
		return false
	}
	for i, c := range d.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return mapsEqual(d.walls, other.walls) &&
		mapsEqual(d.switches, other.switches) &&
		mapsEqual(d.doors, other.doors) &&
		mapsEqual(d.items, other.items)
}

func mapsEqual[V comparable](a, b map[core.Coord]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func rowMajorLess(a, b core.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
