package level

import (
	"testing"

	"github.com/vovakirdan/isopuzzle/internal/core"
)

func TestNewFilled(t *testing.T) {
	d := NewFilled(5, 4, Floor)
	if d.Width() != 5 || d.Height() != 4 {
		t.Fatalf("expected 5x4, got %dx%d", d.Width(), d.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if d.CellAt(core.C(x, y)) != Floor {
				t.Fatalf("cell (%d,%d) not floor", x, y)
			}
		}
	}
	if _, ok := d.PlayerStart(); ok {
		t.Error("new document should have no player start")
	}
}

func TestOutOfBoundsQueries(t *testing.T) {
	d := NewFilled(3, 3, Floor)
	for _, c := range []core.Coord{core.C(-1, 0), core.C(0, -1), core.C(3, 0), core.C(0, 3)} {
		if d.CellAt(c) != Void {
			t.Errorf("CellAt(%v) = %v, want Void", c, d.CellAt(c))
		}
		if d.Walkable(c) {
			t.Errorf("Walkable(%v) should be false", c)
		}
		if d.PropAt(c) != PropNone {
			t.Errorf("PropAt(%v) should be none", c)
		}
		d.SetCell(c, Floor)
		d.AddItem(Item{Pos: c, Kind: ItemKey})
	}
	if len(d.Items()) != 0 {
		t.Error("out-of-bounds item should be ignored")
	}
}

func TestAddPropEvicts(t *testing.T) {
	d := NewFilled(3, 3, Floor)
	c := core.C(1, 1)

	d.AddSwitch(Switch{Pos: c, ID: "1"})
	d.AddDoor(Door{Pos: c, ID: "1"})
	if d.PropAt(c) != PropDoor {
		t.Fatalf("expected door, got %v", d.PropAt(c))
	}
	if len(d.Switches()) != 0 {
		t.Error("door should have evicted the switch")
	}

	d.AddItem(Item{Pos: c, Kind: ItemKey})
	if d.PropAt(c) != PropItem || len(d.Doors()) != 0 {
		t.Error("item should have evicted the door")
	}

	if removed := d.RemovePropAt(c); removed != PropItem {
		t.Errorf("RemovePropAt = %v, want item", removed)
	}
	if d.PropAt(c) != PropNone {
		t.Error("prop should be gone")
	}
}

func TestPlayerStartReplaced(t *testing.T) {
	d := NewFilled(3, 3, Floor)
	d.SetPlayerStart(core.C(0, 0))
	d.SetPlayerStart(core.C(2, 2))
	if start, ok := d.PlayerStart(); !ok || start != core.C(2, 2) {
		t.Errorf("PlayerStart = %v, %v", start, ok)
	}
	d.ClearPlayerStart()
	if _, ok := d.PlayerStart(); ok {
		t.Error("start should be cleared")
	}
}

func TestBridgeRegistryFollowsCells(t *testing.T) {
	d := NewFilled(4, 1, Floor)
	d.SetCell(core.C(1, 0), Bridge)
	d.SetCell(core.C(2, 0), Bridge)
	if got := d.BridgeTiles(); len(got) != 2 {
		t.Fatalf("BridgeTiles = %v", got)
	}
	d.SetCell(core.C(1, 0), Floor)
	if got := d.BridgeTiles(); len(got) != 1 || got[0] != core.C(2, 0) {
		t.Errorf("BridgeTiles = %v", got)
	}

	if d.Walkable(core.C(2, 0)) {
		t.Error("bridge should start off")
	}
	if !d.ToggleBridge() || !d.Walkable(core.C(2, 0)) {
		t.Error("bridge should be walkable once on")
	}
}

func TestListsAreRowMajor(t *testing.T) {
	d := NewFilled(4, 4, Floor)
	d.AddDoor(Door{Pos: core.C(3, 2)})
	d.AddDoor(Door{Pos: core.C(0, 3)})
	d.AddDoor(Door{Pos: core.C(2, 0)})
	d.AddDoor(Door{Pos: core.C(1, 2)})

	want := []core.Coord{core.C(2, 0), core.C(1, 2), core.C(3, 2), core.C(0, 3)}
	got := d.Doors()
	for i, door := range got {
		if door.Pos != want[i] {
			t.Errorf("Doors()[%d] = %v, want %v", i, door.Pos, want[i])
		}
	}
}

func TestSetDoorOpenAndSwitchOn(t *testing.T) {
	d := NewFilled(3, 3, Floor)
	d.AddDoor(Door{Pos: core.C(1, 1), ID: "a"})
	d.AddSwitch(Switch{Pos: core.C(0, 0), ID: "a"})

	if !d.SetDoorOpen(core.C(1, 1), true) {
		t.Fatal("SetDoorOpen should find the door")
	}
	if door, _ := d.DoorAt(core.C(1, 1)); !door.Open {
		t.Error("door should be open")
	}
	if d.SetDoorOpen(core.C(2, 2), true) {
		t.Error("SetDoorOpen on empty cell should report false")
	}
	if !d.SetSwitchOn(core.C(0, 0), true) {
		t.Fatal("SetSwitchOn should find the switch")
	}
	if sw, _ := d.SwitchAt(core.C(0, 0)); !sw.On {
		t.Error("switch should be on")
	}
	if got := d.LinkedDoors("a"); len(got) != 1 || got[0] != core.C(1, 1) {
		t.Errorf("LinkedDoors = %v", got)
	}
	if d.LinkedDoors("") != nil {
		t.Error("empty id links nothing")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := NewFilled(3, 3, Floor)
	d.AddDoor(Door{Pos: core.C(1, 1), ID: "1"})
	d.SetWallObject(core.C(0, 1), WallObject{Type: Wall, Dir: core.North})

	c := d.Clone()
	if !c.Equal(d) {
		t.Fatal("clone should equal original")
	}
	c.SetDoorOpen(core.C(1, 1), true)
	c.SetCell(core.C(2, 2), Void)
	c.ClearWallObject(core.C(0, 1))
	if door, _ := d.DoorAt(core.C(1, 1)); door.Open {
		t.Error("mutating the clone changed the original door")
	}
	if d.CellAt(core.C(2, 2)) != Floor {
		t.Error("mutating the clone changed the original grid")
	}
	if _, ok := d.WallObjectAt(core.C(0, 1)); !ok {
		t.Error("mutating the clone changed the original walls")
	}
	if c.Equal(d) {
		t.Error("diverged clone should not be equal")
	}
}

func TestResizeKeepsContent(t *testing.T) {
	d := NewFilled(5, 5, Floor)
	d.SetCell(core.C(1, 1), LegacyWall)
	d.AddItem(Item{Pos: core.C(4, 4), Kind: ItemKey})
	d.SetPlayerStart(core.C(4, 0))
	d.SetBridgeOn(true)

	d.Resize(3, 6, Void)
	if d.Width() != 3 || d.Height() != 6 {
		t.Fatalf("expected 3x6, got %dx%d", d.Width(), d.Height())
	}
	if d.CellAt(core.C(1, 1)) != LegacyWall {
		t.Error("content within bounds should be kept")
	}
	if d.CellAt(core.C(0, 5)) != Void {
		t.Error("new row should use the fill kind")
	}
	if len(d.Items()) != 0 {
		t.Error("item outside the new bounds should be dropped")
	}
	if _, ok := d.PlayerStart(); ok {
		t.Error("start outside the new bounds should be dropped")
	}
	if !d.BridgeOn() {
		t.Error("bridge flag should survive a resize")
	}
}
