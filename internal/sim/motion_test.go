package sim_test

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

func TestNewStateUsesPlayerStart(t *testing.T) {
	doc := mustParse(t, "...\n..P")
	s := sim.NewState(doc, sim.MotionConfig{})
	if s.Player.Cell != core.C(2, 1) || s.Player.Pos != core.VecOf(core.C(2, 1)) {
		t.Errorf("player at %v / %v, want (2,1)", s.Player.Cell, s.Player.Pos)
	}
	if s.Motion != sim.DefaultMotion() {
		t.Errorf("zero motion config should fall back to defaults, got %+v", s.Motion)
	}
}

func TestNewStateWithoutStart(t *testing.T) {
	doc := mustParse(t, " #\n..")
	s := sim.NewState(doc, sim.DefaultMotion())
	if s.Player.Cell != core.C(0, 1) {
		t.Errorf("player at %v, want first walkable (0,1)", s.Player.Cell)
	}
}

func TestTickAdvancesAtConstantSpeed(t *testing.T) {
	doc := level.NewFilled(3, 3, level.Floor)
	doc.SetPlayerStart(core.C(0, 0))
	s := sim.NewState(doc, sim.DefaultMotion())

	if !s.RequestMove(core.C(1, 0)) {
		t.Fatal("RequestMove failed")
	}
	s.Tick(16 * time.Millisecond)

	want := sim.DefaultSpeed * 0.016
	if math.Abs(s.Player.Pos.X-want) > 1e-9 || s.Player.Pos.Y != 0 {
		t.Errorf("Pos = %v, want {%v 0}", s.Player.Pos, want)
	}
	if s.Player.Cell != core.C(0, 0) {
		t.Error("logical cell should not change until the waypoint is reached")
	}
	if s.Player.Facing != core.East {
		t.Errorf("Facing = %v, want East", s.Player.Facing)
	}
}

func TestTickNeverOvershoots(t *testing.T) {
	doc := level.NewFilled(3, 1, level.Floor)
	doc.SetPlayerStart(core.C(0, 0))
	s := sim.NewState(doc, sim.MotionConfig{Speed: 7, TickInterval: 100 * time.Millisecond})

	s.RequestMove(core.C(1, 0))
	for i := 0; i < 10 && s.Player.Moving(); i++ {
		s.Step()
		if s.Player.Pos.X > 1 {
			t.Fatalf("overshot waypoint: %v", s.Player.Pos)
		}
	}
	if s.Player.Cell != core.C(1, 0) || s.Player.Pos != core.VecOf(core.C(1, 0)) {
		t.Errorf("player at %v / %v, want (1,0)", s.Player.Cell, s.Player.Pos)
	}
}

func TestTickZeroDtIsNoop(t *testing.T) {
	doc := level.NewFilled(3, 3, level.Floor)
	doc.SetPlayerStart(core.C(0, 0))
	s := sim.NewState(doc, sim.DefaultMotion())
	s.RequestMove(core.C(2, 2))
	s.Step()

	before := s.Clone()
	res := s.Tick(0)
	if res.Tick != before.Ticks || s.Ticks != before.Ticks {
		t.Error("zero dt should not advance the tick counter")
	}
	if s.Player.Pos != before.Player.Pos || s.Player.Cell != before.Player.Cell {
		t.Error("zero dt should not move the player")
	}
	if !samePath(s.Player.Path, before.Player.Path) {
		t.Error("zero dt should not touch the path")
	}
}

func TestTickWalksWholePath(t *testing.T) {
	doc := level.NewFilled(4, 4, level.Floor)
	doc.SetPlayerStart(core.C(0, 0))
	s := sim.NewState(doc, sim.DefaultMotion())

	s.RequestMove(core.C(1, 1))
	var arrived []core.Coord
	var facings []core.Dir
	for _, r := range runUntilIdle(t, s, 1000) {
		for _, c := range r.Arrived {
			arrived = append(arrived, c)
			facings = append(facings, s.Player.Facing)
		}
	}

	want := []core.Coord{core.C(1, 0), core.C(1, 1)}
	if !samePath(arrived, want) {
		t.Fatalf("arrived at %v, want %v", arrived, want)
	}
	// After snapping onto (1,0) the player turns toward (1,1).
	if facings[0] != core.South {
		t.Errorf("facing after first waypoint = %v, want South", facings[0])
	}
	if s.Player.Cell != core.C(1, 1) || s.Player.Pos != core.VecOf(core.C(1, 1)) {
		t.Errorf("player at %v / %v", s.Player.Cell, s.Player.Pos)
	}
}

func TestRequestMoveReplacesPath(t *testing.T) {
	doc := level.NewFilled(5, 5, level.Floor)
	doc.SetPlayerStart(core.C(0, 0))
	s := sim.NewState(doc, sim.DefaultMotion())

	s.RequestMove(core.C(4, 0))
	for i := 0; i < 5; i++ {
		s.Step()
	}
	if s.Player.Cell != core.C(0, 0) || s.Player.Pos.X <= 0 {
		t.Fatalf("expected to be mid-edge, at %v / %v", s.Player.Cell, s.Player.Pos)
	}

	if !s.RequestMove(core.C(0, 2)) {
		t.Fatal("RequestMove failed")
	}
	want := []core.Coord{core.C(0, 1), core.C(0, 2)}
	if !samePath(s.Player.Path, want) {
		t.Errorf("new path = %v, want %v planned from the logical cell", s.Player.Path, want)
	}

	runUntilIdle(t, s, 1000)
	if s.Player.Cell != core.C(0, 2) || s.Player.Pos != core.VecOf(core.C(0, 2)) {
		t.Errorf("player at %v / %v, want (0,2)", s.Player.Cell, s.Player.Pos)
	}
}

func TestRequestMoveBackToOwnCellMidEdge(t *testing.T) {
	doc := level.NewFilled(3, 1, level.Floor)
	doc.SetPlayerStart(core.C(0, 0))
	s := sim.NewState(doc, sim.DefaultMotion())

	s.RequestMove(core.C(2, 0))
	s.Step()
	s.RequestMove(core.C(0, 0))
	runUntilIdle(t, s, 1000)
	if s.Player.Pos != core.VecOf(core.C(0, 0)) {
		t.Errorf("player should settle back on its cell, at %v", s.Player.Pos)
	}
}

func TestRequestMoveUnreachableKeepsPath(t *testing.T) {
	doc := mustParse(t, "P..#.")
	s := sim.NewState(doc, sim.DefaultMotion())

	s.RequestMove(core.C(2, 0))
	if s.RequestMove(core.C(4, 0)) {
		t.Error("unreachable move should be rejected")
	}
	if len(s.Player.Path) != 2 {
		t.Errorf("existing path should be kept, got %v", s.Player.Path)
	}
}

func TestRequestMoveClearsPending(t *testing.T) {
	doc := mustParse(t, "P...K")
	s := sim.NewState(doc, sim.DefaultMotion())

	s.RequestInteract(core.C(4, 0))
	s.RequestMove(core.C(1, 0))
	if s.Player.Pending != nil {
		t.Error("a plain move should drop the pending interaction")
	}
	runUntilIdle(t, s, 1000)
	if _, ok := s.Inventory(); ok {
		t.Error("nothing should have been picked up")
	}
}

func TestFacingFor(t *testing.T) {
	tests := []struct {
		dx, dy  float64
		current core.Dir
		want    core.Dir
	}{
		{1, 0, core.North, core.East},
		{-1, 0, core.North, core.West},
		{0, 1, core.North, core.South},
		{0, -1, core.South, core.North},
		{0.5, 0.9, core.North, core.East},
		{-0.5, -0.9, core.North, core.West},
		{0.001, -0.001, core.West, core.West},
	}

	for _, tt := range tests {
		if got := sim.FacingFor(tt.dx, tt.dy, tt.current); got != tt.want {
			t.Errorf("FacingFor(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
