package core

import (
	"math"
	"testing"
)

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input, expected int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Abs(tt.input); got != tt.expected {
			t.Errorf("Abs(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	if a.Len() != 5 {
		t.Errorf("Len() = %v, want 5", a.Len())
	}

	d := VecOf(C(1, 1)).Sub(VecOf(C(0, 0)))
	if d != (Vec{X: 1, Y: 1}) {
		t.Errorf("Sub = %v, want {1 1}", d)
	}

	moved := VecOf(C(2, 2)).Add(Vec{X: 0.4, Y: -0.6})
	if moved.Round() != C(2, 1) {
		t.Errorf("Round = %v, want (2,1)", moved.Round())
	}

	if s := (Vec{X: 1, Y: -2}).Scale(0.5); math.Abs(s.X-0.5) > 1e-9 || math.Abs(s.Y+1) > 1e-9 {
		t.Errorf("Scale = %v", s)
	}
}

func TestDirDeltaAndOpposite(t *testing.T) {
	for _, d := range Dirs {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and its opposite do not cancel: (%d,%d) (%d,%d)", d, dx, dy, ox, oy)
		}
		back, ok := ParseDir(d.Letter())
		if !ok || back != d {
			t.Errorf("ParseDir(%q) = %v, %v", d.Letter(), back, ok)
		}
	}
	if _, ok := ParseDir("x"); ok {
		t.Error("ParseDir should reject unknown letters")
	}
}

func TestCoordDirTo(t *testing.T) {
	origin := C(2, 2)
	for _, d := range Dirs {
		got, ok := origin.DirTo(origin.Step(d))
		if !ok || got != d {
			t.Errorf("DirTo(Step(%v)) = %v, %v", d, got, ok)
		}
	}
	if _, ok := origin.DirTo(C(3, 3)); ok {
		t.Error("diagonal neighbour must not resolve to a direction")
	}
	if _, ok := origin.DirTo(origin); ok {
		t.Error("same cell must not resolve to a direction")
	}
	if origin.Manhattan(C(0, 5)) != 5 {
		t.Errorf("Manhattan = %d, want 5", origin.Manhattan(C(0, 5)))
	}
}
