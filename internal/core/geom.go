package core

import "math"

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Vec is a continuous position on the grid plane, measured in tiles.
// Integer values coincide with cell coordinates.
type Vec struct {
	X, Y float64
}

// VecOf returns the continuous position of a cell.
func VecOf(c Coord) Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Round returns the nearest cell to v.
func (v Vec) Round() Coord {
	return Coord{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
