package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/isopuzzle/internal/core"
)

// facingThreshold ignores drift smaller than this when picking a facing.
const facingThreshold = 0.01

// Step advances the simulation by one configured tick interval.
func (s *State) Step() StepResult {
	return s.Tick(s.Motion.TickInterval)
}

// Tick advances the player along its path by dt.
//
// Each tick moves toward the first waypoint. Once within epsilon the player
// snaps onto it, the waypoint is popped, the logical cell follows and the
// facing turns toward the next waypoint. When the last waypoint is popped any
// pending interaction fires. Otherwise the render position advances by
// speed*dt, never past the waypoint.
//
// A zero or negative dt changes nothing.
func (s *State) Tick(dt time.Duration) StepResult {
	result := StepResult{Tick: s.Ticks}
	if dt <= 0 {
		return result
	}
	s.Ticks++
	result.Tick = s.Ticks

	p := &s.Player
	if len(p.Path) == 0 {
		return result
	}

	target := p.Path[0]
	goal := core.VecOf(target)
	delta := goal.Sub(p.Pos)
	dist := delta.Len()

	if dist < s.Motion.Epsilon {
		p.Pos = goal
		p.Cell = target
		p.Path = p.Path[1:]
		result.Arrived = append(result.Arrived, target)

		if len(p.Path) > 0 {
			next := p.Path[0]
			p.Facing = FacingFor(float64(next.X-target.X), float64(next.Y-target.Y), p.Facing)
			return result
		}

		p.Path = nil
		result.Stopped = true
		if pending := p.Pending; pending != nil {
			p.Pending = nil
			if p.Cell.Manhattan(pending.Target) <= 1 {
				out := s.Interact(pending.Target)
				result.Interaction = &out
			}
		}
		return result
	}

	step := s.Motion.Speed * dt.Seconds()
	if step >= dist {
		p.Pos = goal
	} else {
		p.Pos = p.Pos.Add(delta.Scale(step / dist))
	}
	p.Facing = FacingFor(delta.X, delta.Y, p.Facing)
	return result
}

// FacingFor picks the facing for a movement delta. Horizontal movement wins
// over vertical; a negligible delta keeps the current facing.
func FacingFor(dx, dy float64, current core.Dir) core.Dir {
	switch {
	case math.Abs(dx) > facingThreshold:
		if dx > 0 {
			return core.East
		}
		return core.West
	case math.Abs(dy) > facingThreshold:
		if dy > 0 {
			return core.South
		}
		return core.North
	default:
		return current
	}
}
