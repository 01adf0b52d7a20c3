package sim

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// Motion defaults.
const (
	DefaultSpeed        = 3.0                   // tiles per second
	DefaultTickInterval = 16 * time.Millisecond // ~60 Hz
	DefaultEpsilon      = 0.1                   // snap distance in tiles
)

// MotionConfig tunes the motion simulator.
type MotionConfig struct {
	Speed        float64
	TickInterval time.Duration
	Epsilon      float64
}

// DefaultMotion returns the default motion tuning.
func DefaultMotion() MotionConfig {
	return MotionConfig{
		Speed:        DefaultSpeed,
		TickInterval: DefaultTickInterval,
		Epsilon:      DefaultEpsilon,
	}
}

func (m MotionConfig) normalized() MotionConfig {
	if m.Speed <= 0 {
		m.Speed = DefaultSpeed
	}
	if m.TickInterval <= 0 {
		m.TickInterval = DefaultTickInterval
	}
	if m.Epsilon <= 0 {
		m.Epsilon = DefaultEpsilon
	}
	return m
}

// Interaction is a deferred interaction with the target cell, fired when the
// player's path runs out.
type Interaction struct {
	Target core.Coord
}

// Player is the player token. Cell is authoritative for rules; Pos is the
// continuous render position and only trails Cell while moving.
type Player struct {
	Cell    core.Coord
	Pos     core.Vec
	Facing  core.Dir
	Path    []core.Coord
	Pending *Interaction

	// Held is the single inventory slot.
	Held    level.ItemKind
	HasItem bool
}

// Moving reports whether the player still has waypoints to visit.
func (p *Player) Moving() bool {
	return len(p.Path) > 0
}

// State is the play session: the level being played plus the player.
// It is not safe for concurrent use.
type State struct {
	Doc    *level.Document
	Player Player
	Motion MotionConfig
	Ticks  uint64
}

// NewState starts a session on doc with the player on its start cell.
// Levels without a start place the player on the first walkable cell.
func NewState(doc *level.Document, motion MotionConfig) *State {
	start, ok := doc.PlayerStart()
	if !ok {
		start = firstWalkable(doc)
		log.Warn("level has no player start", "using", start)
	}
	return &State{
		Doc: doc,
		Player: Player{
			Cell:   start,
			Pos:    core.VecOf(start),
			Facing: core.South,
		},
		Motion: motion.normalized(),
	}
}

func firstWalkable(doc *level.Document) core.Coord {
	for y := 0; y < doc.Height(); y++ {
		for x := 0; x < doc.Width(); x++ {
			if Walkable(doc, core.C(x, y)) {
				return core.C(x, y)
			}
		}
	}
	return core.Coord{}
}

// Inventory returns the held item kind, if any.
func (s *State) Inventory() (level.ItemKind, bool) {
	return s.Player.Held, s.Player.HasItem
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	out := &State{
		Doc:    s.Doc.Clone(),
		Player: s.Player,
		Motion: s.Motion,
		Ticks:  s.Ticks,
	}
	out.Player.Path = append([]core.Coord(nil), s.Player.Path...)
	if s.Player.Pending != nil {
		p := *s.Player.Pending
		out.Player.Pending = &p
	}
	return out
}
