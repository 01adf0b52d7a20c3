// Package tui provides the Bubble Tea front end for playing and editing
// levels, locally or over SSH. It only reads the core's views and forwards
// input into it; all game rules live in the sim package.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Seq names the tick loop
// that scheduled it; a model ignores ticks from loops it did not start.
type TickMsg struct {
	Seq  uint64
	Time time.Time
}

var tickSeq atomic.Uint64

// nextTickSeq returns a fresh tick loop identifier.
func nextTickSeq() uint64 {
	return tickSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(seq uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
