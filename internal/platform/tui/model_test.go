package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/levels"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

const exampleLevel = "P.D1\n...\nS1.#"

func mustParse(t *testing.T, text string) *level.Document {
	t.Helper()
	doc, err := level.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return doc
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

// tickUntilIdle feeds ticks until the player stops.
func tickUntilIdle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !m.state.Player.Moving() && m.state.Player.Pending == nil {
			return m
		}
		m, _ = update(t, m, TickMsg{Seq: m.seq})
	}
	t.Fatal("player never stopped")
	return m
}

func TestModelWalksToCursor(t *testing.T) {
	m := NewModel("test", mustParse(t, "P..\n...\n..."), sim.DefaultMotion())

	m, _ = update(t, m, keyMsg(tea.KeyRight))
	m, _ = update(t, m, keyMsg(tea.KeyRight))
	m, _ = update(t, m, keyMsg(tea.KeyDown))
	if m.cursor != core.C(2, 1) {
		t.Fatalf("cursor = %v", m.cursor)
	}

	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	if !m.state.Player.Moving() {
		t.Fatal("enter on floor should start a move")
	}

	m = tickUntilIdle(t, m)
	if m.state.Player.Cell != core.C(2, 1) {
		t.Errorf("player at %v, want (2,1)", m.state.Player.Cell)
	}
}

func TestModelCursorStaysInBounds(t *testing.T) {
	m := NewModel("test", mustParse(t, "P.."), sim.DefaultMotion())

	m, _ = update(t, m, keyMsg(tea.KeyUp))
	m, _ = update(t, m, keyMsg(tea.KeyLeft))
	if m.cursor != core.C(0, 0) {
		t.Errorf("cursor left the level: %v", m.cursor)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := NewModel("test", mustParse(t, "P.."), sim.DefaultMotion())
	m.state.RequestMove(core.C(2, 0))

	m, cmd := update(t, m, TickMsg{Seq: m.seq + 100})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if m.state.Ticks != 0 {
		t.Errorf("stale tick advanced the simulation to %d", m.state.Ticks)
	}

	m, cmd = update(t, m, TickMsg{Seq: m.seq})
	if cmd == nil || m.state.Ticks != 1 {
		t.Error("own tick should advance and reschedule")
	}
}

func TestModelDeferredSwitch(t *testing.T) {
	m := NewModel("test", mustParse(t, exampleLevel), sim.DefaultMotion())

	m, _ = update(t, m, keyMsg(tea.KeyDown))
	m, _ = update(t, m, keyMsg(tea.KeyDown))
	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	if !strings.HasPrefix(m.notice, "heading to") {
		t.Errorf("notice = %q", m.notice)
	}

	m = tickUntilIdle(t, m)
	if d, _ := m.state.Doc.DoorAt(core.C(2, 0)); !d.Open {
		t.Error("door should open once the player reaches the switch")
	}
	if !strings.Contains(m.notice, "door at (2,0) opened") {
		t.Errorf("notice = %q", m.notice)
	}

	m, _ = update(t, m, runeMsg('r'))
	if d, _ := m.state.Doc.DoorAt(core.C(2, 0)); d.Open {
		t.Error("restart should close the door again")
	}
	if m.state.Player.Cell != core.C(0, 0) {
		t.Errorf("restart should put the player back, at %v", m.state.Player.Cell)
	}
}

func TestModelUseAhead(t *testing.T) {
	m := NewModel("test", mustParse(t, "PK."), sim.DefaultMotion())
	m.state.Player.Facing = core.East

	m, _ = update(t, m, runeMsg('e'))
	if kind, ok := m.state.Inventory(); !ok || kind != level.ItemKey {
		t.Error("use should pick up the key in front")
	}
	if m.notice != "picked up key" {
		t.Errorf("notice = %q", m.notice)
	}

	m, _ = update(t, m, runeMsg('e'))
	if m.notice != "nothing to use" {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestModelUnreachable(t *testing.T) {
	m := NewModel("test", mustParse(t, "P#."), sim.DefaultMotion())
	m.cursor = core.C(2, 0)

	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	if m.notice != "can't reach (2,0)" {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestModelMouseClick(t *testing.T) {
	m := NewModel("test", mustParse(t, "P..\n..."), sim.DefaultMotion())

	// Cell (2,1) in the top-down view starts at column 4 of map row 1.
	m, _ = update(t, m, tea.MouseMsg{
		X:      5,
		Y:      mapTop + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.cursor != core.C(2, 1) {
		t.Fatalf("cursor = %v", m.cursor)
	}
	if !m.state.Player.Moving() {
		t.Error("click should start a move")
	}
}

func TestModelBack(t *testing.T) {
	m := NewModel("test", mustParse(t, "P.."), sim.DefaultMotion())
	m, cmd := update(t, m, keyMsg(tea.KeyEsc))
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Error("back inside a session should only flag the menu")
	}

	m = NewModel("test", mustParse(t, "P.."), sim.DefaultMotion())
	m.quitOnBack = true
	m, cmd = update(t, m, keyMsg(tea.KeyEsc))
	if !m.IsQuitting() || cmd == nil {
		t.Error("back in a standalone game should quit")
	}
}

func TestModelPlaysOnCopy(t *testing.T) {
	doc := mustParse(t, exampleLevel)
	m := NewModel("test", doc, sim.DefaultMotion())
	m.state.ToggleSwitch(core.C(0, 2))

	if d, _ := doc.DoorAt(core.C(2, 0)); d.Open {
		t.Error("playing should not change the caller's document")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel("First Steps", mustParse(t, exampleLevel), sim.DefaultMotion())
	out := m.View()
	for _, want := range []string{"First Steps", "D1", "s1", "holding nothing"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}

	m, _ = update(t, m, runeMsg('v'))
	if m.view != ViewIso || !strings.Contains(m.View(), "iso view") {
		t.Error("v should switch to the iso view")
	}
}

func TestDescribeOutcome(t *testing.T) {
	tests := []struct {
		name string
		out  sim.Outcome
		want string
	}{
		{"empty", sim.Outcome{}, "nothing happens"},
		{"pickup", sim.Outcome{Pickups: []sim.PickupEvent{{Kind: level.ItemKey}}}, "picked up key"},
		{
			"swap",
			sim.Outcome{Pickups: []sim.PickupEvent{{Kind: level.ItemKey, Dropped: level.ItemKey, Swapped: true}}},
			"swapped key for key",
		},
		{
			"key door",
			sim.Outcome{Doors: []sim.DoorEvent{{Pos: core.C(1, 2), Open: true}}, KeyConsumed: true},
			"used key, door at (1,2) opened",
		},
		{
			"bridge",
			sim.Outcome{Switches: []sim.SwitchEvent{{On: true}}, BridgeFlip: true, BridgeOn: true},
			"switch on, bridge raised",
		},
		{
			"bridge lowered",
			sim.Outcome{Switches: []sim.SwitchEvent{{On: false}}, BridgeFlip: true},
			"switch off, bridge lowered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describeOutcome(tt.out); got != tt.want {
				t.Errorf("describeOutcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionPickAndReturn(t *testing.T) {
	lvls := []levels.Level{
		{ID: "a", Name: "Alpha", Doc: mustParse(t, "P..")},
		{ID: "b", Name: "Beta", Doc: mustParse(t, exampleLevel)},
	}
	s := NewSessionModel(lvls, sim.DefaultMotion(), 80, 24)

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	if !strings.Contains(s.View(), "Alpha") || !strings.Contains(s.View(), "Beta") {
		t.Fatalf("menu should list levels:\n%s", s.View())
	}

	step(keyMsg(tea.KeyDown))
	if cmd := step(keyMsg(tea.KeyEnter)); cmd == nil {
		t.Error("starting a level should start its tick loop")
	}
	if s.game == nil || s.game.name != "Beta" {
		t.Fatal("enter should start the selected level")
	}

	step(keyMsg(tea.KeyEsc))
	if s.game != nil {
		t.Fatal("back should return to the menu")
	}
	if s.quitting {
		t.Error("back should not end the session")
	}

	if cmd := step(runeMsg('q')); cmd == nil || !s.quitting {
		t.Error("q in the menu should quit")
	}
}
