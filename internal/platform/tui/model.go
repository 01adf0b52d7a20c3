package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/iso"
	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

// mapTop is the number of screen rows above the map.
const mapTop = 2

// Model is the Bubble Tea model for playing one level.
type Model struct {
	name   string
	seq    uint64
	start  *level.Document // pristine copy used by restart
	state  *sim.State
	motion sim.MotionConfig
	mapper iso.Mapper
	view   View
	keys   KeyMap
	help   help.Model
	cursor core.Coord
	notice string
	width  int
	height int

	quitOnBack bool
	backToMenu bool
	quitting   bool
}

// NewModel creates a play model for doc. The model plays on its own copy.
func NewModel(name string, doc *level.Document, motion sim.MotionConfig) Model {
	state := sim.NewState(doc.Clone(), motion)
	return Model{
		name:   name,
		seq:    nextTickSeq(),
		start:  doc.Clone(),
		state:  state,
		motion: motion,
		mapper: terminalMapper(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cursor: state.Player.Cell,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.seq, m.state.Motion.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(core.North)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(core.South)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(core.West)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(core.East)
	case key.Matches(msg, m.keys.Act):
		m.act(m.cursor)
	case key.Matches(msg, m.keys.Use):
		m.useAhead()
	case key.Matches(msg, m.keys.View):
		m.view = m.view.Toggle()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse moves the cursor to the clicked cell and acts on it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	c := m.layout().pick(msg.X, msg.Y-mapTop)
	if !m.state.Doc.InBounds(c) {
		return m, nil
	}
	m.cursor = c
	m.act(c)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.state.Step()
	if res.Interaction != nil {
		m.notice = describeOutcome(*res.Interaction)
	}
	return m, tickCmd(m.seq, m.state.Motion.TickInterval)
}

func (m *Model) moveCursor(d core.Dir) {
	next := m.cursor.Step(d)
	if m.state.Doc.InBounds(next) {
		m.cursor = next
	}
}

// act walks to c, or uses whatever stands on it.
func (m *Model) act(c core.Coord) {
	if m.state.Interactable(c) {
		out, queued := m.state.RequestInteract(c)
		switch {
		case queued:
			m.notice = fmt.Sprintf("heading to %s", c)
		case out.Changed():
			m.notice = describeOutcome(out)
		default:
			m.notice = "nothing happens"
		}
		return
	}

	if !m.state.RequestMove(c) {
		m.notice = fmt.Sprintf("can't reach %s", c)
		return
	}
	m.notice = ""
}

// useAhead interacts with the cell the player faces, or the one it stands on.
func (m *Model) useAhead() {
	p := m.state.Player
	for _, c := range []core.Coord{p.Cell.Step(p.Facing), p.Cell} {
		if m.state.Interactable(c) {
			m.act(c)
			return
		}
	}
	m.notice = "nothing to use"
}

func (m *Model) restart() {
	m.state = sim.NewState(m.start.Clone(), m.motion)
	m.cursor = m.state.Player.Cell
	m.notice = "restarted"
}

func (m Model) layout() layout {
	return newLayout(m.view, m.mapper, m.state.Doc.Width(), m.state.Doc.Height())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("isopuzzle · " + m.name))
	b.WriteString("\n\n")

	player := m.state.Player
	b.WriteString(renderMap(m.state.Doc, m.layout(), overlay{
		player:    &player,
		cursor:    m.cursor,
		hasCursor: true,
	}))
	b.WriteString("\n\n")

	held := "nothing"
	if kind, ok := m.state.Inventory(); ok {
		held = string(kind)
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("at %s  cursor %s  holding %s  %s view",
		player.Cell, m.cursor, held, m.view)))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// State returns the play state. It is meant for inspection only.
func (m Model) State() *sim.State {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// describeOutcome summarises an interaction for the status line.
func describeOutcome(out sim.Outcome) string {
	var parts []string
	for _, p := range out.Pickups {
		if p.Swapped {
			parts = append(parts, fmt.Sprintf("swapped %s for %s", p.Dropped, p.Kind))
		} else {
			parts = append(parts, fmt.Sprintf("picked up %s", p.Kind))
		}
	}
	if out.KeyConsumed {
		parts = append(parts, "used key")
	}
	for _, s := range out.Switches {
		state := "off"
		if s.On {
			state = "on"
		}
		parts = append(parts, fmt.Sprintf("switch %s", state))
	}
	for _, d := range out.Doors {
		verb := "closed"
		if d.Open {
			verb = "opened"
		}
		parts = append(parts, fmt.Sprintf("door at %s %s", d.Pos, verb))
	}
	if out.BridgeFlip {
		if out.BridgeOn {
			parts = append(parts, "bridge raised")
		} else {
			parts = append(parts, "bridge lowered")
		}
	}
	if len(parts) == 0 {
		return "nothing happens"
	}
	return strings.Join(parts, ", ")
}

// Run plays doc in the terminal until the user quits.
func Run(name string, doc *level.Document, motion sim.MotionConfig) error {
	model := NewModel(name, doc, motion)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to walk or use
	)

	_, err := p.Run()
	return err
}
