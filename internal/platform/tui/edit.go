package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/editor"
	"github.com/vovakirdan/isopuzzle/internal/iso"
)

// SaveFunc persists the exported level text.
type SaveFunc func(text string) error

// EditModel is the Bubble Tea model for the level editor.
type EditModel struct {
	name   string
	ed     *editor.Editor
	save   SaveFunc
	brush  int // index into editor.Palette
	mapper iso.Mapper
	view   View
	keys   EditKeyMap
	help   help.Model
	cursor core.Coord
	notice string

	dragging  bool // paint every cell the cursor enters
	editingID bool // digits go to the link ID
	idDraft   string
	quitting  bool
}

// NewEditModel creates an editor model. save may be nil, in which case
// saving is reported as unavailable.
func NewEditModel(name string, ed *editor.Editor, save SaveFunc) EditModel {
	m := EditModel{
		name:   name,
		ed:     ed,
		save:   save,
		mapper: terminalMapper(),
		keys:   DefaultEditKeyMap(),
		help:   help.New(),
	}
	m.brush = paletteIndex(ed.Brush().Token)
	return m
}

func paletteIndex(token byte) int {
	for i, b := range editor.Palette {
		if b.Token == token {
			return i
		}
	}
	return 0
}

// Init initializes the editor.
func (m EditModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor.
func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editingID {
			return m.handleIDKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m EditModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(core.North)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(core.South)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(core.West)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(core.East)
	case key.Matches(msg, m.keys.Paint):
		m.ed.EndStroke()
		m.ed.Paint(m.cursor)
	case key.Matches(msg, m.keys.Erase):
		m.ed.EndStroke()
		m.ed.Erase(m.cursor)
	case key.Matches(msg, m.keys.Drag):
		m.dragging = !m.dragging
		m.ed.EndStroke()
		if m.dragging {
			m.ed.Paint(m.cursor)
		}
	case key.Matches(msg, m.keys.PrevBrush):
		m.selectBrush(m.brush - 1)
	case key.Matches(msg, m.keys.NextBrush):
		m.selectBrush(m.brush + 1)
	case key.Matches(msg, m.keys.LinkID):
		m.editingID = true
		m.idDraft = m.ed.ID()
	case key.Matches(msg, m.keys.Wider):
		m.resize(1, 0)
	case key.Matches(msg, m.keys.Narrower):
		m.resize(-1, 0)
	case key.Matches(msg, m.keys.Taller):
		m.resize(0, 1)
	case key.Matches(msg, m.keys.Shorter):
		m.resize(0, -1)
	case key.Matches(msg, m.keys.View):
		m.view = m.view.Toggle()
	case key.Matches(msg, m.keys.Save):
		m.saveLevel()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleIDKey edits the link ID until enter or esc.
func (m EditModel) handleIDKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if err := m.ed.SetID(m.idDraft); err != nil {
			m.notice = err.Error()
		}
		m.editingID = false
	case tea.KeyEsc:
		m.editingID = false
	case tea.KeyBackspace:
		if m.idDraft != "" {
			m.idDraft = m.idDraft[:len(m.idDraft)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.idDraft += string(r)
			}
		}
	}
	return m, nil
}

func (m EditModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	c := m.layout().pick(msg.X, msg.Y-mapTop)
	if msg.Action == tea.MouseActionRelease {
		m.ed.EndStroke()
		return m, nil
	}
	if !m.ed.Doc.InBounds(c) {
		return m, nil
	}
	m.cursor = c

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.ed.EndStroke()
		m.ed.Paint(c)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.ed.Paint(c)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.ed.EndStroke()
		m.ed.Erase(c)
	}
	return m, nil
}

func (m *EditModel) moveCursor(d core.Dir) {
	next := m.cursor.Step(d)
	if !m.ed.Doc.InBounds(next) {
		return
	}
	m.cursor = next
	if m.dragging {
		m.ed.Paint(next)
	}
}

func (m *EditModel) selectBrush(i int) {
	n := len(editor.Palette)
	m.brush = ((i % n) + n) % n
	if err := m.ed.Select(editor.Palette[m.brush].Token); err != nil {
		m.notice = err.Error()
	}
}

func (m *EditModel) resize(dw, dh int) {
	d := m.ed.Doc
	m.ed.Resize(d.Width()+dw, d.Height()+dh)
	m.cursor = core.C(min(m.cursor.X, d.Width()-1), min(m.cursor.Y, d.Height()-1))
}

func (m *EditModel) saveLevel() {
	if m.save == nil {
		m.notice = "nowhere to save"
		return
	}
	if err := m.save(m.ed.Export()); err != nil {
		m.notice = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.notice = "saved"
}

func (m EditModel) layout() layout {
	return newLayout(m.view, m.mapper, m.ed.Doc.Width(), m.ed.Doc.Height())
}

// View renders the editor.
func (m EditModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	d := m.ed.Doc
	b.WriteString(titleStyle.Render(fmt.Sprintf("isopuzzle editor · %s (%dx%d)", m.name, d.Width(), d.Height())))
	b.WriteString("\n\n")
	b.WriteString(renderMap(d, m.layout(), overlay{cursor: m.cursor, hasCursor: true}))
	b.WriteString("\n\n")

	br := m.ed.Brush()
	status := fmt.Sprintf("brush %q %s [%s]", br.Token, br.Name, br.Category)
	if br.TakesID() {
		id := m.ed.ID()
		if m.editingID {
			id = m.idDraft + "_"
		}
		status += "  id " + id
	}
	if m.dragging {
		status += "  drag"
	}
	status += fmt.Sprintf("  cursor %s", m.cursor)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Editor returns the underlying editor.
func (m EditModel) Editor() *editor.Editor {
	return m.ed
}

// RunEditor runs the editor in the terminal until the user quits.
func RunEditor(name string, ed *editor.Editor, save SaveFunc) error {
	p := tea.NewProgram(
		NewEditModel(name, ed, save),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click and drag to paint
	)

	_, err := p.Run()
	return err
}
