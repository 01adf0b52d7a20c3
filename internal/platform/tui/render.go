package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/iso"
	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

// tone selects the style a glyph is drawn with.
type tone uint8

const (
	toneDefault tone = iota
	toneFloor
	toneWall
	toneHalfWall
	toneWindow
	toneBridge
	toneBridgeOff
	toneDoor
	toneDoorOpen
	toneSwitch
	toneSwitchOn
	toneKey
	tonePlayer
	tonePath
	toneCursor
)

// toneStyles maps tones to lipgloss styles.
var toneStyles = map[tone]lipgloss.Style{
	toneDefault:   lipgloss.NewStyle(),
	toneFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	toneWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	toneHalfWall:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	toneWindow:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	toneBridge:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	toneBridgeOff: lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	toneDoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	toneDoorOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	toneSwitch:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	toneSwitchOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	toneKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	tonePlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	tonePath:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	toneCursor:    lipgloss.NewStyle().Reverse(true),
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

// View selects the map projection.
type View uint8

const (
	ViewTopDown View = iota
	ViewIso
)

// String returns the view name.
func (v View) String() string {
	if v == ViewIso {
		return "iso"
	}
	return "top-down"
}

// Toggle returns the other view.
func (v View) Toggle() View {
	if v == ViewIso {
		return ViewTopDown
	}
	return ViewIso
}

// glyphWidth is the number of columns one cell occupies on screen.
const glyphWidth = 2

// terminalMapper lays diamonds out on a character grid: each step along a
// grid axis moves two columns sideways and one row down.
func terminalMapper() iso.Mapper {
	return iso.NewMapper(2*glyphWidth, 2).WithPickOffset(0)
}

// layout places cells of a gridW x gridH level on screen and resolves
// screen positions back to cells.
type layout struct {
	view   View
	mapper iso.Mapper
	origin iso.Point
	width  int
	height int
}

func newLayout(view View, mapper iso.Mapper, gridW, gridH int) layout {
	l := layout{view: view, mapper: mapper}
	if view == ViewIso {
		l.width = glyphWidth * (gridW + gridH - 1)
		l.height = gridW + gridH - 1
		l.origin = mapper.CenteredOrigin(float64(l.width), gridW, gridH, 0)
		return l
	}
	l.width = glyphWidth * gridW
	l.height = gridH
	return l
}

// place returns the screen column and row of the first column of c's glyph.
func (l layout) place(c core.Coord) (col, row int) {
	if l.view == ViewIso {
		p := l.mapper.CellToWorld(c, l.origin)
		return int(p.X) - glyphWidth/2, int(p.Y)
	}
	return c.X * glyphWidth, c.Y
}

// pick resolves a screen position to a cell. The result may lie outside
// the level.
func (l layout) pick(col, row int) core.Coord {
	if l.view == ViewIso {
		return l.mapper.Pick(float64(col)+0.5, float64(row), l.origin)
	}
	if col < 0 {
		col -= glyphWidth - 1
	}
	return core.C(col/glyphWidth, row)
}

type canvasCell struct {
	r rune
	t tone
}

// canvas is a fixed-size character buffer with a tone per cell.
type canvas struct {
	w, h  int
	cells []canvasCell
}

func newCanvas(w, h int) *canvas {
	cv := &canvas{w: w, h: h, cells: make([]canvasCell, w*h)}
	for i := range cv.cells {
		cv.cells[i] = canvasCell{r: ' '}
	}
	return cv
}

// put writes s starting at (col, row); characters off the canvas are dropped.
func (cv *canvas) put(col, row int, s string, t tone) {
	if row < 0 || row >= cv.h {
		return
	}
	for _, r := range s {
		if col >= 0 && col < cv.w {
			cv.cells[row*cv.w+col] = canvasCell{r: r, t: t}
		}
		col++
	}
}

// retone restyles n cells starting at (col, row) without changing them.
func (cv *canvas) retone(col, row, n int, t tone) {
	if row < 0 || row >= cv.h {
		return
	}
	for i := col; i < col+n; i++ {
		if i >= 0 && i < cv.w {
			cv.cells[row*cv.w+i].t = t
		}
	}
}

// String renders the canvas. Adjacent cells with the same tone share one
// styled run to keep escape sequences down.
func (cv *canvas) String() string {
	var sb strings.Builder
	sb.Grow(cv.w*cv.h*2 + cv.h)

	for y := 0; y < cv.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cv.w {
			start := cv.cells[y*cv.w+x].t
			var run strings.Builder
			for x < cv.w {
				cell := cv.cells[y*cv.w+x]
				if cell.t != start {
					break
				}
				run.WriteRune(cell.r)
				x++
			}

			style, ok := toneStyles[start]
			if !ok {
				style = toneStyles[toneDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// overlay is what gets drawn on top of the level.
type overlay struct {
	player    *sim.Player
	cursor    core.Coord
	hasCursor bool
}

var (
	wallGlyph = map[core.Dir]string{
		core.North: "▔▔",
		core.South: "▁▁",
		core.East:  " ▕",
		core.West:  "▏ ",
	}
	facingGlyph = map[core.Dir]string{
		core.North: "@^",
		core.South: "@v",
		core.East:  "@>",
		core.West:  "<@",
	}
)

// glyph returns the glyph and tone for cell c of doc, props included.
func glyph(doc *level.Document, c core.Coord) (string, tone) {
	if sw, ok := doc.SwitchAt(c); ok {
		t := toneSwitch
		if sw.On {
			t = toneSwitchOn
		}
		return "s" + suffix(sw.ID, " "), t
	}
	if d, ok := doc.DoorAt(c); ok {
		if d.Open {
			return "d" + suffix(d.ID, d.Dir.Letter()), toneDoorOpen
		}
		return "D" + suffix(d.ID, d.Dir.Letter()), toneDoor
	}
	if _, ok := doc.ItemAt(c); ok {
		return "k ", toneKey
	}
	if w, ok := doc.WallObjectAt(c); ok {
		switch w.Type {
		case level.Wall:
			return wallGlyph[w.Dir], toneWall
		case level.HalfWall:
			return wallGlyph[w.Dir], toneHalfWall
		case level.Window:
			return wallGlyph[w.Dir], toneWindow
		case level.Doorway:
			return ": ", toneFloor
		}
	}

	switch doc.CellAt(c) {
	case level.Floor:
		return "· ", toneFloor
	case level.LegacyWall:
		return "██", toneWall
	case level.Bridge:
		if doc.BridgeOn() {
			return "==", toneBridge
		}
		return "~~", toneBridgeOff
	default:
		return "  ", toneDefault
	}
}

// suffix returns the last character of id, or fallback when id is empty.
func suffix(id, fallback string) string {
	if id == "" {
		return fallback
	}
	return id[len(id)-1:]
}

// renderMap draws doc with the overlay in the given layout.
func renderMap(doc *level.Document, l layout, o overlay) string {
	cv := newCanvas(l.width, l.height)

	for y := 0; y < doc.Height(); y++ {
		for x := 0; x < doc.Width(); x++ {
			c := core.C(x, y)
			col, row := l.place(c)
			g, t := glyph(doc, c)
			cv.put(col, row, g, t)
		}
	}

	if p := o.player; p != nil {
		for _, c := range p.Path {
			if doc.PropAt(c) != level.PropNone {
				continue
			}
			col, row := l.place(c)
			cv.put(col, row, "• ", tonePath)
		}
		col, row := l.place(p.Pos.Round())
		cv.put(col, row, facingGlyph[p.Facing], tonePlayer)
	}

	if o.hasCursor {
		col, row := l.place(o.cursor)
		cv.retone(col, row, glyphWidth, toneCursor)
	}

	return cv.String()
}
