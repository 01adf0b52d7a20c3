package editor

import (
	"fmt"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// Editor paints onto a level document with the selected brush.
type Editor struct {
	Doc *level.Document

	brush Brush
	id    string

	// last is the cell painted by the current stroke; dragging over the
	// same cell again is a no-op.
	last    core.Coord
	hasLast bool
}

// ClampSize bounds a grid dimension to the editor's range.
func ClampSize(n int) int {
	return max(level.MinEditorSize, min(n, level.MaxSize))
}

// New creates an editor on a fresh floor-filled grid.
// Dimensions are clamped to [level.MinEditorSize, level.MaxSize].
func New(w, h int) *Editor {
	floor, _ := BrushFor('.')
	return &Editor{
		Doc:   level.NewFilled(ClampSize(w), ClampSize(h), level.Floor),
		brush: floor,
	}
}

// Open creates an editor on an existing document.
func Open(doc *level.Document) *Editor {
	floor, _ := BrushFor('.')
	return &Editor{Doc: doc, brush: floor}
}

// Load parses level text into a new editor.
func Load(text string) (*Editor, error) {
	doc, err := level.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return Open(doc), nil
}

// Export serializes the document in the compact dialect.
func (e *Editor) Export() string {
	return level.Serialize(e.Doc)
}

// Select makes the brush for token current.
func (e *Editor) Select(token byte) error {
	b, ok := BrushFor(token)
	if !ok {
		return fmt.Errorf("unknown brush %q", token)
	}
	e.brush = b
	return nil
}

// Brush returns the current brush.
func (e *Editor) Brush() Brush { return e.brush }

// SetID sets the link ID given to doors and switches painted from now on.
// An empty ID paints unlinked props.
func (e *Editor) SetID(id string) error {
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return fmt.Errorf("link id %q must be digits", id)
		}
	}
	e.id = id
	return nil
}

// ID returns the current link ID.
func (e *Editor) ID() string { return e.id }

// EndStroke ends a drag so the next paint always applies.
func (e *Editor) EndStroke() {
	e.hasLast = false
}

// Paint applies the current brush at c. Props replace any prop already on
// the cell; the player brush moves the single start. Anything other than a
// prop or plain floor clears props and the start from the cell, since those
// always stand on floor. It returns false when nothing was painted.
func (e *Editor) Paint(c core.Coord) bool {
	if !e.stroke(c) {
		return false
	}

	d := e.Doc
	b := e.brush
	switch b.Kind {
	case BrushTerrain:
		if b.Cell != level.Floor {
			e.clearOccupants(c)
		}
		d.ClearWallObject(c)
		d.SetCell(c, b.Cell)
		if b.Cell == level.Bridge {
			d.SetBridgeOn(b.BridgeOn)
		}
	case BrushWall:
		e.clearOccupants(c)
		d.SetCell(c, level.Floor)
		d.SetWallObject(c, level.WallObject{Type: level.Wall, Dir: b.Dir})
	case BrushDoor:
		e.placeProp(c)
		d.AddDoor(level.Door{Pos: c, ID: e.id, Open: b.Open, Dir: b.Dir})
	case BrushSwitch:
		e.placeProp(c)
		d.AddSwitch(level.Switch{Pos: c, ID: e.id, Facing: b.Dir, Directed: b.Directed})
	case BrushItem:
		e.placeProp(c)
		d.AddItem(level.Item{Pos: c, Kind: level.ItemKey})
	case BrushPlayer:
		d.RemovePropAt(c)
		d.ClearWallObject(c)
		d.SetCell(c, level.Floor)
		d.SetPlayerStart(c)
	}
	return true
}

// Erase clears c back to floor. A switch on c is toggled instead, which is
// how switch states are set up in the editor.
func (e *Editor) Erase(c core.Coord) bool {
	if !e.stroke(c) {
		return false
	}

	d := e.Doc
	if sw, ok := d.SwitchAt(c); ok {
		d.SetSwitchOn(c, !sw.On)
		return true
	}
	e.clearOccupants(c)
	d.ClearWallObject(c)
	d.SetCell(c, level.Floor)
	return true
}

// Resize changes the grid size, clamped to the editor's range. Content that
// still fits is kept and new cells are floor.
func (e *Editor) Resize(w, h int) {
	e.Doc.Resize(ClampSize(w), ClampSize(h), level.Floor)
	e.hasLast = false
}

func (e *Editor) stroke(c core.Coord) bool {
	if !e.Doc.InBounds(c) {
		return false
	}
	if e.hasLast && e.last == c {
		return false
	}
	e.last, e.hasLast = c, true
	return true
}

func (e *Editor) placeProp(c core.Coord) {
	d := e.Doc
	if start, ok := d.PlayerStart(); ok && start == c {
		d.ClearPlayerStart()
	}
	d.ClearWallObject(c)
	d.SetCell(c, level.Floor)
}

func (e *Editor) clearOccupants(c core.Coord) {
	d := e.Doc
	d.RemovePropAt(c)
	if start, ok := d.PlayerStart(); ok && start == c {
		d.ClearPlayerStart()
	}
}
