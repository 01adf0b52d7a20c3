// Package editor implements level editing on top of level.Document:
// painting with a selected brush, erasing, and resizing the grid.
package editor

import (
	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/level"
)

// BrushKind groups brushes by what they place.
type BrushKind uint8

const (
	BrushTerrain BrushKind = iota
	BrushWall
	BrushDoor
	BrushSwitch
	BrushItem
	BrushPlayer
)

// Brush is one palette entry. Token is the compact level character it paints.
type Brush struct {
	Token    byte
	Name     string
	Category string
	Kind     BrushKind

	Cell     level.CellKind // BrushTerrain
	BridgeOn bool           // BrushTerrain, bridge cells only
	Dir      core.Dir       // walls, doors, directed switches
	Directed bool           // switches
	Open     bool           // doors
}

// TakesID reports whether the brush places something that can carry a link ID.
func (b Brush) TakesID() bool {
	return b.Kind == BrushDoor || b.Kind == BrushSwitch
}

// Palette lists every brush in display order.
var Palette = []Brush{
	{Token: ' ', Name: "Void", Category: "Basic", Kind: BrushTerrain, Cell: level.Void},
	{Token: '.', Name: "Floor", Category: "Basic", Kind: BrushTerrain, Cell: level.Floor},

	{Token: '#', Name: "Wall", Category: "Walls", Kind: BrushTerrain, Cell: level.LegacyWall},
	{Token: '7', Name: "Wall N", Category: "Walls", Kind: BrushWall, Dir: core.North},
	{Token: '8', Name: "Wall S", Category: "Walls", Kind: BrushWall, Dir: core.South},
	{Token: '9', Name: "Wall E", Category: "Walls", Kind: BrushWall, Dir: core.East},
	{Token: '0', Name: "Wall W", Category: "Walls", Kind: BrushWall, Dir: core.West},

	{Token: 'D', Name: "Door Closed", Category: "Doors Closed", Kind: BrushDoor, Dir: core.South},
	{Token: '1', Name: "Door Closed N", Category: "Doors Closed", Kind: BrushDoor, Dir: core.North},
	{Token: '2', Name: "Door Closed S", Category: "Doors Closed", Kind: BrushDoor, Dir: core.South},
	{Token: '3', Name: "Door Closed E", Category: "Doors Closed", Kind: BrushDoor, Dir: core.East},
	{Token: '4', Name: "Door Closed W", Category: "Doors Closed", Kind: BrushDoor, Dir: core.West},

	{Token: 'd', Name: "Door Open", Category: "Doors Open", Kind: BrushDoor, Dir: core.South, Open: true},
	{Token: '5', Name: "Door Open N", Category: "Doors Open", Kind: BrushDoor, Dir: core.North, Open: true},
	{Token: '6', Name: "Door Open S", Category: "Doors Open", Kind: BrushDoor, Dir: core.South, Open: true},
	{Token: '!', Name: "Door Open E", Category: "Doors Open", Kind: BrushDoor, Dir: core.East, Open: true},
	{Token: '@', Name: "Door Open W", Category: "Doors Open", Kind: BrushDoor, Dir: core.West, Open: true},

	{Token: 'S', Name: "Switch", Category: "Switches", Kind: BrushSwitch},
	{Token: 'T', Name: "Switch N", Category: "Switches", Kind: BrushSwitch, Dir: core.North, Directed: true},
	{Token: 'U', Name: "Switch S", Category: "Switches", Kind: BrushSwitch, Dir: core.South, Directed: true},
	{Token: 'V', Name: "Switch E", Category: "Switches", Kind: BrushSwitch, Dir: core.East, Directed: true},
	{Token: 'W', Name: "Switch W", Category: "Switches", Kind: BrushSwitch, Dir: core.West, Directed: true},

	{Token: 'B', Name: "Bridge On", Category: "Interactive", Kind: BrushTerrain, Cell: level.Bridge, BridgeOn: true},
	{Token: 'b', Name: "Bridge Off", Category: "Interactive", Kind: BrushTerrain, Cell: level.Bridge},
	{Token: 'K', Name: "Key", Category: "Interactive", Kind: BrushItem},
	{Token: 'P', Name: "Player Start", Category: "Interactive", Kind: BrushPlayer},
}

// BrushFor looks up the palette entry for a token.
func BrushFor(token byte) (Brush, bool) {
	for _, b := range Palette {
		if b.Token == token {
			return b, true
		}
	}
	return Brush{}, false
}
