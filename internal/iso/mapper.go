// Package iso converts between grid cells and the isometric projection plane
// used by renderers and pointer input.
package iso

import (
	"math"

	"github.com/vovakirdan/isopuzzle/internal/core"
)

// Default diamond dimensions in world units.
const (
	DefaultTileWidth  = 64
	DefaultTileHeight = 32
)

// Point is a position on the projection plane.
type Point struct {
	X, Y float64
}

// Mapper holds the tile geometry for the projection.
// The zero value is not usable; construct with NewMapper.
type Mapper struct {
	TileW float64
	TileH float64

	// PickOffsetY is added to pointer Y before inversion so that clicks on a
	// bottom-anchored sprite resolve to the cell it is drawn for.
	PickOffsetY float64
}

// NewMapper returns a mapper for the given tile size with the pick offset
// set to half a tile height.
func NewMapper(tileW, tileH float64) Mapper {
	if tileW <= 0 {
		tileW = DefaultTileWidth
	}
	if tileH <= 0 {
		tileH = DefaultTileHeight
	}
	return Mapper{TileW: tileW, TileH: tileH, PickOffsetY: tileH / 2}
}

// WithPickOffset returns a copy of m using the given pick offset.
func (m Mapper) WithPickOffset(offsetY float64) Mapper {
	m.PickOffsetY = offsetY
	return m
}

// GridToWorld projects the cell (gx, gy) onto the plane.
func (m Mapper) GridToWorld(gx, gy float64, origin Point) Point {
	return Point{
		X: (gx-gy)*(m.TileW/2) + origin.X,
		Y: (gx+gy)*(m.TileH/2) + origin.Y,
	}
}

// CellToWorld is GridToWorld for an integer cell.
func (m Mapper) CellToWorld(c core.Coord, origin Point) Point {
	return m.GridToWorld(float64(c.X), float64(c.Y), origin)
}

// WorldToGrid inverts GridToWorld and rounds to the nearest cell.
// For every integer cell c, WorldToGrid(CellToWorld(c)) == c.
func (m Mapper) WorldToGrid(x, y float64, origin Point) core.Coord {
	fx := (x - origin.X) / (m.TileW / 2)
	fy := (y - origin.Y) / (m.TileH / 2)
	return core.C(int(math.Round((fx+fy)/2)), int(math.Round((fy-fx)/2)))
}

// Pick resolves a pointer position to the cell whose sprite is under it.
func (m Mapper) Pick(x, y float64, origin Point) core.Coord {
	return m.WorldToGrid(x, y+m.PickOffsetY, origin)
}

// CenteredOrigin returns the origin that horizontally centres a gridW x gridH
// map in a view of width viewW, with the top corner at y=top.
func (m Mapper) CenteredOrigin(viewW float64, gridW, gridH int, top float64) Point {
	return Point{
		X: viewW/2 - float64(gridW)*m.TileW/4 + float64(gridH)*m.TileW/4,
		Y: top,
	}
}
