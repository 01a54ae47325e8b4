package track

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Grid maps flattened cell indices to tiles. It is built once per level and
// never mutated afterwards.
type Grid struct {
	tiles map[int]Tile
}

// Flatten returns the grid index of a cell.
// Distinct cells alias only when row >= MapCols; Validate reports that case.
func Flatten(col, row int) int {
	return col*MapCols + row%MapCols
}

// InBounds reports whether the cell lies inside the map.
func InBounds(col, row int) bool {
	return col >= 0 && col < MapCols && row >= 0 && row < MapRows
}

// CellOf returns the cell containing a world position.
func CellOf(p core.Vec2) (col, row int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}

// NewGrid builds a grid from level tiles in order. A later tile whose index
// collides with an earlier one replaces it. The returned issues describe
// every such collision and every out-of-bounds tile; they never stop the
// grid from being built.
func NewGrid(tiles []Tile) (*Grid, []Issue) {
	g := &Grid{tiles: make(map[int]Tile, len(tiles))}
	for _, t := range tiles {
		g.tiles[Flatten(t.Col, t.Row)] = t
	}
	return g, Validate(tiles)
}

// Lookup returns the tile stored for a cell.
// Cells outside the map always miss.
func (g *Grid) Lookup(col, row int) (Tile, bool) {
	if g == nil || !InBounds(col, row) {
		return Tile{}, false
	}
	t, ok := g.tiles[Flatten(col, row)]
	return t, ok
}

// At returns the tile under a world position.
func (g *Grid) At(p core.Vec2) (Tile, bool) {
	return g.Lookup(CellOf(p))
}

// Len returns the number of stored tiles.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.tiles)
}

// Tiles returns the stored tiles ordered by row, then column.
func (g *Grid) Tiles() []Tile {
	if g == nil {
		return nil
	}
	out := make([]Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
