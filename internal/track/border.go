package track

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// LineBorder is one straight wall edge inside a single tile.
//
// In the border's own frame (world rotated by Rotation) the wall runs from
// Start upward for Length; everything to the right of it within that span is
// off track.
type LineBorder struct {
	Start    core.Vec2
	Length   float64
	Rotation float64
}

// corner selects one of the four corners of a tile's cell.
type corner uint8

const (
	topLeft corner = iota
	topRight
	bottomRight
	bottomLeft
)

type borderSpec struct {
	at    corner
	angle float64
}

// Each anchor corner pairs with exactly one angle so that the segment spans
// the tile diagonal. The wall is the triangle named in the comment.
var (
	wallBottomRight = borderSpec{bottomLeft, -math.Pi / 4}
	wallBottomLeft  = borderSpec{topLeft, -3 * math.Pi / 4}
	wallTopLeft     = borderSpec{topRight, 3 * math.Pi / 4}
	wallTopRight    = borderSpec{bottomRight, math.Pi / 4}
)

// borderTable lists the wall produced by each orientation of the border
// kinds. Orientations advance clockwise, so the wall corner does too.
var borderTable = map[TileKind][4]borderSpec{
	DiagBorder:        {wallBottomRight, wallBottomLeft, wallTopLeft, wallTopRight},
	SoftTurnExterior:  {wallBottomRight, wallBottomLeft, wallTopLeft, wallTopRight},
	SoftTurnExterior2: {wallBottomLeft, wallTopLeft, wallTopRight, wallBottomRight},
}

// HasBorder reports whether tiles of this kind can produce a wall.
func (k TileKind) HasBorder() bool {
	_, ok := borderTable[k]
	return ok
}

// Derive returns the wall edge of a tile, if its kind and orientation define one.
func Derive(t Tile) (LineBorder, bool) {
	rows, ok := borderTable[t.Kind]
	if !ok || t.Orientation > 3 {
		return LineBorder{}, false
	}
	edge := rows[t.Orientation]

	x, y := t.Origin()
	switch edge.at {
	case topRight:
		x += TileSize
	case bottomRight:
		x += TileSize
		y += TileSize
	case bottomLeft:
		y += TileSize
	}

	return LineBorder{
		Start:    core.V(x, y),
		Length:   TileDiagSize,
		Rotation: edge.angle,
	}, true
}

// RotatedStart returns the anchor expressed in the border's frame.
func (b LineBorder) RotatedStart() core.Vec2 {
	return b.Start.Rotate(b.Rotation)
}

// End returns the world position of the far end of the segment.
func (b LineBorder) End() core.Vec2 {
	return b.Start.Add(core.V(0, -b.Length).Rotate(-b.Rotation))
}

// OffTrackSide returns the unit world direction pointing into the wall.
func (b LineBorder) OffTrackSide() core.Vec2 {
	return core.V(1, 0).Rotate(-b.Rotation)
}
