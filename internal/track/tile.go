// Package track holds the static track layout and the wall geometry derived
// from it. Everything here is read-only after a level is loaded and may be
// shared between any number of races.
package track

import (
	"fmt"
	"math"
)

// Map geometry shared with the level files.
const (
	TileSize     = 24.0      // Tile edge length in world pixels
	TileDiagSize = 33.941125 // TileSize * sqrt(2)
	MapCols      = 500
	MapRows      = 250
)

// TileKind is the role of a tile in the track layout.
type TileKind int

const (
	StartingLine TileKind = iota
	Base1
	Base2
	Base3
	Base4
	Base5
	Base6
	HardTurnInterior
	HardTurnExterior
	SoftTurnInterior
	SoftTurnInterior2
	SoftTurnExterior
	SoftTurnExterior2
	StraightBorder
	DiagBorder
)

var kindNames = [...]string{
	StartingLine:      "StartingLine",
	Base1:             "Base1",
	Base2:             "Base2",
	Base3:             "Base3",
	Base4:             "Base4",
	Base5:             "Base5",
	Base6:             "Base6",
	HardTurnInterior:  "HardTurnInterior",
	HardTurnExterior:  "HardTurnExterior",
	SoftTurnInterior:  "SoftTurnInterior",
	SoftTurnInterior2: "SoftTurnInterior2",
	SoftTurnExterior:  "SoftTurnExterior",
	SoftTurnExterior2: "SoftTurnExterior2",
	StraightBorder:    "StraightBorder",
	DiagBorder:        "DiagBorder",
}

// Kinds returns every tile kind in declaration order.
func Kinds() []TileKind {
	kinds := make([]TileKind, len(kindNames))
	for i := range kindNames {
		kinds[i] = TileKind(i)
	}
	return kinds
}

// String returns the level-file name of the kind.
func (k TileKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TileKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a level-file name to a TileKind.
func ParseKind(name string) (TileKind, error) {
	for i, n := range kindNames {
		if n == name {
			return TileKind(i), nil
		}
	}
	return 0, fmt.Errorf("track: unknown tile type %q", name)
}

// Orientation is a clockwise quarter-turn count in [0, 3].
type Orientation uint8

// Orientations returns all four orientations.
func Orientations() []Orientation {
	return []Orientation{0, 1, 2, 3}
}

// ParseOrientation validates a raw rotation ordinal.
func ParseOrientation(n int) (Orientation, error) {
	if n < 0 || n > 3 {
		return 0, fmt.Errorf("track: rotation %d out of range 0..3", n)
	}
	return Orientation(n), nil
}

// Radians returns the rotation angle of the orientation.
func (o Orientation) Radians() float64 {
	return float64(o%4) * math.Pi / 2
}

// Tile is one cell of the fixed track layout.
type Tile struct {
	Col, Row    int
	Kind        TileKind
	Orientation Orientation
}

// Origin returns the world position of the tile's top-left corner.
func (t Tile) Origin() (x, y float64) {
	return float64(t.Col) * TileSize, float64(t.Row) * TileSize
}
