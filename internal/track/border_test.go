package track

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

var borderKinds = []TileKind{DiagBorder, SoftTurnExterior, SoftTurnExterior2}

func TestDeriveNonBorderKinds(t *testing.T) {
	for _, k := range Kinds() {
		if k.HasBorder() {
			continue
		}
		for _, o := range Orientations() {
			if _, ok := Derive(Tile{Col: 3, Row: 4, Kind: k, Orientation: o}); ok {
				t.Errorf("Derive(%s, %d) produced a border, expected none", k, o)
			}
		}
	}
}

func TestDeriveBorderKinds(t *testing.T) {
	allowed := []float64{-3 * math.Pi / 4, -math.Pi / 4, math.Pi / 4, 3 * math.Pi / 4}

	for _, k := range borderKinds {
		t.Run(k.String(), func(t *testing.T) {
			seen := make(map[float64]Orientation)
			for _, o := range Orientations() {
				b, ok := Derive(Tile{Col: 5, Row: 2, Kind: k, Orientation: o})
				if !ok {
					t.Fatalf("Derive(%s, %d) produced no border", k, o)
				}

				found := false
				for _, a := range allowed {
					if b.Rotation == a {
						found = true
					}
				}
				if !found {
					t.Errorf("orientation %d: rotation %v not in the allowed set", o, b.Rotation)
				}
				if prev, dup := seen[b.Rotation]; dup {
					t.Errorf("orientations %d and %d share rotation %v", prev, o, b.Rotation)
				}
				seen[b.Rotation] = o

				if b.Length != TileDiagSize {
					t.Errorf("orientation %d: length %v, expected %v", o, b.Length, TileDiagSize)
				}
			}
		})
	}
}

func TestDeriveSegmentSpansCellDiagonal(t *testing.T) {
	for _, k := range borderKinds {
		for _, o := range Orientations() {
			tile := Tile{Col: 7, Row: 3, Kind: k, Orientation: o}
			b, _ := Derive(tile)
			x, y := tile.Origin()

			for _, p := range []core.Vec2{b.Start, b.End()} {
				onX := math.Abs(p.X-x) < 1e-3 || math.Abs(p.X-x-TileSize) < 1e-3
				onY := math.Abs(p.Y-y) < 1e-3 || math.Abs(p.Y-y-TileSize) < 1e-3
				if !onX || !onY {
					t.Errorf("%s/%d: endpoint %v is not a corner of cell at (%v, %v)", k, o, p, x, y)
				}
			}
		}
	}
}

func TestDiagBorderWallCorners(t *testing.T) {
	// Points close to each corner of the cell at (0, 0)
	corners := map[string]core.Vec2{
		"top-left":     core.V(2, 2),
		"top-right":    core.V(22, 2),
		"bottom-right": core.V(22, 22),
		"bottom-left":  core.V(2, 22),
	}
	// The wall sits in the corner opposite the one the track keeps
	tests := []struct {
		orientation Orientation
		wall        string
		open        string
	}{
		{0, "bottom-right", "top-left"},
		{1, "bottom-left", "top-right"},
		{2, "top-left", "bottom-right"},
		{3, "top-right", "bottom-left"},
	}

	for _, tc := range tests {
		b, _ := Derive(Tile{Kind: DiagBorder, Orientation: tc.orientation})
		if InsideTrack(corners[tc.wall], b) {
			t.Errorf("orientation %d: %s corner should be off track", tc.orientation, tc.wall)
		}
		if !InsideTrack(corners[tc.open], b) {
			t.Errorf("orientation %d: %s corner should be on track", tc.orientation, tc.open)
		}
	}
}

func TestSoftTurnExteriorVariantsDiffer(t *testing.T) {
	for _, o := range Orientations() {
		a, _ := Derive(Tile{Kind: SoftTurnExterior, Orientation: o})
		b, _ := Derive(Tile{Kind: SoftTurnExterior2, Orientation: o})
		if a == b {
			t.Errorf("orientation %d: both soft exterior variants derive %+v", o, a)
		}
	}
}

func TestDeriveUsesCellPosition(t *testing.T) {
	a, _ := Derive(Tile{Col: 0, Row: 0, Kind: DiagBorder})
	b, _ := Derive(Tile{Col: 2, Row: 5, Kind: DiagBorder})

	shift := b.Start.Sub(a.Start)
	if !shift.ApproxEqual(core.V(2*TileSize, 5*TileSize), 1e-9) {
		t.Errorf("anchor shift = %v, expected (48, 120)", shift)
	}
	if a.Rotation != b.Rotation {
		t.Error("rotation should not depend on cell position")
	}
}
