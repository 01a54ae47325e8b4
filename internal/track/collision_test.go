package track

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestInsideTrackMidpointAndMirror(t *testing.T) {
	for _, k := range borderKinds {
		for _, o := range Orientations() {
			b, _ := Derive(Tile{Col: 4, Row: 6, Kind: k, Orientation: o})

			mid := b.Start.Add(b.End()).Scale(0.5)
			side := b.OffTrackSide()
			inside := mid.Sub(side.Scale(3))
			mirrored := mid.Add(side.Scale(3))

			if !InsideTrack(inside, b) {
				t.Errorf("%s/%d: point %v on the anchor side should be on track", k, o, inside)
			}
			if InsideTrack(mirrored, b) {
				t.Errorf("%s/%d: mirrored point %v should be off track", k, o, mirrored)
			}
		}
	}
}

func TestInsideTrackAnchorIsOnTrack(t *testing.T) {
	for _, k := range borderKinds {
		for _, o := range Orientations() {
			b, _ := Derive(Tile{Col: 1, Row: 1, Kind: k, Orientation: o})
			if !InsideTrack(b.Start, b) {
				t.Errorf("%s/%d: anchor should test as on track", k, o)
			}
		}
	}
}

func TestInsideTrackOutsideSpan(t *testing.T) {
	b, _ := Derive(Tile{Kind: DiagBorder})
	side := b.OffTrackSide()

	// Beyond the far end along the segment axis, on the wall side
	dir := b.End().Sub(b.Start).Scale(1 / b.Length)
	past := b.End().Add(dir.Scale(5)).Add(side.Scale(3))
	if !InsideTrack(past, b) {
		t.Errorf("point %v past the segment end should not be rejected", past)
	}

	before := b.Start.Sub(dir.Scale(5)).Add(side.Scale(3))
	if !InsideTrack(before, b) {
		t.Errorf("point %v before the anchor should not be rejected", before)
	}
}

func TestCrossesBorderMatchesInsideTrack(t *testing.T) {
	b, _ := Derive(Tile{Col: 3, Row: 3, Kind: SoftTurnExterior2, Orientation: 2})
	points := []core.Vec2{
		core.V(73, 73), core.V(94, 94), core.V(80, 90), core.V(90, 80), core.V(0, 0),
	}
	for _, p := range points {
		if CrossesBorder(p.Rotate(b.Rotation), b) == InsideTrack(p, b) {
			t.Errorf("CrossesBorder and InsideTrack disagree at %v", p)
		}
	}
}

func TestPointOnTrack(t *testing.T) {
	g, _ := NewGrid([]Tile{
		{Col: 0, Row: 0, Kind: DiagBorder, Orientation: 0},
		{Col: 1, Row: 0, Kind: Base1},
	})

	tests := []struct {
		name     string
		p        core.Vec2
		expected bool
	}{
		{"wall corner of border tile", core.V(22, 22), false},
		{"open corner of border tile", core.V(2, 2), true},
		{"plain surface tile", core.V(30, 20), true},
		{"absent tile", core.V(100, 100), true},
		{"negative coordinates", core.V(-5, -5), true},
		{"beyond map width", core.V(MapCols*TileSize+1, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.PointOnTrack(tc.p); got != tc.expected {
				t.Errorf("PointOnTrack(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}
