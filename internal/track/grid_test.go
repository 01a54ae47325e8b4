package track

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func TestFlattenIsBijectiveInBounds(t *testing.T) {
	seen := make(map[int][2]int)
	// Sample the corners and a stripe through the map
	cells := [][2]int{{0, 0}, {MapCols - 1, MapRows - 1}, {0, MapRows - 1}, {MapCols - 1, 0}}
	for c := 0; c < MapCols; c += 7 {
		for r := 0; r < MapRows; r += 3 {
			cells = append(cells, [2]int{c, r})
		}
	}

	for _, cell := range cells {
		idx := Flatten(cell[0], cell[1])
		if prev, ok := seen[idx]; ok && prev != cell {
			t.Fatalf("cells %v and %v share index %d", prev, cell, idx)
		}
		seen[idx] = cell
	}
}

func TestGridLookup(t *testing.T) {
	tiles := []Tile{
		{Col: 2, Row: 2, Kind: StartingLine},
		{Col: 3, Row: 2, Kind: DiagBorder, Orientation: 1},
	}
	g, issues := NewGrid(tiles)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", g.Len())
	}

	tile, ok := g.Lookup(3, 2)
	if !ok || tile.Kind != DiagBorder || tile.Orientation != 1 {
		t.Errorf("Lookup(3, 2) = %+v, %v", tile, ok)
	}

	if _, ok := g.Lookup(4, 2); ok {
		t.Error("Lookup of an empty cell should miss")
	}
	if _, ok := g.Lookup(-1, 2); ok {
		t.Error("Lookup of a negative cell should miss")
	}
	if _, ok := g.Lookup(2, MapRows); ok {
		t.Error("Lookup below the map should miss")
	}

	tile, ok = g.At(core.V(2*TileSize+1, 2*TileSize+23.9))
	if !ok || tile.Kind != StartingLine {
		t.Errorf("At() inside cell (2, 2) = %+v, %v", tile, ok)
	}
}

func TestGridLastTileWins(t *testing.T) {
	g, issues := NewGrid([]Tile{
		{Col: 1, Row: 1, Kind: Base1},
		{Col: 1, Row: 1, Kind: Base4},
	})

	tile, _ := g.Lookup(1, 1)
	if tile.Kind != Base4 {
		t.Errorf("later tile should win, got %s", tile.Kind)
	}
	if len(issues) != 1 || issues[0].Code != IssueDuplicate {
		t.Errorf("expected one DUPLICATE issue, got %v", issues)
	}
}

func TestGridAliasing(t *testing.T) {
	// Row 500 wraps onto row 0 of the same column
	g, issues := NewGrid([]Tile{
		{Col: 4, Row: 0, Kind: Base2},
		{Col: 4, Row: MapCols, Kind: DiagBorder},
	})

	tile, ok := g.Lookup(4, 0)
	if !ok || tile.Kind != DiagBorder {
		t.Errorf("aliased tile should overwrite, got %+v", tile)
	}

	codes := make(map[string]bool)
	for _, is := range issues {
		codes[is.Code] = true
	}
	if !codes[IssueAlias] {
		t.Errorf("expected an ALIAS issue, got %v", issues)
	}
	if !codes[IssueOutOfBounds] {
		t.Errorf("expected an OUT_OF_BOUNDS issue, got %v", issues)
	}
}

func TestIssueIsError(t *testing.T) {
	issues := Validate([]Tile{{Col: -1, Row: 0}})
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %d", len(issues))
	}

	var err error = issues[0]
	var is Issue
	if !errors.As(err, &is) || is.Code != IssueOutOfBounds {
		t.Errorf("errors.As failed for %v", err)
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestGridTilesOrdered(t *testing.T) {
	g, _ := NewGrid([]Tile{
		{Col: 5, Row: 1}, {Col: 0, Row: 2}, {Col: 2, Row: 1},
	})

	got := g.Tiles()
	want := [][2]int{{2, 1}, {5, 1}, {0, 2}}
	for i, w := range want {
		if got[i].Col != w[0] || got[i].Row != w[1] {
			t.Errorf("Tiles()[%d] = [%d, %d], expected %v", i, got[i].Col, got[i].Row, w)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if _, err := ParseKind("Lava"); err == nil {
		t.Error("ParseKind should reject unknown names")
	}
}

func TestParseOrientation(t *testing.T) {
	if _, err := ParseOrientation(4); err == nil {
		t.Error("rotation 4 should be rejected")
	}
	o, err := ParseOrientation(3)
	if err != nil || o != 3 {
		t.Errorf("ParseOrientation(3) = %v, %v", o, err)
	}
}
