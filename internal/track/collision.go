package track

import "github.com/vovakirdan/tui-racer/internal/core"

// CrossesBorder tests a point already expressed in the border's frame.
// The span is exclusive at both ends, so a point level with the anchor or
// with the far end counts as on track.
func CrossesBorder(local core.Vec2, b LineBorder) bool {
	start := b.RotatedStart()
	return local.X > start.X && local.Y < start.Y && local.Y > start.Y-b.Length
}

// InsideTrack reports whether a world point is on the legal side of b.
// It is a half-plane test limited to the segment's span, not a distance test.
func InsideTrack(p core.Vec2, b LineBorder) bool {
	return !CrossesBorder(p.Rotate(b.Rotation), b)
}

// PointOnTrack resolves the cell under p and tests p against its wall.
// A missing tile, a cell outside the map or a tile without a wall is open track.
func (g *Grid) PointOnTrack(p core.Vec2) bool {
	t, ok := g.At(p)
	if !ok {
		return true
	}
	b, ok := Derive(t)
	if !ok {
		return true
	}
	return InsideTrack(p, b)
}
