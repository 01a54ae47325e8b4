// Package vehicle implements the car's kinematics and its collision against
// the track walls.
package vehicle

import (
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track"
)

// Hitbox is the rotated rectangle covering the car's footprint.
type Hitbox struct {
	Center   core.Vec2
	Width    float64
	Height   float64
	Rotation float64
}

// Points returns the world corners in the order top-left, top-right,
// bottom-right, bottom-left. The names refer to the unrotated box, so the
// winding stays the same at any heading.
func (h Hitbox) Points() [4]core.Vec2 {
	hw, hh := h.Width/2, h.Height/2
	offsets := [4]core.Vec2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}

	var pts [4]core.Vec2
	for i, off := range offsets {
		pts[i] = off.Rotate(h.Rotation).Add(h.Center)
	}
	return pts
}

// RotatedPoints returns the corners re-expressed in a frame rotated by
// frame. The hitbox's own rotation is applied first.
func (h Hitbox) RotatedPoints(frame float64) [4]core.Vec2 {
	pts := h.Points()
	for i := range pts {
		pts[i] = pts[i].Rotate(frame)
	}
	return pts
}

// Contains reports whether p lies inside the rotated rectangle.
func (h Hitbox) Contains(p core.Vec2) bool {
	local := p.Sub(h.Center).Rotate(-h.Rotation)
	return local.X >= -h.Width/2 && local.X <= h.Width/2 &&
		local.Y >= -h.Height/2 && local.Y <= h.Height/2
}

// CrossesBorder reports whether any corner lies beyond b.
func CrossesBorder(h Hitbox, b track.LineBorder) bool {
	for _, p := range h.RotatedPoints(b.Rotation) {
		if track.CrossesBorder(p, b) {
			return true
		}
	}
	return false
}

// Collides tests each corner against the wall of the cell it falls in.
// Cells with no tile, no wall, or outside the map are open track.
func Collides(h Hitbox, g *track.Grid) bool {
	for _, p := range h.Points() {
		if !g.PointOnTrack(p) {
			return true
		}
	}
	return false
}
