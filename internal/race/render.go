package race

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// Visual characters for rendering
const (
	GrassChar     = '"'
	AsphaltChar   = ' '
	CurbChar      = '▒'
	WallChar      = '▓'
	StartLineChar = '▚'
	CarChar       = '█'
)

// CellAspect is how many world rows one terminal row covers relative to a
// column. Terminal cells are roughly twice as tall as they are wide.
const CellAspect = 2.0

var headingArrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Render draws the track around the car, the car itself and the HUD.
func (r *Race) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	zoom := r.car.ZoomForSpeed(r.opts.Zoom)
	colWorld := track.TileSize / zoom
	rowWorld := colWorld * CellAspect

	hb := r.car.Hitbox()
	nose := hb.Center.Add(core.V(0, -hb.Height*0.5).Rotate(hb.Rotation))
	noseX, noseY := r.worldToScreen(nose, w, h, colWorld, rowWorld)
	carColor := r.carColor()

	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			p := r.screenToWorld(x, y, w, h, colWorld, rowWorld)
			if hb.Contains(p) {
				dst.Set(x, y, CarChar, carColor)
				continue
			}
			ch, c := r.terrainAt(p)
			dst.Set(x, y, ch, c)
		}
	}
	if noseY >= 1 {
		dst.Set(noseX, noseY, headingArrow(r.car.Heading), carColor)
	}

	r.drawHUD(dst)

	switch r.phase {
	case PhaseCountdown:
		dst.DrawTextCentered(h/2-3, countdownLabel(r.countdown), core.ColorBanner)
	case PhasePaused:
		r.drawCenteredMessage(dst, "PAUSED", "P resume  R restart  B menu")
	}
}

// screenToWorld returns the world point sampled by the centre of a cell.
func (r *Race) screenToWorld(x, y, w, h int, colWorld, rowWorld float64) core.Vec2 {
	return core.V(
		r.car.Position.X+(float64(x-w/2)+0.5)*colWorld,
		r.car.Position.Y+(float64(y-h/2)+0.5)*rowWorld,
	)
}

func (r *Race) worldToScreen(p core.Vec2, w, h int, colWorld, rowWorld float64) (int, int) {
	x := int(math.Floor((p.X-r.car.Position.X)/colWorld)) + w/2
	y := int(math.Floor((p.Y-r.car.Position.Y)/rowWorld)) + h/2
	return x, y
}

// terrainAt picks the glyph for a world point. Absent tiles are grass, but
// still drivable.
func (r *Race) terrainAt(p core.Vec2) (rune, core.Color) {
	tile, ok := r.grid.At(p)
	if !ok {
		return GrassChar, core.ColorGrass
	}
	if !r.grid.PointOnTrack(p) {
		return WallChar, core.ColorWall
	}

	switch tile.Kind {
	case track.StartingLine:
		return StartLineChar, core.ColorStartLine
	case track.StraightBorder, track.DiagBorder:
		return CurbChar, core.ColorCurb
	default:
		return AsphaltChar, core.ColorAsphalt
	}
}

func (r *Race) carColor() core.Color {
	switch r.car.Animation() {
	case vehicle.AnimCrash:
		return core.ColorCrash
	case vehicle.AnimBoost:
		return core.ColorCarBoost
	default:
		return core.ColorCar
	}
}

func (r *Race) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  %s  SPD %4.1f  DIST %6.0f  CRASH %d ",
		r.title, FormatElapsed(r.elapsed), r.applied, r.distance, r.crashes)
	dst.DrawText(0, 0, hud, core.ColorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (r *Race) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorBanner)
	dst.DrawBox(box, core.ColorBanner)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBanner)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorBanner)
}

// headingArrow returns the arrow closest to the heading.
func headingArrow(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingArrows[octant]
}

// countdownLabel shows the whole seconds left before the last one, then GO.
func countdownLabel(remaining float64) string {
	n := int(math.Ceil(remaining)) - 1
	if n <= 0 {
		return "GO!"
	}
	return fmt.Sprintf("%d", n)
}

// FormatElapsed renders seconds as m:ss.cc.
func FormatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	cs := int(math.Round(seconds * 100))
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}
