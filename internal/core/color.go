package core

// Color identifies the role of a screen cell.
// The platform layer maps each role to a terminal colour.
type Color uint8

// Colour roles used by the race renderer.
const (
	ColorDefault Color = iota
	ColorGrass
	ColorAsphalt
	ColorCurb
	ColorWall
	ColorStartLine
	ColorCar
	ColorCarBoost
	ColorCrash
	ColorHUD
	ColorBanner
)
