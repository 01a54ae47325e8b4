package vehicle

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track"
)

const (
	// Drag is the fraction of speed kept after every step.
	Drag = 0.98

	// MaxStepDT bounds the time a single step may integrate.
	MaxStepDT = 0.25
)

// Stats are the per-car tuning constants. They never change after a
// Vehicle is created.
type Stats struct {
	MaxSpeed     float64 // Pixels per step
	TurnRate     float64 // Radians per second at full input
	Acceleration float64 // Speed gained per second at full input
	Brake        float64 // Speed lost per second at full input
	HitboxWidth  float64
	HitboxHeight float64
}

// Animation is the sprite row the renderer should use.
type Animation int

const (
	AnimIdle Animation = iota
	AnimBoost
	AnimCrash
)

// String returns the animation name.
func (a Animation) String() string {
	switch a {
	case AnimIdle:
		return "stop"
	case AnimBoost:
		return "boost"
	case AnimCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// StepResult describes what a single step did.
type StepResult struct {
	Crashed   bool
	Applied   float64 // Speed the step moved at, after clamping and before drag
	Animation Animation
}

// Vehicle is the mutable car state owned by one race.
type Vehicle struct {
	Position core.Vec2
	Heading  float64 // 0 points up, positive turns clockwise
	Speed    float64

	stats     Stats
	crashed   bool
	animation Animation
}

// New creates a vehicle at the origin with the given stats.
func New(stats Stats) *Vehicle {
	return &Vehicle{stats: stats}
}

// Stats returns the vehicle's tuning constants.
func (v *Vehicle) Stats() Stats {
	return v.stats
}

// Reset places the vehicle at the centre of a starting cell, facing up and stopped.
func (v *Vehicle) Reset(cell [2]int) {
	v.Position = core.V(
		float64(cell[0])*track.TileSize+track.TileSize*0.5,
		float64(cell[1])*track.TileSize+track.TileSize*0.5,
	)
	v.Heading = 0
	v.Speed = 0
	v.crashed = false
	v.animation = AnimIdle
}

// Hitbox returns the car footprint at its current pose.
func (v *Vehicle) Hitbox() Hitbox {
	return Hitbox{
		Center:   v.Position,
		Width:    v.stats.HitboxWidth,
		Height:   v.stats.HitboxHeight,
		Rotation: v.Heading,
	}
}

// Crashed reports whether the last step was rejected by a wall.
func (v *Vehicle) Crashed() bool {
	return v.crashed
}

// Animation returns the animation chosen by the last step.
func (v *Vehicle) Animation() Animation {
	return v.animation
}

// Step advances the vehicle by dt seconds.
//
// The current pose is checked against the grid first. If any hitbox corner
// is off track the input is dropped and the pose is left untouched for this
// step. Otherwise the input is applied, the speed clamped, the position
// integrated and drag applied.
func (v *Vehicle) Step(in core.ControlInput, g *track.Grid, dt float64) StepResult {
	dt = core.ClampF(dt, 0, MaxStepDT)

	if Collides(v.Hitbox(), g) {
		v.crashed = true
		v.animation = AnimCrash
		return StepResult{Crashed: true, Animation: AnimCrash}
	}
	v.crashed = false

	if in.Accelerate.Active {
		v.Speed += v.stats.Acceleration * in.Accelerate.Value * dt
		v.animation = AnimBoost
	}
	if in.Brake.Active {
		v.Speed -= v.stats.Brake * in.Brake.Value * dt
		v.animation = AnimIdle
	}
	if in.Turn.Active {
		v.Heading += v.stats.TurnRate * in.Turn.Value * dt
	}
	if v.animation == AnimCrash {
		v.animation = AnimIdle
	}

	// Braking never reverses the car
	v.Speed = core.ClampF(v.Speed, 0, v.stats.MaxSpeed)
	applied := v.Speed

	sin, cos := math.Sincos(v.Heading)
	v.Position.X += sin * v.Speed
	v.Position.Y += -cos * v.Speed

	v.Speed *= Drag

	return StepResult{Applied: applied, Animation: v.animation}
}

// ZoomForSpeed shrinks base as the car speeds up, halving it at max speed.
func (v *Vehicle) ZoomForSpeed(base float64) float64 {
	top := v.stats.MaxSpeed
	if top <= 0 {
		return base
	}
	return base * math.Exp(-math.Ln2/(top*top)*v.Speed*v.Speed)
}
