// Package race runs one driving session on one track.
// It owns the car, the countdown and the race clock, and draws a top-down
// view centred on the car. The track grid is shared and never modified.
package race

import (
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseCountdown Phase = iota // Car frozen until the countdown expires
	PhaseRunning
	PhasePaused
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// DefaultZoom is used when the options leave the zoom unset.
const DefaultZoom = 4.0

// Race is a single session on a track. It implements registry.Race.
type Race struct {
	id    string
	title string
	grid  *track.Grid
	start [2]int
	opts  registry.Options
	cfg   core.RuntimeConfig

	car       *vehicle.Vehicle
	phase     Phase
	countdown float64
	elapsed   float64
	distance  float64
	crashes   int
	applied   float64
}

// New creates a session on grid, spawning the car on the start cell.
func New(id, title string, grid *track.Grid, start [2]int, opts registry.Options) *Race {
	if opts.Countdown < 0 {
		opts.Countdown = 0
	}
	if opts.Zoom <= 0 {
		opts.Zoom = DefaultZoom
	}

	r := &Race{
		id:    id,
		title: title,
		grid:  grid,
		start: start,
		opts:  opts,
		car:   vehicle.New(opts.Car),
	}
	r.Reset(core.DefaultConfig())
	return r
}

// ID returns the track identifier.
func (r *Race) ID() string {
	return r.id
}

// Title returns the track display name.
func (r *Race) Title() string {
	return r.title
}

// Reset puts the car on the start cell and restarts the countdown.
func (r *Race) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.car.Reset(r.start)
	r.countdown = r.opts.Countdown
	r.elapsed = 0
	r.distance = 0
	r.crashes = 0
	r.applied = 0

	r.phase = PhaseCountdown
	if r.countdown == 0 {
		r.phase = PhaseRunning
	}
}

// Step advances the session by dt seconds.
func (r *Race) Step(actions core.ActionFrame, controls core.ControlInput, dt float64) core.StepResult {
	dt = core.ClampF(dt, 0, vehicle.MaxStepDT)

	if actions.Has(core.ActionRestart) {
		r.Reset(r.cfg)
		return core.StepResult{State: r.State()}
	}

	if actions.Has(core.ActionPause) {
		switch r.phase {
		case PhaseRunning:
			r.phase = PhasePaused
		case PhasePaused:
			r.phase = PhaseRunning
		}
	}

	switch r.phase {
	case PhaseCountdown:
		r.countdown -= dt
		if r.countdown <= 0 {
			r.countdown = 0
			r.phase = PhaseRunning
		}
	case PhaseRunning:
		wasCrashed := r.car.Crashed()
		res := r.car.Step(controls, r.grid, dt)
		if res.Crashed && !wasCrashed {
			r.crashes++
		}
		r.applied = res.Applied
		r.distance += res.Applied
		r.elapsed += dt
	}

	return core.StepResult{State: r.State()}
}

// State returns the current session status.
func (r *Race) State() core.RaceState {
	return core.RaceState{
		Countdown: r.countdown,
		Elapsed:   r.elapsed,
		Distance:  r.distance,
		Speed:     r.applied,
		Crashes:   r.crashes,
		Crashed:   r.car.Crashed(),
		Started:   r.phase != PhaseCountdown,
		Paused:    r.phase == PhasePaused,
	}
}

// Phase returns the current state machine position.
func (r *Race) Phase() Phase {
	return r.phase
}

// Car exposes the session's vehicle for rendering and tests.
func (r *Race) Car() *vehicle.Vehicle {
	return r.car
}

// Grid returns the shared track grid.
func (r *Race) Grid() *track.Grid {
	return r.grid
}
