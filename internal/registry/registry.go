// Package registry provides a global registry for race factories.
// Tracks register themselves in init() functions, allowing the platform
// to discover and instantiate races without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// Race is the interface every playable track session implements.
// Races contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Race interface {
	// ID returns the track identifier (e.g., "oval").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the car back on the starting cell and restarts the countdown.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by dt seconds.
	// Actions drive the session flow; controls drive the car.
	Step(actions core.ActionFrame, controls core.ControlInput, dt float64) core.StepResult

	// Render draws the current view into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current session status.
	State() core.RaceState
}

// Options are the per-session settings handed to a factory.
type Options struct {
	Car       vehicle.Stats
	Countdown float64 // Seconds
	Zoom      float64 // Terminal cells per tile at rest
}

// TrackInfo contains metadata about a registered track.
type TrackInfo struct {
	ID    string
	Title string
}

// Factory creates a new race session on one track.
type Factory func(opts Options) Race

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a track factory to the registry.
// Typically called from an init() function.
// Panics if a track with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: track %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// Replace adds or overwrites a track factory. Used when a level file
// loaded at runtime redefines a built-in track.
func Replace(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered tracks, sorted by ID.
func List() []TrackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TrackInfo, 0, len(factories))
	for id := range factories {
		result = append(result, TrackInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new race on the track with the given ID.
// Returns an error if the track ID is not registered.
func Create(id string, opts Options) (Race, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown track %q", id)
	}

	return f(opts), nil
}

// Exists checks if a track with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
