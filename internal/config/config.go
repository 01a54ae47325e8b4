// Package config provides YAML-based car, race and level configuration
// loading, with embedded defaults and car presets.
package config

import (
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// RaceConfig contains all tunable settings for a race session.
type RaceConfig struct {
	Car  CarConfig     `yaml:"car"`
	Race SessionConfig `yaml:"race"`
}

// CarConfig defines the car's handling.
type CarConfig struct {
	MaxSpeed     float64      `yaml:"max_speed"`    // Pixels per step
	TurnRate     float64      `yaml:"turn_rate"`    // Radians per second
	Acceleration float64      `yaml:"acceleration"` // Speed per second
	Brake        float64      `yaml:"brake"`        // Speed per second
	Hitbox       HitboxConfig `yaml:"hitbox"`
}

// HitboxConfig is the car footprint in world pixels.
type HitboxConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig defines race flow parameters.
type SessionConfig struct {
	Countdown float64 `yaml:"countdown"` // Seconds before the car may move
	Zoom      float64 `yaml:"zoom"`      // Terminal cells per tile at rest
}

// Stats converts the car section into vehicle tuning constants.
func (c CarConfig) Stats() vehicle.Stats {
	return vehicle.Stats{
		MaxSpeed:     c.MaxSpeed,
		TurnRate:     c.TurnRate,
		Acceleration: c.Acceleration,
		Brake:        c.Brake,
		HitboxWidth:  c.Hitbox.Width,
		HitboxHeight: c.Hitbox.Height,
	}
}

// CarPreset represents a named car tuning.
type CarPreset string

const (
	PresetRookie CarPreset = "rookie"
	PresetNormal CarPreset = "normal"
	PresetPro    CarPreset = "pro"
)

// ApplyCarPreset scales the car for a preset. Unknown or empty presets
// leave the config unchanged.
func ApplyCarPreset(cfg *RaceConfig, preset CarPreset) {
	switch preset {
	case PresetRookie:
		cfg.Car.MaxSpeed *= 0.75
		cfg.Car.Acceleration *= 0.8
		cfg.Car.TurnRate *= 1.1
	case PresetPro:
		cfg.Car.MaxSpeed *= 1.3
		cfg.Car.Acceleration *= 1.25
		cfg.Race.Countdown = 3
	}
}
