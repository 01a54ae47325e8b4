package config

import (
	_ "embed"
)

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultRaceConfig returns the hard-coded race configuration.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Car: CarConfig{
			MaxSpeed:     4.0,
			TurnRate:     3.0,
			Acceleration: 6.0,
			Brake:        10.0,
			Hitbox: HitboxConfig{
				Width:  14,
				Height: 30,
			},
		},
		Race: SessionConfig{
			Countdown: 4.0,
			Zoom:      4.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "race", "race.yaml":
		return defaultRaceYAML
	case "levels", "levels.yaml":
		return defaultLevelsYAML
	default:
		return nil
	}
}
