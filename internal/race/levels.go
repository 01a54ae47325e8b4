package race

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

// Factory returns a registry factory for a level. The grid is built once
// and shared by every session created from the factory.
func Factory(lvl config.Level, logger *log.Logger) registry.Factory {
	grid := lvl.Grid(logger)
	return func(opts registry.Options) registry.Race {
		return New(lvl.ID, lvl.Name, grid, lvl.Start, opts)
	}
}

// RegisterLevels adds every level to the registry, replacing tracks with
// the same ID.
func RegisterLevels(levels []config.Level, logger *log.Logger) {
	for _, lvl := range levels {
		registry.Replace(lvl.ID, lvl.Name, Factory(lvl, logger))
	}
}

// OptionsFromConfig converts a race configuration into session options.
func OptionsFromConfig(cfg config.RaceConfig) registry.Options {
	return registry.Options{
		Car:       cfg.Car.Stats(),
		Countdown: cfg.Race.Countdown,
		Zoom:      cfg.Race.Zoom,
	}
}

// Register the built-in tracks with the registry
func init() {
	levels, err := config.ParseLevels(config.GetDefaultYAML("levels"))
	if err != nil {
		log.Error("built-in levels", "err", err)
		return
	}
	for _, lvl := range levels {
		registry.Register(lvl.ID, lvl.Name, Factory(lvl, nil))
	}
}
