package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRace loads the race configuration.
// Search order: customPath -> ~/.racer/configs/race.yaml -> ./configs/race.yaml -> embedded default
func LoadRace(customPath string) (RaceConfig, error) {
	cfg := DefaultRaceConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("race.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultRaceConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML, falling back to hard-coded values
	if err := yaml.Unmarshal(defaultRaceYAML, &cfg); err != nil {
		return DefaultRaceConfig(), nil
	}
	return cfg, nil
}

// LoadLevels loads the level collection.
// Search order: customPath -> ~/.racer/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadLevels(customPath string) ([]Level, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("levels: failed to read %s: %w", customPath, err)
		}
		levels, err := ParseLevels(data)
		if err != nil {
			return nil, fmt.Errorf("levels: %s: %w", customPath, err)
		}
		return levels, nil
	}

	for _, path := range searchPaths("levels.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if levels, err := ParseLevels(data); err == nil {
			return levels, nil
		}
	}

	return ParseLevels(defaultLevelsYAML)
}

// searchPaths lists the user and local config locations for a file.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}
