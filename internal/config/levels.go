package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-racer/internal/track"
)

// LevelFile is the on-disk level collection.
type LevelFile struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig is one track as written in a level file.
type LevelConfig struct {
	ID               string       `yaml:"id"`
	Name             string       `yaml:"name"`
	StartingPosition [2]int       `yaml:"starting_position"`
	Tiles            []TileConfig `yaml:"tiles"`
}

// TileConfig is one tile entry of a level file.
type TileConfig struct {
	Position [2]int `yaml:"position"`
	TileType string `yaml:"tile_type"`
	Rotation int    `yaml:"rotation"`
}

// Level is a parsed, ready-to-build track.
type Level struct {
	ID    string
	Name  string
	Start [2]int
	Tiles []track.Tile
}

// ParseLevels decodes a level file and converts every tile.
func ParseLevels(data []byte) ([]Level, error) {
	var file LevelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("levels: invalid YAML: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("levels: no levels defined")
	}

	levels := make([]Level, 0, len(file.Levels))
	seen := make(map[string]bool)
	for i, lc := range file.Levels {
		if lc.ID == "" {
			return nil, fmt.Errorf("levels: level %d has no id", i)
		}
		if seen[lc.ID] {
			return nil, fmt.Errorf("levels: duplicate level id %q", lc.ID)
		}
		seen[lc.ID] = true

		lvl, err := lc.toLevel()
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func (lc LevelConfig) toLevel() (Level, error) {
	lvl := Level{
		ID:    lc.ID,
		Name:  lc.Name,
		Start: lc.StartingPosition,
		Tiles: make([]track.Tile, 0, len(lc.Tiles)),
	}
	if lvl.Name == "" {
		lvl.Name = lc.ID
	}

	for i, tc := range lc.Tiles {
		kind, err := track.ParseKind(tc.TileType)
		if err != nil {
			return Level{}, fmt.Errorf("levels: %s tile %d: %w", lc.ID, i, err)
		}
		orientation, err := track.ParseOrientation(tc.Rotation)
		if err != nil {
			return Level{}, fmt.Errorf("levels: %s tile %d: %w", lc.ID, i, err)
		}
		lvl.Tiles = append(lvl.Tiles, track.Tile{
			Col:         tc.Position[0],
			Row:         tc.Position[1],
			Kind:        kind,
			Orientation: orientation,
		})
	}
	return lvl, nil
}

// Grid builds the level's track grid and reports indexing problems through
// logger. A nil logger uses the package default.
func (l Level) Grid(logger *log.Logger) *track.Grid {
	if logger == nil {
		logger = log.Default()
	}
	g, issues := track.NewGrid(l.Tiles)
	for _, is := range issues {
		logger.Warn("track layout", "level", l.ID, "code", is.Code, "detail", is.Message)
	}
	return g
}
