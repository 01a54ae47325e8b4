// racer is a top-down arcade racer played in the terminal.
//
// Usage:
//
//	racer list               - List available tracks
//	racer play <track>       - Race a track
//	racer menu               - Start menu to pick tracks interactively
//	racer serve              - Start SSH server for remote play
//	racer scores <track>     - Show best runs for a track
//	racer validate [file]    - Check a level file for layout problems
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.racer/runs.db)
//	--config <path>      - Car and race config YAML
//	--levels <path>      - Level file YAML
//	--preset <name>      - Car preset: rookie, normal, pro
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/race"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLevels   string
	flagPreset   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "racer",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "TUI Racer - Drive a top-down race car in your terminal",
	Long: `TUI Racer is a terminal-based top-down arcade racer.
Steer around the track without touching the walls.

Available commands:
  list      - Show all available tracks
  play      - Race a specific track directly
  menu      - Interactive track picker menu
  serve     - Start SSH server for remote play
  scores    - View best runs
  validate  - Check a level file

Examples:
  racer list
  racer play oval
  racer play grand --preset pro
  racer menu
  racer serve --ssh :2222
  racer scores oval`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.racer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom car/race config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom level file YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Car preset: rookie, normal, pro")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadSession reads the race config and level file, registers the levels
// and returns the options every race is created with.
func loadSession() (registry.Options, error) {
	cfg, err := config.LoadRace(flagConfig)
	if err != nil {
		return registry.Options{}, err
	}

	switch preset := config.CarPreset(flagPreset); preset {
	case "", config.PresetRookie, config.PresetNormal, config.PresetPro:
		config.ApplyCarPreset(&cfg, preset)
	default:
		return registry.Options{}, fmt.Errorf("unknown preset %q (use rookie, normal or pro)", flagPreset)
	}

	levels, err := config.LoadLevels(flagLevels)
	if err != nil {
		return registry.Options{}, err
	}
	race.RegisterLevels(levels, logger)
	logger.Debug("session loaded", "tracks", len(levels), "max_speed", cfg.Car.MaxSpeed, "preset", flagPreset)

	return race.OptionsFromConfig(cfg), nil
}
