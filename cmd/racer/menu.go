package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the racer with a track picker menu",
	Long: `Start the racer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a track.
When you leave a race, you return to the menu to race again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select track
  Tab          - Best runs
  Q            - Quit

Examples:
  racer menu
  racer menu --fps 30
  racer menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	opts, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		r, err := registry.Create(menuResult.TrackID, opts)
		if err != nil {
			logger.Error("cannot start race", "track", menuResult.TrackID, "error", err)
			continue
		}

		if err := tui.Run(r, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running race: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
