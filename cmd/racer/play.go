package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <track>",
	Short: "Race a track",
	Long: `Start racing on the specified track.

The car is held on the start line for the countdown, then the clock runs
until you leave. Touching a wall stops the car until you steer clear.

Controls:
  W/Up         - Accelerate
  S/Down/Space - Brake
  A/Left       - Steer left
  D/Right      - Steer right
  P            - Pause
  R            - Restart
  B/Esc        - Leave (run is saved)
  Q/Ctrl+C     - Quit

Car presets:
  rookie - Slower top speed, gentler throttle, quicker steering
  normal - Config values as loaded
  pro    - Higher top speed and throttle, shorter countdown

Examples:
  racer play oval
  racer play grand --preset rookie
  racer play oval --config ./my-car.yaml
  racer play hairpin --levels ./my-levels.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	trackID := args[0]

	opts, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Check if track exists
	if !registry.Exists(trackID) {
		fmt.Fprintf(os.Stderr, "Error: unknown track %q\n", trackID)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available tracks.")
		os.Exit(1)
	}

	r, err := registry.Create(trackID, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating race: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - the race still works
		store = nil
	}

	runErr := tui.Run(r, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running race: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
