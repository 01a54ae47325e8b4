package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/track"
)

var validateCmd = &cobra.Command{
	Use:   "validate [levels.yaml]",
	Short: "Check a level file for layout problems",
	Long: `Parse a level file and report tiles that fall outside the map,
share a cell with another tile, or alias another cell's index.

Without an argument the level file from --levels (or the default search
path) is checked.

Examples:
  racer validate
  racer validate ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	path := flagLevels
	if len(args) == 1 {
		path = args[0]
	}

	levels, err := config.LoadLevels(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	problems := 0
	for _, lvl := range levels {
		issues := track.Validate(lvl.Tiles)
		if len(issues) == 0 {
			fmt.Printf("  ok    %-12s %d tiles\n", lvl.ID, len(lvl.Tiles))
			continue
		}
		fmt.Printf("  FAIL  %-12s %d tiles\n", lvl.ID, len(lvl.Tiles))
		for _, is := range issues {
			fmt.Printf("        %s\n", is.Error())
		}
		problems += len(issues)
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
}
