package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tracks",
	Long:  `Shows a list of all tracks from the built-in and loaded level files.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	if _, err := loadSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tracks := registry.List()

	if len(tracks) == 0 {
		fmt.Println("No tracks available.")
		return
	}

	fmt.Println("Available tracks:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range tracks {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range tracks {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'racer play <id>' to race a track.")
}
