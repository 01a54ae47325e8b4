package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/race"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [track]",
	Short: "Show best runs for a track",
	Long: `Display the 10 longest runs recorded on the specified track.

Without a track, prints a summary line for every track raced so far.

Examples:
  racer scores
  racer scores oval
  racer scores grand --db ./runs.db
  racer scores oval --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run for the track")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runTrackSummary()
		return
	}
	trackID := args[0]

	if _, err := loadSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Look up the track title
	title := ""
	for _, t := range registry.List() {
		if t.ID == trackID {
			title = t.Title
		}
	}
	if title == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown track %q\n", trackID)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available tracks.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(trackID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s\n", title)
		return
	}

	runs, err := store.TopRuns(trackID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Race 'racer play %s' to set the first run!\n", trackID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-7s  %s\n", "Rank", "Distance", "Time", "Crashes", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-7s  %s\n", "----", "--------", "----", "-------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10.0f  %-10s  %-7d  %s\n",
			i+1, r.Distance, race.FormatElapsed(r.Elapsed.Seconds()), r.Crashes,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if n, err := store.RunCount(trackID); err == nil {
		fmt.Printf("Runs recorded: %d\n", n)
	}
}

// runTrackSummary prints one line per raced track.
func runTrackSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.AllTrackStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-10s  %-12s  %-7s  %s\n", "Track", "Runs", "Best", "Total", "Crashes", "Last raced")
	for _, id := range ids {
		ts := stats[id]
		fmt.Printf("  %-12s  %-5d  %-10.0f  %-12.0f  %-7d  %s\n",
			id, ts.Runs, ts.BestDistance, ts.TotalDistance, ts.TotalCrashes,
			ts.LastRaced.Format("2006-01-02 15:04"))
	}
}
