package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagRecent bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs with the names collected in each.

Examples:
  teddy scores
  teddy scores --limit 20
  teddy scores --recent
  teddy scores --run <id>
  teddy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs with their IDs")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by ID")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "recent", "run")
}

// openStore opens the history or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	switch {
	case flagRunID != "":
		showRun(store, flagRunID)
		return
	case flagRecent:
		showRecent(store)
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Teddy Balloons")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'teddy play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-4s  %-16s  %s\n", "Rank", "Score", "Lang", "Date", "Names")
	fmt.Printf("  %-4s  %-5s  %-4s  %-16s  %s\n", "----", "-----", "----", "----", "-----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-4s  %-16s  %s\n", i+1, r.Score, r.Language, dateStr, strings.Join(r.Labels, ", "))
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Names collected: %d\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.Labels)
	}
}

func showRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Runs - Teddy Balloons")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	best, err := store.HighScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-36s  %-5s  %-4s  %-16s\n", "ID", "Score", "Lang", "Date")
	for _, r := range runs {
		mark := ""
		if r.Score == best && best > 0 {
			mark = "  *best*"
		}
		fmt.Printf("  %-36s  %-5d  %-4s  %-16s%s\n", r.ID, r.Score, r.Language, r.CreatedAt.Format("2006-01-02 15:04"), mark)
	}
}

func showRun(store *storage.Store, id string) {
	r, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "No run with ID %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n\n", r.ID)
	fmt.Printf("  Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Language: %s\n", r.Language)
	fmt.Printf("  Score:    %d\n", r.Score)
	fmt.Printf("  Ended by: %s\n", r.Reason)
	fmt.Printf("  Frames:   %d (%s)\n", r.Ticks, r.Duration.Round(time.Millisecond))
	fmt.Printf("  Names:    %s\n", strings.Join(r.Labels, ", "))
}
