package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Show the most collected names",
	Long: `Display the names collected most often across all runs.

Examples:
  teddy names
  teddy names --limit 5`,
	Args: cobra.NoArgs,
	Run:  runNames,
}

func init() {
	namesCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of names to show")
}

func runNames(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	counts, err := store.LabelCounts(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving names: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Favorite Names - Teddy Balloons")
	fmt.Println()

	if len(counts) == 0 {
		fmt.Println("No names collected yet.")
		return
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Collected")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "---------")
	for i, c := range counts {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, c.Label, c.Count)
	}
}
