package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/teddy-balloons/internal/locale"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List available languages",
	Args:  cobra.NoArgs,
	Run:   runLangs,
}

func runLangs(_ *cobra.Command, _ []string) {
	fmt.Println("Available languages:")
	fmt.Println()

	for _, info := range locale.List() {
		p, err := locale.Get(info.Code)
		if err != nil {
			continue
		}
		fmt.Printf("  %-4s  %-10s  %d names\n", info.Code, info.Name, len(p.Names))
	}

	fmt.Println()
	fmt.Println("Use 'teddy play --lang <code>' to play in a language.")
}
