package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/teddy-balloons/internal/core"
	"github.com/vovakirdan/teddy-balloons/internal/locale"
	"github.com/vovakirdan/teddy-balloons/internal/platform/tui"
	"github.com/vovakirdan/teddy-balloons/internal/prefs"
	"github.com/vovakirdan/teddy-balloons/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Without --lang the remembered language is used; the first time a
language menu is shown.

Controls:
  Space/Up/Enter/Click - Flap (the first one starts the run)
  R                    - Play again (after game over)
  S                    - Save names & exit (after game over)
  B/Esc                - Back to the language menu
  Tab                  - Scores (in the menu)
  Q/Ctrl+C             - Quit

Examples:
  teddy play
  teddy play --lang es
  teddy play --config ./my-teddy.yaml
  teddy play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagLang != "" && !locale.Exists(flagLang) {
		fmt.Fprintf(os.Stderr, "Error: unknown language %q\n", flagLang)
		fmt.Fprintln(os.Stderr, "Run 'teddy langs' to see available languages.")
		os.Exit(1)
	}

	tuning := loadTuning()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, continuing without it", "error", err)
		store = nil
	}

	prefStore, err := prefs.Open()
	if err != nil {
		logger.Warn("language will not be remembered", "error", err)
	}

	runErr := tui.Run(tui.Options{
		Store:    store,
		Prefs:    prefStore,
		Tuning:   tuning,
		Language: flagLang,
		Logger:   logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
